package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"skillsync-client/pkg/apiclient"
)

func newAdminCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administer users and jobs (ROLE_ADMIN)",
	}
	cmd.AddCommand(newAdminUsersCommand(a), newAdminJobsCommand(a))
	return cmd
}

func addPageFlags(fs *pflag.FlagSet, p *apiclient.PageRequest) {
	fs.IntVar(&p.Page, "page", 0, "Zero-based page index")
	fs.IntVar(&p.Size, "size", apiclient.DefaultPageSize, "Page size")
}

func newAdminUsersCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage users",
	}

	var page apiclient.PageRequest
	list := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tok, err := a.requireToken(cmd.Context())
			if err != nil {
				return err
			}
			users, err := a.client.AdminListUsersPaged(cmd.Context(), tok, page)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), users)
		},
	}
	addPageFlags(list.Flags(), &page)

	role := &cobra.Command{
		Use:   "role <id> <role>",
		Short: "Change a user's role",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "user id")
			if err != nil {
				return err
			}
			tok, err := a.requireToken(cmd.Context())
			if err != nil {
				return err
			}
			user, err := a.client.AdminUpdateUserRole(cmd.Context(), tok, id, args[1])
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), user)
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "user id")
			if err != nil {
				return err
			}
			tok, err := a.requireToken(cmd.Context())
			if err != nil {
				return err
			}
			res, err := a.client.AdminDeleteUser(cmd.Context(), tok, id)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), res)
		},
	}

	cmd.AddCommand(list, role, del)
	return cmd
}

func newAdminJobsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Manage all job postings",
	}

	var page apiclient.PageRequest
	list := &cobra.Command{
		Use:   "list",
		Short: "List job postings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tok, err := a.requireToken(cmd.Context())
			if err != nil {
				return err
			}
			jobs, err := a.client.AdminListJobsPaged(cmd.Context(), tok, page)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), jobs)
		},
	}
	addPageFlags(list.Flags(), &page)

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete any job posting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "job id")
			if err != nil {
				return err
			}
			tok, err := a.requireToken(cmd.Context())
			if err != nil {
				return err
			}
			res, err := a.client.AdminDeleteJob(cmd.Context(), tok, id)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), res)
		},
	}

	cmd.AddCommand(list, del)
	return cmd
}
