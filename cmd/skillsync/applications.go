package main

import (
	"github.com/spf13/cobra"
)

func newApplicationsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "applications",
		Aliases: []string{"apps"},
		Short:   "Apply to jobs and track applications",
	}

	apply := &cobra.Command{
		Use:   "apply <jobId>",
		Short: "Apply to a job",
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
			res, err := a.client.ApplyToJob(cmd.Context(), tok, id)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), res)
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List your applications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tok, err := a.requireToken(cmd.Context())
			if err != nil {
				return err
			}
			apps, err := a.client.GetMyApplications(cmd.Context(), tok)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), apps)
		},
	}

	forJob := &cobra.Command{
		Use:   "for-job <jobId>",
		Short: "List applicants for one of your jobs",
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
			apps, err := a.client.GetApplicationsForJob(cmd.Context(), tok, id)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), apps)
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Withdraw an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "application id")
			if err != nil {
				return err
			}
			tok, err := a.requireToken(cmd.Context())
			if err != nil {
				return err
			}
			res, err := a.client.DeleteApplication(cmd.Context(), tok, id)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), res)
		},
	}

	cmd.AddCommand(apply, list, forJob, del)
	return cmd
}
