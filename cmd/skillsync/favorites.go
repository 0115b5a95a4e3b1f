package main

import (
	"github.com/spf13/cobra"
)

func newFavoritesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"fav"},
		Short:   "Manage favorite jobs",
	}

	toggle := &cobra.Command{
		Use:   "toggle <jobId>",
		Short: "Add or remove a job from favorites",
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
			res, err := a.client.ToggleFavorite(cmd.Context(), tok, id)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), res)
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List favorite jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tok, err := a.requireToken(cmd.Context())
			if err != nil {
				return err
			}
			jobs, err := a.client.GetFavorites(cmd.Context(), tok)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), jobs)
		},
	}

	cmd.AddCommand(toggle, list)
	return cmd
}
