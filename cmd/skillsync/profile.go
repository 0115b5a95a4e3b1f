package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"skillsync-client/internal/common/validation"
	"skillsync-client/pkg/apiclient"
)

func newProfileCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Read or update your profile",
	}

	get := &cobra.Command{
		Use:   "get",
		Short: "Show your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tok, err := a.requireToken(cmd.Context())
			if err != nil {
				return err
			}
			profile, err := a.client.GetProfile(cmd.Context(), tok)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), profile)
		},
	}

	var file string
	update := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields from a JSON document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := readDocument(cmd, file, validation.SchemaProfileUpdate)
			if err != nil {
				return err
			}
			var upd apiclient.ProfileUpdate
			if err := json.Unmarshal(data, &upd); err != nil {
				return fmt.Errorf("failed to parse profile update: %w", err)
			}
			tok, err := a.requireToken(cmd.Context())
			if err != nil {
				return err
			}
			profile, err := a.client.UpdateProfile(cmd.Context(), tok, upd)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), profile)
		},
	}
	update.Flags().StringVarP(&file, "file", "f", "-", "JSON file with the fields to change (- for stdin)")

	cmd.AddCommand(get, update)
	return cmd
}
