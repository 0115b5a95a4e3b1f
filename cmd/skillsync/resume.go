package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
)

func newResumeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resume",
		Short: "Upload and inspect resumes",
	}

	upload := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a resume and extract its skills",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open resume: %w", err)
			}
			defer f.Close()

			// anonymous uploads are allowed
			tok, err := a.token(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := a.client.UploadResume(cmd.Context(), tok, filepath.Base(args[0]), f)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), resp)
		},
	}

	my := &cobra.Command{
		Use:   "my",
		Short: "Show your latest resume",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tok, err := a.requireToken(cmd.Context())
			if err != nil {
				return err
			}
			resume, err := a.client.GetMyResume(cmd.Context(), tok)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), resume)
		},
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a resume by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "resume id")
			if err != nil {
				return err
			}
			tok, err := a.requireToken(cmd.Context())
			if err != nil {
				return err
			}
			resume, err := a.client.GetResumeByID(cmd.Context(), tok, id)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), resume)
		},
	}

	ats := &cobra.Command{
		Use:   "ats <id>",
		Short: "Run an ATS check on a resume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "resume id")
			if err != nil {
				return err
			}
			tok, err := a.requireToken(cmd.Context())
			if err != nil {
				return err
			}
			report, err := a.client.PerformATSCheck(cmd.Context(), tok, id)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), report)
		},
	}

	rate := &cobra.Command{
		Use:   "rate <id> <rating>",
		Short: "Rate a resume",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "resume id")
			if err != nil {
				return err
			}
			rating, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid rating %q: must be an integer", args[1])
			}
			tok, err := a.requireToken(cmd.Context())
			if err != nil {
				return err
			}
			resume, err := a.client.RateResume(cmd.Context(), tok, id, rating)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), resume)
		},
	}

	cmd.AddCommand(upload, my, get, ats, rate)
	return cmd
}
