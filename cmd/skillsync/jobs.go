package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"skillsync-client/internal/common/validation"
	"skillsync-client/pkg/apiclient"
)

func newJobsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Search, match and manage job postings",
	}

	var (
		filters   apiclient.JobFilters
		minSalary float64
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "Search job postings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("min-salary") {
				filters.MinSalary = &minSalary
			}
			tok, err := a.token(cmd.Context())
			if err != nil {
				return err
			}
			jobs, err := a.client.FetchJobPostings(cmd.Context(), tok, &filters)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), jobs)
		},
	}
	list.Flags().StringVar(&filters.Keyword, "keyword", "", "Match title, description or skills")
	list.Flags().StringVar(&filters.Location, "location", "", "Location filter")
	list.Flags().StringVar(&filters.JobType, "job-type", "", "Job type, e.g. Full-time")
	list.Flags().Float64Var(&minSalary, "min-salary", 0, "Minimum salary")

	fetch := &cobra.Command{
		Use:   "fetch",
		Short: "List the backend's sample job postings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			jobs, err := a.client.FetchMockJobPostings(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), jobs)
		},
	}

	match := &cobra.Command{
		Use:   "match <jobId> <resumeId>",
		Short: "Compare a resume's skills with a job",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobID, err := parseID(args[0], "job id")
			if err != nil {
				return err
			}
			resumeID, err := parseID(args[1], "resume id")
			if err != nil {
				return err
			}
			res, err := a.client.MatchSkills(cmd.Context(), jobID, resumeID)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), res)
		},
	}

	var createFile string
	create := &cobra.Command{
		Use:   "create",
		Short: "Post a job from a JSON document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			job, err := readJob(cmd, createFile)
			if err != nil {
				return err
			}
			tok, err := a.requireToken(cmd.Context())
			if err != nil {
				return err
			}
			created, err := a.client.CreateJob(cmd.Context(), tok, job)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), created)
		},
	}
	create.Flags().StringVarP(&createFile, "file", "f", "-", "JSON job document (- for stdin)")

	var updateFile string
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a job from a JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "job id")
			if err != nil {
				return err
			}
			job, err := readJob(cmd, updateFile)
			if err != nil {
				return err
			}
			tok, err := a.requireToken(cmd.Context())
			if err != nil {
				return err
			}
			updated, err := a.client.UpdateJob(cmd.Context(), tok, id, job)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), updated)
		},
	}
	update.Flags().StringVarP(&updateFile, "file", "f", "-", "JSON job document (- for stdin)")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a job you posted",
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
			res, err := a.client.DeleteJob(cmd.Context(), tok, id)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), res)
		},
	}

	cmd.AddCommand(list, fetch, match, create, update, del)
	return cmd
}

func readJob(cmd *cobra.Command, path string) (apiclient.JobPosting, error) {
	var job apiclient.JobPosting
	data, err := readDocument(cmd, path, validation.SchemaJob)
	if err != nil {
		return job, err
	}
	if err := json.Unmarshal(data, &job); err != nil {
		return job, fmt.Errorf("failed to parse job: %w", err)
	}
	return job, nil
}
