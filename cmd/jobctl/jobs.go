package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/Abraxas-365/jobboard/board/job"
	"github.com/Abraxas-365/jobboard/pkg/kernel"
	"github.com/spf13/cobra"
)

func ListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List posted jobs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := opts.client().ListJobs(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list jobs: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(jobs) == 0 {
				fmt.Fprintln(out, "No jobs posted.")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tLOCATION\tTYPE\tPOSTED")
			for _, j := range jobs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", j.ID, j.Title, j.Location, j.Type, j.CreatedAt.Format("2006-01-02"))
			}
			return w.Flush()
		},
	}
}

func PostCmd(opts *options) *cobra.Command {
	var req job.CreateJobRequest
	var title, description string

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Post a new job (requires the admin token)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Title = kernel.JobTitle(title)
			req.Description = kernel.JobDescription(description)
			if req.Title.IsEmpty() {
				return fmt.Errorf("the --title flag is required")
			}

			created, err := opts.client().CreateJob(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to post job: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Job posted: %s\n", created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "job title")
	cmd.Flags().StringVar(&req.Location, "location", "", "where the job is based")
	cmd.Flags().StringVar(&req.Type, "type", "", "employment type, e.g. Full-time")
	cmd.Flags().StringVar(&req.Experience, "experience", "", "experience required")
	cmd.Flags().StringVar(&req.Salary, "salary", "", "salary range")
	cmd.Flags().StringVar(&description, "description", "", "job description")
	cmd.Flags().StringVar(&req.ApplicationLink, "link", "", "external application link")
	return cmd
}

func DeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a job by id (requires the admin token)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.client().DeleteJob(cmd.Context(), kernel.NewJobID(args[0])); err != nil {
				return fmt.Errorf("failed to delete job: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Job deleted.")
			return nil
		},
	}
}
