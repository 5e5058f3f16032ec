package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Abraxas-365/jobboard/board/application"
	"github.com/Abraxas-365/jobboard/board/applied"
	"github.com/Abraxas-365/jobboard/board/client"
	"github.com/Abraxas-365/jobboard/pkg/kernel"
	"github.com/spf13/cobra"
)

func ApplyCmd(opts *options) *cobra.Command {
	var sub application.Submission
	var email, phone, title, resumePath, statePath string

	cmd := &cobra.Command{
		Use:   "apply [job-id]",
		Short: "Apply for a job; repeat applications from this machine are refused",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				sub.JobID = kernel.NewJobID(args[0])
			}
			sub.Email = kernel.Email(email)
			sub.Phone = kernel.Phone(phone)
			sub.JobTitle = kernel.JobTitle(title)

			if resumePath != "" {
				data, err := os.ReadFile(resumePath)
				if err != nil {
					return fmt.Errorf("read resume: %w", err)
				}
				sub.Resume = &application.Attachment{FileName: filepath.Base(resumePath), Data: data}
			}

			if statePath == "" {
				p, err := applied.DefaultFilePath("jobctl")
				if err != nil {
					return err
				}
				statePath = p
			}
			tracker := applied.NewTracker(applied.NewFileStorage(statePath))

			err := opts.client(client.WithTracker(tracker)).Apply(cmd.Context(), sub)
			if errors.Is(err, client.ErrAlreadyApplied) {
				fmt.Fprintln(cmd.OutOrStdout(), "Applied already.")
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to apply: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Application sent.")
			return nil
		},
	}
	cmd.Flags().StringVar(&sub.Name, "name", "", "applicant name")
	cmd.Flags().StringVar(&email, "email", "", "applicant email")
	cmd.Flags().StringVar(&phone, "phone", "", "applicant phone")
	cmd.Flags().StringVar(&title, "title", "", "title of the job applied for")
	cmd.Flags().StringVar(&resumePath, "resume", "", "PDF, DOC or DOCX resume to attach")
	cmd.Flags().StringVar(&statePath, "state", "", "file remembering applied jobs (default: user config dir)")
	return cmd
}
