package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/templui/studytracker/internal/model"
	"github.com/templui/studytracker/internal/progress"
	"github.com/templui/studytracker/internal/service"
	"github.com/templui/studytracker/internal/view"
)

func addCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "add <subject> <goal-hours>",
		Short: "Add a subject with a goal in hours",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := s.app.SubjectService.Create(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", created.Subject, view.NewItem(created).Progress())
			return nil
		},
	}
}

func logCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "log <subject> <hours>",
		Short: "Log study hours against a subject",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, rec := view.WithRecorder(cmd.Context())

			result, err := s.app.SubjectService.LogHours(ctx, args[0], args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			item := view.NewItem(result.Subject)
			fmt.Fprintf(out, "%s: %s (%g%%)\n", item.Subject, item.Progress(), item.Percent)
			printNotifications(out, rec)
			fmt.Fprintf(out, "Total Study Time: %s hours\n", result.Total)
			return nil
		},
	}
}

func goalCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "goal <subject> <goal-hours>",
		Short: "Change a subject's goal, keeping its logged hours",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := s.app.SubjectService.EditGoal(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", updated.Subject, view.NewItem(updated).Progress())
			return nil
		},
	}
}

func rmCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <subject>",
		Aliases: []string{"delete"},
		Short:   "Delete a subject",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := s.app.SubjectService.Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			return nil
		},
	}
}

func lsCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List subjects in stored order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			subjects, err := s.app.SubjectService.List(cmd.Context())
			if err != nil {
				return err
			}
			return printSubjects(cmd.OutOrStdout(), subjects)
		},
	}
}

func sortCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "sort",
		Short: "Sort subjects by progress, furthest along first, and save the order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			subjects, err := s.app.SubjectService.Sort(cmd.Context())
			if err != nil {
				return err
			}
			return printSubjects(cmd.OutOrStdout(), subjects)
		},
	}
}

func resetCmd(s *session) *cobra.Command {
	var yes bool

	c := &cobra.Command{
		Use:   "reset",
		Short: "Set every subject's logged hours back to zero",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("reset clears all logged hours; run again with --yes to confirm")
			}
			subjects, err := s.app.SubjectService.ResetAll(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reset %d subjects\n", len(subjects))
			return nil
		},
	}
	c.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm the reset")
	return c
}

func totalCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "total",
		Short: "Print the total study time across subjects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := s.app.SubjectService.TotalHours(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total Study Time: %s hours\n", total)
			return nil
		},
	}
}

func exportCmd(s *session) *cobra.Command {
	var format, output string

	c := &cobra.Command{
		Use:   "export",
		Short: "Export subjects as JSON or a spreadsheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := service.ParseExportFormat(format)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", output, err)
				}
				defer func() { _ = file.Close() }()
				w = file
			} else if f == service.FormatXLSX {
				return errors.New("xlsx export needs --output")
			}

			return s.app.ExportService.Export(cmd.Context(), w, f)
		},
	}
	c.Flags().StringVarP(&format, "format", "f", "json", "Export format: json or xlsx")
	c.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")
	return c
}

func printSubjects(w io.Writer, subjects []model.Subject) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SUBJECT\tPROGRESS\tPERCENT")
	for _, item := range view.NewItems(subjects) {
		done := ""
		if item.Complete {
			done = " done"
		}
		fmt.Fprintf(tw, "%s\t%s\t%g%%%s\n", item.Subject, item.Progress(), item.Percent, done)
	}
	fmt.Fprintf(tw, "\nTotal Study Time: %s hours\n", progress.TotalHours(subjects))
	return tw.Flush()
}
