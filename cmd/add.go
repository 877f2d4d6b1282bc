package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/app"
	"github.com/thenoetrevino/taskflow/internal/events"
	"github.com/thenoetrevino/taskflow/internal/models"
)

type addOptions struct {
	title       string
	description string
	priority    string
	project     string
	due         string
	tags        string
	json        bool
}

func newAddCmd(root *rootOptions) *cobra.Command {
	ao := &addOptions{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task",
		Long: `Create a task through the same form rules as the interactive UI.
Without --db the task only lives for this command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, root, ao)
		},
	}

	cmd.Flags().StringVar(&ao.title, "title", "", "Task title (required)")
	cmd.Flags().StringVar(&ao.description, "description", "", "Task description (markdown)")
	cmd.Flags().StringVar(&ao.priority, "priority", models.PriorityMedium.String(), "low, medium, high or urgent")
	cmd.Flags().StringVar(&ao.project, "project", "", "Project id (default: first project)")
	cmd.Flags().StringVar(&ao.due, "due", "", "Due date YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&ao.tags, "tags", "", "Comma separated tags")
	cmd.Flags().BoolVar(&ao.json, "json", false, "Output in JSON format")

	return cmd
}

func runAdd(cmd *cobra.Command, root *rootOptions, ao *addOptions) error {
	out := formatter(cmd, ao.json)

	priority, err := models.ParsePriority(ao.priority)
	if err != nil {
		return err
	}

	rec := &events.Recorder{}
	s, err := root.openSession(cmd, nil, rec)
	if err != nil {
		return err
	}
	defer s.Close()

	form := s.App.Form()
	form.SetTitle(ao.title)
	form.SetDescription(ao.description)
	form.SetPriority(priority)
	form.SetDueDate(ao.due)
	form.SetTags(ao.tags)
	if ao.project != "" {
		form.SetProjectID(ao.project)
	}

	if err := s.App.Dispatch(app.SubmitForm{}); err != nil {
		if ao.json && app.IsValidationError(err) {
			_ = out.Error("VALIDATION_ERROR", err.Error())
		}
		return err
	}

	if err := s.Save(cmd.Context()); err != nil {
		return err
	}

	// The created task is the one the store just announced
	n, _ := rec.Last()
	task, err := s.App.Store().GetTask(n.TaskID)
	if err != nil {
		return err
	}

	return out.Success(task, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s (id %s)\n", n.Message, task.ID)
		return err
	})
}
