package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/app"
	"github.com/thenoetrevino/taskflow/internal/derive"
	"github.com/thenoetrevino/taskflow/internal/models"
)

type listOptions struct {
	project string
	sort    string
	view    string
	json    bool
}

func newListCmd(root *rootOptions) *cobra.Command {
	lo := &listOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long:  "List tasks filtered by project and sorted, as a list or grouped into board columns.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, root, lo)
		},
	}

	cmd.Flags().StringVar(&lo.project, "project", models.AllProjects, "project id, or \"all\"")
	cmd.Flags().StringVar(&lo.sort, "sort", derive.SortByDueDate.String(), "sort key (dueDate, priority, status)")
	cmd.Flags().StringVar(&lo.view, "view", app.ListView.String(), "layout (list, board)")
	cmd.Flags().BoolVar(&lo.json, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, root *rootOptions, lo *listOptions) error {
	sortKey, err := derive.ParseSortKey(lo.sort)
	if err != nil {
		return err
	}
	mode, err := app.ParseViewMode(lo.view)
	if err != nil {
		return err
	}

	view := app.ViewState{ActiveProjectID: lo.project, ViewMode: mode, SortKey: sortKey}
	s, err := root.openSession(cmd, &view, nil)
	if err != nil {
		return err
	}
	defer s.Close()

	snap := s.App.Snapshot()
	out := formatter(cmd, lo.json)

	if mode == app.BoardView {
		board := make(map[string][]*models.Task, 3)
		for _, col := range snap.Board.Columns() {
			board[col.Status.String()] = nonNil(col.Tasks)
		}
		return out.Success(board, func(w io.Writer) error {
			fmt.Fprintf(w, "%d task(s) on the board\n\n", snap.Board.Len())
			for _, col := range snap.Board.Columns() {
				fmt.Fprintf(w, "%s (%d)\n", col.Status.Label(), len(col.Tasks))
				if err := printTasks(w, col.Tasks, snap.Now); err != nil {
					return err
				}
				fmt.Fprintln(w)
			}
			return nil
		})
	}

	return out.Success(nonNil(snap.Tasks), func(w io.Writer) error {
		if len(snap.Tasks) == 0 {
			_, err := fmt.Fprintln(w, s.App.EmptyMessage())
			return err
		}
		return printTasks(w, snap.Tasks, snap.Now)
	})
}

// printTasks writes an aligned table of tasks
func printTasks(w io.Writer, tasks []*models.Task, now time.Time) error {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\tID\tTITLE\tPRIORITY\tSTATUS\tDUE\tPROJECT\tTAGS")
	for _, t := range tasks {
		due := t.DueDate.Format(models.ShortDateLayout)
		if derive.IsOverdue(t, now) {
			due += " (overdue)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			checkbox(t.Status), t.ID, t.Title, t.Priority, t.Status, due, t.ProjectID, strings.Join(t.Tags, ","))
	}
	return tw.Flush()
}

func checkbox(s models.Status) string {
	switch s {
	case models.StatusCompleted:
		return "[x]"
	case models.StatusInProgress:
		return "[~]"
	default:
		return "[ ]"
	}
}

// nonNil keeps empty results as [] rather than null in JSON
func nonNil(tasks []*models.Task) []*models.Task {
	if tasks == nil {
		return []*models.Task{}
	}
	return tasks
}
