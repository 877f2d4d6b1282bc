package app

import (
	"time"

	"github.com/thenoetrevino/taskflow/internal/derive"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// Snapshot is everything a renderer needs for one frame
type Snapshot struct {
	// Tasks is the filtered and sorted list
	Tasks []*models.Task
	// Board groups Tasks by status; zero unless the board view is active
	Board    derive.Board
	Stats    derive.Stats
	View     ViewState
	Projects []*models.Project
	Now      time.Time
}

// Snapshot derives the current view. Stats always cover the full
// collection, independent of the project filter.
func (a *App) Snapshot() Snapshot {
	now := a.now()
	all := a.store.Tasks()
	visible := derive.SortTasks(derive.FilterByProject(all, a.view.ActiveProjectID), a.view.SortKey)

	snap := Snapshot{
		Tasks:    visible,
		Stats:    derive.ComputeStats(all, now),
		View:     a.view,
		Projects: a.store.Projects(),
		Now:      now,
	}
	if a.view.ViewMode == BoardView {
		snap.Board = derive.GroupByStatus(visible)
	}
	return snap
}
