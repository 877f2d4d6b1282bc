package app

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/taskflow/internal/derive"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// ViewMode selects how the task collection is laid out
type ViewMode int

const (
	ListView ViewMode = iota
	BoardView
)

func (m ViewMode) String() string {
	if m == BoardView {
		return "board"
	}
	return "list"
}

// Toggle flips between list and board
func (m ViewMode) Toggle() ViewMode {
	if m == BoardView {
		return ListView
	}
	return BoardView
}

// ParseViewMode reads "list" or "board"
func ParseViewMode(s string) (ViewMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "list":
		return ListView, nil
	case "board", "kanban":
		return BoardView, nil
	}
	return ListView, fmt.Errorf("%w: %q", ErrUnknownViewMode, s)
}

// ViewState is the session's presentation selection.
// None of its fields ever influence the store.
type ViewState struct {
	ActiveProjectID string
	ViewMode        ViewMode
	SortKey         derive.SortKey
	FormVisible     bool
}

// DefaultViewState is the state a session starts in
func DefaultViewState() ViewState {
	return ViewState{
		ActiveProjectID: models.AllProjects,
		ViewMode:        ListView,
		SortKey:         derive.SortByDueDate,
	}
}
