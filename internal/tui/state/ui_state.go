package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode
	FormMode                      // Create-task form is open
	DeleteConfirmMode             // Confirming task deletion
	HelpMode                      // Displaying help screen
	DetailMode                    // Reading a single task
)

func (m Mode) String() string {
	switch m {
	case FormMode:
		return "form"
	case DeleteConfirmMode:
		return "delete-confirm"
	case HelpMode:
		return "help"
	case DetailMode:
		return "detail"
	default:
		return "normal"
	}
}

// UIState manages the user interface state.
// This includes navigation (column/task selection), vertical scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedColumn is the board column index; always 0 in list view
	selectedColumn int

	// selectedTask is the row index within the list or the selected column
	selectedTask int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// scrollOffsets tracks the first visible row per column.
	// The list view uses column 0.
	scrollOffsets map[int]int

	// pendingDeleteID is the task awaiting delete confirmation
	pendingDeleteID string
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:          NormalMode,
		scrollOffsets: make(map[int]int),
	}
}

// SelectedColumn returns the index of the currently selected board column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = max(0, index)
}

// SelectedTask returns the index of the currently selected task.
func (s *UIState) SelectedTask() int {
	return s.selectedTask
}

// SetSelectedTask updates the selected task index.
func (s *UIState) SetSelectedTask(index int) {
	s.selectedTask = max(0, index)
}

// ClampSelection keeps the task index inside a list of n rows.
func (s *UIState) ClampSelection(n int) {
	if n <= 0 {
		s.selectedTask = 0
		return
	}
	s.selectedTask = min(s.selectedTask, n-1)
}

// MoveSelection shifts the task index by delta within n rows.
// Returns true if the selection changed.
func (s *UIState) MoveSelection(delta, n int) bool {
	if n == 0 {
		return false
	}
	next := min(max(s.selectedTask+delta, 0), n-1)
	if next == s.selectedTask {
		return false
	}
	s.selectedTask = next
	return true
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the available height for the list or board.
// This is terminal height minus header, tab bar, toolbar and status bar, ensuring a minimum of 5.
func (s *UIState) ContentHeight() int {
	const headerHeight = 5    // stats cards
	const tabBarHeight = 3    // tabs + gap line
	const toolbarHeight = 1   // view mode and sort
	const statusBarHeight = 1 // status bar
	return max(s.height-headerHeight-tabBarHeight-toolbarHeight-statusBarHeight, 5)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// PendingDeleteID returns the task id awaiting confirmation.
func (s *UIState) PendingDeleteID() string {
	return s.pendingDeleteID
}

// RequestDelete enters delete confirmation for a task.
func (s *UIState) RequestDelete(id string) {
	s.pendingDeleteID = id
	s.mode = DeleteConfirmMode
}

// ClearDelete leaves delete confirmation.
func (s *UIState) ClearDelete() {
	s.pendingDeleteID = ""
	s.mode = NormalMode
}

// ResetSelection resets column, task and scroll state.
// This is called when switching projects or view modes.
func (s *UIState) ResetSelection() {
	s.selectedColumn = 0
	s.selectedTask = 0
	clear(s.scrollOffsets)
}

// ScrollOffset returns the first visible row for a column.
func (s *UIState) ScrollOffset(column int) int {
	return s.scrollOffsets[column]
}

// EnsureTaskVisible adjusts the scroll offset so the selected task is visible.
//
// Parameters:
//   - column: the column containing the task (0 for the list)
//   - visibleCount: number of rows that can be displayed at once
func (s *UIState) EnsureTaskVisible(column int, visibleCount int) {
	visibleCount = max(visibleCount, 1)
	offset := s.scrollOffsets[column]

	// If selection is above visible area, scroll up
	if s.selectedTask < offset {
		offset = s.selectedTask
	}

	// If selection is below visible area, scroll down
	if s.selectedTask >= offset+visibleCount {
		offset = s.selectedTask - visibleCount + 1
	}

	s.scrollOffsets[column] = max(0, offset)
}
