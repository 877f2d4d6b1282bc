package tui

import (
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskflow/internal/app"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/tui/components"
	"github.com/thenoetrevino/taskflow/internal/tui/notifications"
	"github.com/thenoetrevino/taskflow/internal/tui/state"
	"github.com/thenoetrevino/taskflow/internal/tui/theme"
)

// View renders the base screen and the modal layer for the current mode
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(theme.Background)

	// Wait for terminal size to be initialized
	if m.UIState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	snap := m.App.Snapshot()
	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(m.renderBase(snap)),
	}

	var modalLayer *lipgloss.Layer
	switch m.UIState.Mode() {
	case state.FormMode:
		modalLayer = m.renderTaskFormLayer()
	case state.HelpMode:
		modalLayer = m.renderHelpLayer()
	case state.DetailMode:
		modalLayer = m.renderDetailLayer(snap)
	case state.DeleteConfirmMode:
		modalLayer = m.renderDeleteConfirmLayer()
	}
	if modalLayer != nil {
		layers = append(layers, modalLayer)
	}

	view.Content = lipgloss.NewCanvas(layers...).Render()
	return view
}

// renderBase renders header, tabs, the active view and the status bar
func (m Model) renderBase(snap app.Snapshot) string {
	width := m.UIState.Width()

	title := components.TitleStyle.Render("Taskflow") + " " +
		components.SubtleStyle.Render(snap.Now.Format("Monday, Jan 2"))
	header := lipgloss.JoinVertical(lipgloss.Left, title, components.RenderStats(snap.Stats, width))

	var body string
	if snap.View.ViewMode == app.BoardView {
		body = m.renderBoard(snap)
	} else {
		body = m.renderList(snap)
	}

	footer := components.RenderStatusBar(components.StatusBarProps{
		Width:    width,
		ViewMode: snap.View.ViewMode.String(),
		SortKey:  snap.View.SortKey.Label(),
		Visible:  len(snap.Tasks),
		HelpKey:  m.Config.KeyMappings.ShowHelp,
	})

	content := lipgloss.JoinVertical(lipgloss.Left, header, m.renderTabBar(), body, "")

	// Constrain content to fit terminal height, leaving room for footer
	contentLines := strings.Split(content, "\n")
	maxContentLines := max(m.UIState.Height()-1, 1)
	if len(contentLines) > maxContentLines {
		contentLines = contentLines[:maxContentLines]
	}

	return strings.Join(contentLines, "\n") + "\n" + footer
}

// renderTabBar renders the project filters with the latest notification inline
func (m Model) renderTabBar() string {
	filters := m.App.ProjectFilters()
	tabs := make([]components.Tab, 0, len(filters))
	for _, id := range filters {
		tab := components.Tab{Name: m.App.ProjectName(id)}
		if p := m.project(id); p != nil {
			tab.Color = theme.ProjectColor(p)
		}
		tabs = append(tabs, tab)
	}

	var inline string
	if n, ok := m.NotificationState.Latest(); ok {
		inline = notifications.RenderInline(n)
	}

	selected := slices.Index(filters, m.App.View().ActiveProjectID)
	return components.RenderTabs(tabs, selected, m.UIState.Width(), inline)
}

// renderList renders the visible window of list rows
func (m Model) renderList(snap app.Snapshot) string {
	if len(snap.Tasks) == 0 {
		return components.SubtleStyle.Italic(true).Padding(1, 2).Render(m.App.EmptyMessage())
	}

	offset := min(m.UIState.ScrollOffset(0), len(snap.Tasks)-1)
	end := min(offset+m.visibleRows(app.ListView), len(snap.Tasks))

	var rows []string
	if offset > 0 {
		rows = append(rows, components.IndicatorStyle.Width(m.UIState.Width()).Render("▲ more above"))
	}
	for i := offset; i < end; i++ {
		task := snap.Tasks[i]
		rows = append(rows, components.RenderTaskRow(components.TaskRowProps{
			Task:     task,
			Project:  m.project(task.ProjectID),
			Selected: i == m.UIState.SelectedTask(),
			Now:      snap.Now,
			Width:    m.UIState.Width() - 2,
		}))
	}
	if end < len(snap.Tasks) {
		rows = append(rows, components.IndicatorStyle.Width(m.UIState.Width()).Render("▼ more below"))
	}

	return strings.Join(rows, "\n")
}

// renderBoard renders one column per status
func (m Model) renderBoard(snap app.Snapshot) string {
	columns := snap.Board.Columns()
	columnWidth := m.UIState.Width()/len(columns) - 1

	rendered := make([]string, 0, len(columns))
	for i, col := range columns {
		isSelected := i == m.UIState.SelectedColumn()
		selectedTaskIdx := -1
		if isSelected {
			selectedTaskIdx = m.UIState.SelectedTask()
		}
		rendered = append(rendered, components.RenderColumn(components.ColumnProps{
			Status:          col.Status,
			Tasks:           col.Tasks,
			Selected:        isSelected,
			SelectedTaskIdx: selectedTaskIdx,
			Height:          m.UIState.ContentHeight(),
			Width:           columnWidth,
			ScrollOffset:    m.UIState.ScrollOffset(i),
			Now:             snap.Now,
			Project:         m.project,
		}))
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	if len(snap.Tasks) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			components.SubtleStyle.Italic(true).Render(m.App.EmptyMessage()),
			board,
		)
	}
	return board
}

// selectedTaskFor finds a task by id in the current snapshot
func selectedTaskFor(snap app.Snapshot, id string) *models.Task {
	for _, t := range snap.Tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}
