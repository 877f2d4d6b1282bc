package components

import (
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/taskflow/internal/derive"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/tui/theme"
)

// TaskRowProps carries what a list row needs
type TaskRowProps struct {
	Task     *models.Task
	Project  *models.Project // nil when the task's project is unknown
	Selected bool
	Now      time.Time
	Width    int
}

// RenderTaskRow renders one list row
//
//	[✓] ● Title                           Dec 25  Work  #urgent #client
//	      wrapped description, at most two lines
func RenderTaskRow(props TaskRowProps) string {
	task := props.Task

	cursor := "  "
	if props.Selected {
		cursor = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Highlight)).Render("▸ ")
	}

	title := truncate(task.Title, taskTitleMaxLength)
	titleStyle := lipgloss.NewStyle().Bold(props.Selected)
	if task.IsCompleted() {
		titleStyle = titleStyle.Strikethrough(true).Foreground(lipgloss.Color(theme.Subtle))
	}

	parts := []string{
		cursor + renderCheckbox(task.Status),
		renderPriorityDot(task.Priority),
		titleStyle.Render(title),
		renderDueDate(task, props.Now),
	}
	if props.Project != nil {
		parts = append(parts, lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.ProjectColor(props.Project))).
			Render(props.Project.Name))
	}
	if tags := renderTags(task.Tags); tags != "" {
		parts = append(parts, tags)
	}
	line := strings.Join(parts, " ")

	if desc := renderRowDescription(task.Description, props.Width-6); desc != "" {
		line += "\n" + desc
	}

	style := lipgloss.NewStyle().Width(props.Width)
	if props.Selected {
		style = style.Background(lipgloss.Color(theme.SelectedBg))
	}
	return style.Render(line)
}

// RenderTaskCard renders a task as a board card
//
//	┏━━━━━━━━━━━━━━━━━━━━━┓
//	┃ ● Title             ┃
//	┃ Dec 25 · Work       ┃
//	┃ #urgent #client     ┃
//	┗━━━━━━━━━━━━━━━━━━━━━┛
func RenderTaskCard(task *models.Task, project *models.Project, selected bool, now time.Time, width int) string {
	title := renderPriorityDot(task.Priority) + " " + truncate(task.Title, max(cardTitleMaxLength, width-6))
	if task.IsCompleted() {
		title = lipgloss.NewStyle().Strikethrough(true).Render(title)
	}

	meta := renderDueDate(task, now)
	if project != nil {
		meta += SubtleStyle.Render(" · ") +
			lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ProjectColor(project))).Render(project.Name)
	}

	tags := renderTags(task.Tags)
	if tags == "" {
		tags = SubtleStyle.Italic(true).Render("no tags")
	}

	style := TaskStyle.Width(width)
	if selected {
		style = style.
			BorderForeground(lipgloss.Color(theme.SelectedBorder)).
			Background(lipgloss.Color(theme.SelectedBg))
	}
	return style.Render(strings.Join([]string{" " + title, " " + meta, " " + tags}, "\n"))
}

func renderCheckbox(s models.Status) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.StatusColor(s)))
	switch s {
	case models.StatusCompleted:
		return style.Render("[✓]")
	case models.StatusInProgress:
		return style.Render("[~]")
	default:
		return style.Render("[ ]")
	}
}

func renderPriorityDot(p models.Priority) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color())).Render("●")
}

// renderDueDate shows "Jan 02", red when the task is overdue
func renderDueDate(task *models.Task, now time.Time) string {
	text := task.DueDate.Format(models.ShortDateLayout)
	if derive.IsOverdue(task, now) {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Delete)).Bold(true).Render(text)
	}
	return SubtleStyle.Render(text)
}

func renderTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	chips := make([]string, len(tags))
	for i, tag := range tags {
		chips[i] = RenderTagChip(tag)
	}
	return strings.Join(chips, " ")
}

// RenderTagChip renders a single tag as a small chip
func RenderTagChip(tag string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Highlight)).
		Render("#" + tag)
}

// renderRowDescription wraps the description and keeps the first lines
func renderRowDescription(desc string, width int) string {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return ""
	}
	lines := strings.Split(wordwrap.String(desc, max(width, 10)), "\n")
	if len(lines) > descriptionMaxLines {
		lines = lines[:descriptionMaxLines]
		lines[descriptionMaxLines-1] += "…"
	}
	for i := range lines {
		lines[i] = "      " + lines[i]
	}
	return SubtleStyle.Render(strings.Join(lines, "\n"))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:max(n-1, 0)]) + "…"
}
