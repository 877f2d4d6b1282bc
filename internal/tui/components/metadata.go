package components

import (
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskflow/internal/derive"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/tui/theme"
)

type MetadataColumnProps struct {
	Task      *models.Task
	Project   *models.Project
	Now       time.Time
	Width     int
	HasBorder bool
}

func RenderMetadataColumn(props MetadataColumnProps) string {
	task := props.Task
	var parts []string

	status := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.StatusColor(task.Status))).
		Render(task.Status.Label())
	parts = append(parts, renderMetadataSection("Status", status))

	priority := renderPriorityDot(task.Priority) + " " + task.Priority.Title()
	parts = append(parts, renderMetadataSection("Priority", priority))

	due := task.DueDate.Format("Jan 2, 2006")
	if derive.IsOverdue(task, props.Now) {
		due = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Delete)).Render(due + " (overdue)")
	}
	parts = append(parts, renderMetadataSection("Due", due))

	project := SubtleStyle.Render(task.ProjectID)
	if props.Project != nil {
		project = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ProjectColor(props.Project))).Render(props.Project.Name)
	}
	parts = append(parts, renderMetadataSection("Project", project))

	tags := renderTags(task.Tags)
	if tags == "" {
		tags = SubtleStyle.Render("No tags")
	}
	parts = append(parts, renderMetadataSection("Tags", tags))

	parts = append(parts, renderMetadataSection("Created", task.CreatedAt.Format(detailTimestampLayout)))
	parts = append(parts, renderMetadataSection("Updated", task.UpdatedAt.Format(detailTimestampLayout)))

	style := lipgloss.NewStyle().
		Width(props.Width).
		Padding(0, 1)

	if props.HasBorder {
		style = style.
			BorderLeft(true).
			BorderStyle(lipgloss.Border{Left: "│"}).
			BorderForeground(lipgloss.Color(theme.Subtle))
	}

	return style.Render(strings.Join(parts, "\n"))
}

func renderMetadataSection(label, value string) string {
	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Bold(true).
		Render(label)
	return header + "\n" + value + "\n"
}
