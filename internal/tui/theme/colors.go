// Package theme exposes the active color scheme to the renderers
package theme

import (
	"github.com/charmbracelet/glamour/styles"
	"github.com/thenoetrevino/taskflow/internal/config"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// Colors holds the current theme colors, initialized by Init
var (
	Preset         string
	Highlight      string
	Background     string
	Subtle         string
	Normal         string
	Title          string
	Create         string
	Edit           string
	Delete         string
	ColumnBorder   string
	TaskBorder     string
	SelectedBorder string
	SelectedBg     string
	InfoFg         string
	InfoBg         string
	SuccessFg      string
	SuccessBg      string
	ErrorFg        string
	ErrorBg        string
	StatusBarBg    string
	StatusBarText  string
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Preset = colors.Preset
	Highlight = colors.Accent
	Background = colors.Background
	Subtle = colors.Subtle
	Normal = colors.Normal
	Title = colors.Title
	Create = colors.Create
	Edit = colors.Edit
	Delete = colors.Delete
	ColumnBorder = colors.ColumnBorder
	TaskBorder = colors.TaskBorder
	SelectedBorder = colors.SelectedBorder
	SelectedBg = colors.SelectedBg
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	SuccessFg = colors.SuccessFg
	SuccessBg = colors.SuccessBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
	StatusBarBg = colors.StatusBarBg
	StatusBarText = colors.StatusBarText
}

// MarkdownStyle names the glamour style that suits the active preset
func MarkdownStyle() string {
	switch Preset {
	case "light":
		return styles.LightStyle
	case "monochrome":
		return styles.NoTTYStyle
	default:
		return styles.DarkStyle
	}
}

// StatusColor returns the accent used for a status marker
func StatusColor(s models.Status) string {
	switch s {
	case models.StatusCompleted:
		return Create
	case models.StatusInProgress:
		return Edit
	default:
		return Subtle
	}
}

// ProjectColor returns the project's display color, or the subtle color for unknown projects
func ProjectColor(p *models.Project) string {
	if p == nil || p.Color == "" {
		return Subtle
	}
	return p.Color
}
