package components

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/taskflow/internal/tui/theme"
)

type DescriptionProps struct {
	Description string
	Width       int
}

// minDescriptionWidth keeps glamour from wrapping every word onto its own line
const minDescriptionWidth = 20

type rendererKey struct {
	style string
	width int
}

// Glamour renderers are costly to build; one per style and width
var rendererCache sync.Map // map[rendererKey]*glamour.TermRenderer

func markdownRenderer(key rendererKey) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(key); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(key.style),
		glamour.WithWordWrap(key.width),
	)
	if err != nil {
		return nil, err
	}

	actual, _ := rendererCache.LoadOrStore(key, renderer)
	return actual.(*glamour.TermRenderer), nil
}

// RenderDescription renders a task description as markdown in the style
// of the active theme. Plain wrapped text is the fallback.
func RenderDescription(props DescriptionProps) string {
	if strings.TrimSpace(props.Description) == "" {
		return SubtleStyle.Italic(true).Render("No description")
	}

	key := rendererKey{style: theme.MarkdownStyle(), width: max(props.Width, minDescriptionWidth)}
	if r, err := markdownRenderer(key); err == nil {
		if out, err := r.Render(props.Description); err == nil {
			return strings.TrimSpace(out)
		}
	}
	return lipgloss.NewStyle().Width(props.Width).Render(props.Description)
}
