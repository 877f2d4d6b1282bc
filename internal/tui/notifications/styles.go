package notifications

import (
	"github.com/thenoetrevino/taskflow/internal/events"
	"github.com/thenoetrevino/taskflow/internal/tui/theme"
)

type style struct {
	icon       string
	title      string
	foreground string
	background string
}

func styleFor(level events.Level) style {
	switch level {
	case events.LevelSuccess:
		return style{
			icon:       "✓",
			title:      "Done",
			foreground: theme.SuccessFg,
			background: theme.SuccessBg,
		}
	case events.LevelError:
		return style{
			icon:       "✕",
			title:      "Error",
			foreground: theme.ErrorFg,
			background: theme.ErrorBg,
		}
	default:
		return style{
			icon:       "🔔",
			title:      "Info",
			foreground: theme.InfoFg,
			background: theme.InfoBg,
		}
	}
}
