package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/taskflow/internal/config"
)

// KeyMap is the normal-mode key set, built from the configured mappings.
// It feeds the help layer through bubbles/help.
type KeyMap struct {
	AddTask          key.Binding
	ToggleComplete   key.Binding
	ToggleInProgress key.Binding
	AdvanceStage     key.Binding
	DeleteTask       key.Binding
	ViewTask         key.Binding
	ToggleView       key.Binding
	CycleSort        key.Binding
	ToggleTheme      key.Binding
	PrevColumn       key.Binding
	NextColumn       key.Binding
	PrevTask         key.Binding
	NextTask         key.Binding
	NextProject      key.Binding
	PrevProject      key.Binding
	AllProjects      key.Binding
	ShowHelp         key.Binding
	Quit             key.Binding
}

// NewKeyMap binds the configured keys plus the fixed alternates
func NewKeyMap(km config.KeyMappings) KeyMap {
	return KeyMap{
		AddTask:          key.NewBinding(key.WithKeys(km.AddTask), key.WithHelp(km.AddTask, "add task")),
		ToggleComplete:   key.NewBinding(key.WithKeys(km.ToggleComplete, "space"), key.WithHelp(km.ToggleComplete+"/space", "toggle complete")),
		ToggleInProgress: key.NewBinding(key.WithKeys(km.ToggleInProgress), key.WithHelp(km.ToggleInProgress, "toggle in progress")),
		AdvanceStage:     key.NewBinding(key.WithKeys(km.AdvanceStage), key.WithHelp(km.AdvanceStage, "next stage")),
		DeleteTask:       key.NewBinding(key.WithKeys(km.DeleteTask), key.WithHelp(km.DeleteTask, "delete task")),
		ViewTask:         key.NewBinding(key.WithKeys(km.ViewTask), key.WithHelp(km.ViewTask, "view details")),
		ToggleView:       key.NewBinding(key.WithKeys(km.ToggleView), key.WithHelp(km.ToggleView, "list / board")),
		CycleSort:        key.NewBinding(key.WithKeys(km.CycleSort), key.WithHelp(km.CycleSort, "cycle sort")),
		ToggleTheme:      key.NewBinding(key.WithKeys(km.ToggleTheme), key.WithHelp(km.ToggleTheme, "light / dark")),
		PrevColumn:       key.NewBinding(key.WithKeys(km.PrevColumn, "left"), key.WithHelp(km.PrevColumn+"/←", "prev column")),
		NextColumn:       key.NewBinding(key.WithKeys(km.NextColumn, "right"), key.WithHelp(km.NextColumn+"/→", "next column")),
		PrevTask:         key.NewBinding(key.WithKeys(km.PrevTask, "up"), key.WithHelp(km.PrevTask+"/↑", "up")),
		NextTask:         key.NewBinding(key.WithKeys(km.NextTask, "down"), key.WithHelp(km.NextTask+"/↓", "down")),
		NextProject:      key.NewBinding(key.WithKeys(km.NextProject, "tab"), key.WithHelp(km.NextProject+"/tab", "next project")),
		PrevProject:      key.NewBinding(key.WithKeys(km.PrevProject, "shift+tab"), key.WithHelp(km.PrevProject+"/shift+tab", "prev project")),
		AllProjects:      key.NewBinding(key.WithKeys(km.AllProjects), key.WithHelp(km.AllProjects, "all projects")),
		ShowHelp:         key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "help")),
		Quit:             key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddTask, k.ToggleComplete, k.ToggleView, k.ShowHelp, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.AddTask, k.ToggleComplete, k.ToggleInProgress, k.AdvanceStage, k.DeleteTask, k.ViewTask},
		{k.PrevTask, k.NextTask, k.PrevColumn, k.NextColumn, k.NextProject, k.PrevProject, k.AllProjects},
		{k.ToggleView, k.CycleSort, k.ToggleTheme, k.ShowHelp, k.Quit},
	}
}
