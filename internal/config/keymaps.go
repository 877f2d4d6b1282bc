package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tasks
	AddTask          string `yaml:"add_task"`
	ToggleComplete   string `yaml:"toggle_complete"`
	ToggleInProgress string `yaml:"toggle_in_progress"`
	AdvanceStage     string `yaml:"advance_stage"`
	DeleteTask       string `yaml:"delete_task"`
	ViewTask         string `yaml:"view_task"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// View
	ToggleView  string `yaml:"toggle_view"`
	CycleSort   string `yaml:"cycle_sort"`
	ToggleTheme string `yaml:"toggle_theme"`

	// Navigation
	PrevColumn  string `yaml:"prev_column"`
	NextColumn  string `yaml:"next_column"`
	PrevTask    string `yaml:"prev_task"`
	NextTask    string `yaml:"next_task"`
	NextProject string `yaml:"next_project"`
	PrevProject string `yaml:"prev_project"`
	AllProjects string `yaml:"all_projects"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Tasks
		AddTask:          "a",
		ToggleComplete:   "x",
		ToggleInProgress: "p",
		AdvanceStage:     "n",
		DeleteTask:       "d",
		ViewTask:         "enter",
		SaveForm:         "ctrl+s",

		// View
		ToggleView:  "v",
		CycleSort:   "s",
		ToggleTheme: "t",

		// Navigation
		PrevColumn:  "h",
		NextColumn:  "l",
		PrevTask:    "k",
		NextTask:    "j",
		NextProject: "}",
		PrevProject: "{",
		AllProjects: "0",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

func (k *KeyMappings) fields() []*string {
	return []*string{
		&k.AddTask, &k.ToggleComplete, &k.ToggleInProgress, &k.AdvanceStage, &k.DeleteTask, &k.ViewTask,
		&k.SaveForm,
		&k.ToggleView, &k.CycleSort, &k.ToggleTheme,
		&k.PrevColumn, &k.NextColumn, &k.PrevTask, &k.NextTask, &k.NextProject, &k.PrevProject, &k.AllProjects,
		&k.ShowHelp, &k.Quit,
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()
	base := defaults.fields()
	for i, f := range k.fields() {
		if *f == "" {
			*f = *base[i]
		}
	}
}
