package models

// Project is a static categorization bucket for tasks.
// Color and Icon are display hints only.
type Project struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// DefaultProjects returns the fixed project list of every session
func DefaultProjects() []*Project {
	return []*Project{
		{ID: "work", Name: "Work", Color: "#6366f1", Icon: "Briefcase"},
		{ID: "personal", Name: "Personal", Color: "#f97316", Icon: "User"},
		{ID: "health", Name: "Health", Color: "#06d6a0", Icon: "Heart"},
	}
}
