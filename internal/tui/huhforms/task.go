package huhforms

import (
	"time"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/taskflow/internal/app"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// CreateTaskForm creates a huh form for adding a task.
// Every field binds to the controller's draft, so values survive a rebuilt form.
func CreateTaskForm(
	form *app.FormController,
	projects []*models.Project,
	descriptionLines int,
) *huh.Form {
	var fields []huh.Field

	fields = append(fields,
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("What needs to be done?").
			Value(form.TitlePtr()),
	)

	fields = append(fields,
		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("Markdown is supported...").
			CharLimit(5000).
			Lines(descriptionLines).
			Value(form.DescriptionPtr()),
	)

	fields = append(fields,
		huh.NewSelect[models.Priority]().
			Key("priority").
			Title("Priority").
			Options(priorityOptions()...).
			Value(form.PriorityPtr()),
	)

	fields = append(fields,
		huh.NewSelect[string]().
			Key("project").
			Title("Project").
			Options(projectOptions(projects)...).
			Value(form.ProjectIDPtr()),
	)

	fields = append(fields,
		huh.NewInput().
			Key("dueDate").
			Title("Due date").
			Description("YYYY-MM-DD, empty for today").
			Placeholder(models.DueDateLayout).
			Validate(validateDueDate).
			Value(form.DueDatePtr()),
	)

	fields = append(fields,
		huh.NewInput().
			Key("tags").
			Title("Tags").
			Placeholder("comma, separated").
			Value(form.TagsPtr()),
	)

	f := huh.NewForm(huh.NewGroup(fields...))
	return f.WithKeyMap(CreateKeyMapWithShiftEnter()).WithShowHelp(false)
}

func priorityOptions() []huh.Option[models.Priority] {
	opts := make([]huh.Option[models.Priority], 0, len(models.Priorities()))
	for _, p := range models.Priorities() {
		opts = append(opts, huh.NewOption(p.Title(), p))
	}
	return opts
}

func projectOptions(projects []*models.Project) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(projects))
	for _, p := range projects {
		opts = append(opts, huh.NewOption(p.Name, p.ID))
	}
	return opts
}

func validateDueDate(s string) error {
	_, err := app.ParseDueDate(s, time.Local)
	if err != nil {
		return &app.ValidationError{Field: "dueDate", Message: app.MsgInvalidDueDate, Err: err}
	}
	return nil
}
