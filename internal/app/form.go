package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/taskflow/internal/events"
	"github.com/thenoetrevino/taskflow/internal/models"
	taskservice "github.com/thenoetrevino/taskflow/internal/services/task"
)

// Draft is the editable, not yet validated content of the create form.
// DueDate and Tags stay raw text until Submit.
type Draft struct {
	Title       string
	Description string
	Priority    models.Priority
	DueDate     string
	ProjectID   string
	Tags        string
}

// NewDraft returns the empty draft for a project
func NewDraft(projectID string) Draft {
	return Draft{
		Priority:  models.PriorityMedium,
		ProjectID: projectID,
	}
}

// FormController owns the draft and turns it into a store create request
type FormController struct {
	draft     Draft
	projectID string
	loc       *time.Location
	publisher events.Publisher
	now       func() time.Time
}

// NewFormController creates a controller whose drafts default to projectID
func NewFormController(projectID string, publisher events.Publisher) *FormController {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &FormController{
		draft:     NewDraft(projectID),
		projectID: projectID,
		loc:       time.Local,
		publisher: publisher,
		now:       time.Now,
	}
}

// Draft returns a copy of the current draft
func (f *FormController) Draft() Draft {
	return f.draft
}

func (f *FormController) SetTitle(s string)             { f.draft.Title = s }
func (f *FormController) SetDescription(s string)       { f.draft.Description = s }
func (f *FormController) SetPriority(p models.Priority) { f.draft.Priority = p }
func (f *FormController) SetDueDate(s string)           { f.draft.DueDate = s }
func (f *FormController) SetProjectID(id string)        { f.draft.ProjectID = id }
func (f *FormController) SetTags(s string)              { f.draft.Tags = s }

// Field pointers for binding the draft to form widgets
func (f *FormController) TitlePtr() *string             { return &f.draft.Title }
func (f *FormController) DescriptionPtr() *string       { return &f.draft.Description }
func (f *FormController) PriorityPtr() *models.Priority { return &f.draft.Priority }
func (f *FormController) DueDatePtr() *string           { return &f.draft.DueDate }
func (f *FormController) ProjectIDPtr() *string         { return &f.draft.ProjectID }
func (f *FormController) TagsPtr() *string              { return &f.draft.Tags }

// Reset discards the draft
func (f *FormController) Reset() {
	f.draft = NewDraft(f.projectID)
}

// Cancel discards the draft without touching any store
func (f *FormController) Cancel() {
	f.Reset()
}

// Submit validates the draft and creates the task. On any error the draft
// is left exactly as it was.
func (f *FormController) Submit(store taskservice.Service) (*models.Task, error) {
	d := f.draft

	due, err := ParseDueDate(d.DueDate, f.loc)
	if err != nil {
		f.publisher.Publish(events.New(events.ValidationFailed, "", MsgInvalidDueDate, f.now()))
		return nil, &ValidationError{Field: "dueDate", Message: MsgInvalidDueDate, Err: err}
	}

	task, err := store.CreateTask(taskservice.CreateTaskRequest{
		Title:       d.Title,
		Description: strings.TrimSpace(d.Description),
		Priority:    d.Priority,
		DueDate:     due,
		ProjectID:   d.ProjectID,
		Tags:        ParseTags(d.Tags),
	})
	if err != nil {
		if errors.Is(err, taskservice.ErrEmptyTitle) {
			return nil, &ValidationError{Field: "title", Message: taskservice.MsgTitleIsRequired, Err: err}
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	f.Reset()
	return task, nil
}

// ParseDueDate reads a YYYY-MM-DD date at local midnight. Empty input
// yields the zero time, which the store replaces with the current time.
func ParseDueDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(models.DueDateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDueDate, s)
	}
	return t, nil
}

// ParseTags splits comma separated text, dropping blank entries
func ParseTags(s string) []string {
	tags := []string{}
	for _, part := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
