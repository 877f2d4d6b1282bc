package app

import (
	"errors"
	"fmt"
	"slices"

	"github.com/thenoetrevino/taskflow/internal/derive"
	"github.com/thenoetrevino/taskflow/internal/models"
	taskservice "github.com/thenoetrevino/taskflow/internal/services/task"
)

// Action is a single user intent handled by Dispatch
type Action interface {
	isAction()
}

type (
	// SetProject selects a project filter, or models.AllProjects
	SetProject struct{ ID string }

	// CycleProject moves through the project tabs by Step, wrapping
	CycleProject struct{ Step int }

	SetViewMode struct{ Mode ViewMode }

	ToggleViewMode struct{}

	SetSort struct{ Key derive.SortKey }

	CycleSort struct{}

	OpenForm struct{}

	// CloseForm hides the form and discards the draft
	CloseForm struct{}

	SubmitForm struct{}

	ToggleComplete struct{ ID string }

	ToggleInProgress struct{ ID string }

	// AdvanceStage moves pending -> in-progress -> completed -> pending
	AdvanceStage struct{ ID string }

	DeleteTask struct{ ID string }

	UpdateTask struct {
		ID      string
		Request taskservice.UpdateTaskRequest
	}
)

func (SetProject) isAction()       {}
func (CycleProject) isAction()     {}
func (SetViewMode) isAction()      {}
func (ToggleViewMode) isAction()   {}
func (SetSort) isAction()          {}
func (CycleSort) isAction()        {}
func (OpenForm) isAction()         {}
func (CloseForm) isAction()        {}
func (SubmitForm) isAction()       {}
func (ToggleComplete) isAction()   {}
func (ToggleInProgress) isAction() {}
func (AdvanceStage) isAction()     {}
func (DeleteTask) isAction()       {}
func (UpdateTask) isAction()       {}

// Dispatch applies an action. Task actions on unknown ids are no-ops.
// Validation failures come back as *ValidationError.
func (a *App) Dispatch(action Action) error {
	switch act := action.(type) {
	case SetProject:
		a.view.ActiveProjectID = act.ID
	case CycleProject:
		a.view.ActiveProjectID = a.cycleProject(act.Step)
	case SetViewMode:
		a.view.ViewMode = act.Mode
	case ToggleViewMode:
		a.view.ViewMode = a.view.ViewMode.Toggle()
	case SetSort:
		a.view.SortKey = act.Key
	case CycleSort:
		a.view.SortKey = a.view.SortKey.Next()
	case OpenForm:
		a.view.FormVisible = true
	case CloseForm:
		a.form.Cancel()
		a.view.FormVisible = false
	case SubmitForm:
		return a.submitForm()
	case ToggleComplete:
		return a.transition(act.ID, models.Status.ToggleComplete)
	case ToggleInProgress:
		return a.transition(act.ID, models.Status.ToggleInProgress)
	case AdvanceStage:
		return a.transition(act.ID, models.Status.Next)
	case DeleteTask:
		return a.ignoreMissing(act.ID, a.store.DeleteTask(act.ID))
	case UpdateTask:
		_, err := a.store.UpdateTask(act.ID, act.Request)
		return a.ignoreMissing(act.ID, err)
	default:
		return fmt.Errorf("unsupported action %T", action)
	}
	return nil
}

func (a *App) submitForm() error {
	task, err := a.form.Submit(a.store)
	if err != nil {
		a.logger.Debug("form submit rejected", "error", err)
		return err
	}
	a.view.FormVisible = false
	a.logger.Debug("form submitted", "task_id", task.ID)
	return nil
}

func (a *App) transition(id string, next func(models.Status) models.Status) error {
	task, err := a.store.GetTask(id)
	if err != nil {
		return a.ignoreMissing(id, err)
	}
	_, err = a.store.UpdateTask(id, taskservice.StatusUpdate(next(task.Status)))
	return a.ignoreMissing(id, err)
}

func (a *App) ignoreMissing(id string, err error) error {
	if errors.Is(err, taskservice.ErrTaskNotFound) {
		a.logger.Debug("action on missing task ignored", "task_id", id)
		return nil
	}
	return err
}

func (a *App) cycleProject(step int) string {
	ids := a.ProjectFilters()
	i := slices.Index(ids, a.view.ActiveProjectID)
	if i < 0 {
		return models.AllProjects
	}
	n := len(ids)
	return ids[((i+step)%n+n)%n]
}
