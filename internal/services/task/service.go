// Package task holds the authoritative in-memory task collection for a session.
package task

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/thenoetrevino/taskflow/internal/events"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// Service defines all task-related store operations
type Service interface {
	// Read operations
	GetTask(id string) (*models.Task, error)
	Tasks() []*models.Task
	Len() int
	Projects() []*models.Project
	Project(id string) (*models.Project, bool)

	// Write operations
	CreateTask(req CreateTaskRequest) (*models.Task, error)
	UpdateTask(id string, req UpdateTaskRequest) (*models.Task, error)
	DeleteTask(id string) error

	// Replace swaps the whole collection, used when restoring a snapshot
	Replace(tasks []*models.Task)
}

// CreateTaskRequest encapsulates all data needed to create a task.
// A zero DueDate means "now"; a zero Priority means medium.
type CreateTaskRequest struct {
	Title       string
	Description string
	Priority    models.Priority
	DueDate     time.Time
	ProjectID   string
	Tags        []string
}

// UpdateTaskRequest encapsulates a partial update.
// Fields with pointers are optional - nil means don't update.
type UpdateTaskRequest struct {
	Title       *string
	Description *string
	Priority    *models.Priority
	Status      *models.Status
	DueDate     *time.Time
	ProjectID   *string
	Tags        *[]string
}

// StatusUpdate is shorthand for an update that only changes status
func StatusUpdate(s models.Status) UpdateTaskRequest {
	return UpdateTaskRequest{Status: &s}
}

// service implements Service over a slice kept in insertion order
type service struct {
	tasks    []*models.Task
	index    map[string]int
	projects []*models.Project

	now       func() time.Time
	newID     func() string
	publisher events.Publisher
	logger    *slog.Logger
}

// NewService creates a new task store
func NewService(opts ...Option) Service {
	s := &service{
		index:     make(map[string]int),
		projects:  models.DefaultProjects(),
		now:       time.Now,
		newID:     defaultIDGenerator,
		publisher: events.Nop{},
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateTask validates and appends a new pending task
func (s *service) CreateTask(req CreateTaskRequest) (*models.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		s.publish(events.ValidationFailed, "", MsgTitleIsRequired)
		return nil, ErrEmptyTitle
	}

	priority := req.Priority
	if priority == models.PriorityUnknown {
		priority = models.PriorityMedium
	}
	if !priority.Valid() {
		s.publish(events.ValidationFailed, "", "Invalid priority")
		return nil, fmt.Errorf("%w: %d", ErrInvalidPriority, int(priority))
	}

	now := s.now()
	due := req.DueDate
	if due.IsZero() {
		due = now
	}

	tags := slices.Clone(req.Tags)
	if tags == nil {
		tags = []string{}
	}

	task := &models.Task{
		ID:          s.freshID(),
		Title:       title,
		Description: req.Description,
		Priority:    priority,
		Status:      models.StatusPending,
		DueDate:     due,
		ProjectID:   req.ProjectID,
		Tags:        tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.index[task.ID] = len(s.tasks)
	s.tasks = append(s.tasks, task)

	s.logger.Info("task created", "task_id", task.ID, "project_id", task.ProjectID)
	s.publish(events.TaskCreated, task.ID, MsgCreated)

	return task.Clone(), nil
}

// UpdateTask merges the non-nil fields of req into the task
func (s *service) UpdateTask(id string, req UpdateTaskRequest) (*models.Task, error) {
	i, ok := s.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}

	// Validate everything before touching the record
	var title string
	if req.Title != nil {
		title = strings.TrimSpace(*req.Title)
		if title == "" {
			s.publish(events.ValidationFailed, id, MsgTitleIsRequired)
			return nil, ErrEmptyTitle
		}
	}
	if req.Priority != nil && !req.Priority.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPriority, int(*req.Priority))
	}
	if req.Status != nil && !req.Status.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStatus, int(*req.Status))
	}

	task := s.tasks[i]
	if req.Title != nil {
		task.Title = title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.DueDate != nil {
		task.DueDate = *req.DueDate
	}
	if req.ProjectID != nil {
		task.ProjectID = *req.ProjectID
	}
	if req.Tags != nil {
		task.Tags = slices.Clone(*req.Tags)
		if task.Tags == nil {
			task.Tags = []string{}
		}
	}
	task.UpdatedAt = s.now()

	s.logger.Info("task updated", "task_id", id, "status", task.Status.String())
	if req.Status != nil && *req.Status == models.StatusCompleted {
		s.publish(events.TaskCompleted, id, MsgCompleted)
	} else {
		s.publish(events.TaskUpdated, id, MsgUpdated)
	}

	return task.Clone(), nil
}

// DeleteTask removes the task. A missing id returns ErrTaskNotFound
// without side effects, so repeated deletes are harmless.
func (s *service) DeleteTask(id string) error {
	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}

	s.tasks = slices.Delete(s.tasks, i, i+1)
	delete(s.index, id)
	for j := i; j < len(s.tasks); j++ {
		s.index[s.tasks[j].ID] = j
	}

	s.logger.Info("task deleted", "task_id", id)
	s.publish(events.TaskDeleted, id, MsgDeleted)
	return nil
}

// GetTask returns a copy of the task with the given id
func (s *service) GetTask(id string) (*models.Task, error) {
	i, ok := s.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return s.tasks[i].Clone(), nil
}

// Tasks returns copies of all tasks in insertion order
func (s *service) Tasks() []*models.Task {
	out := make([]*models.Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.Clone()
	}
	return out
}

// Len returns the number of tasks in the collection
func (s *service) Len() int {
	return len(s.tasks)
}

// Projects returns the static project list
func (s *service) Projects() []*models.Project {
	return s.projects
}

// Project looks up a project by id
func (s *service) Project(id string) (*models.Project, bool) {
	for _, p := range s.projects {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// Replace swaps the whole collection without emitting notifications
func (s *service) Replace(tasks []*models.Task) {
	s.replace(tasks)
	s.logger.Info("task collection replaced", "count", len(s.tasks))
}

func (s *service) replace(tasks []*models.Task) {
	s.tasks = make([]*models.Task, 0, len(tasks))
	s.index = make(map[string]int, len(tasks))
	for _, t := range tasks {
		if t == nil {
			continue
		}
		if _, dup := s.index[t.ID]; dup {
			continue
		}
		s.index[t.ID] = len(s.tasks)
		s.tasks = append(s.tasks, t.Clone())
	}
}

// maxIDAttempts bounds retries against a misbehaving custom generator
const maxIDAttempts = 16

// freshID draws ids until one is unused
func (s *service) freshID() string {
	for range maxIDAttempts {
		id := s.newID()
		if _, taken := s.index[id]; !taken && id != "" {
			return id
		}
	}
	for {
		id := defaultIDGenerator()
		if _, taken := s.index[id]; !taken {
			return id
		}
	}
}

func (s *service) publish(kind events.Kind, taskID, message string) {
	s.publisher.Publish(events.New(kind, taskID, message, s.now()))
}
