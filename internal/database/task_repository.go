package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/thenoetrevino/taskflow/internal/models"
)

// ============================================================================
// Task Snapshot Operations
// ============================================================================

// TaskRepo stores whole task collections. Each Save replaces the previous
// snapshot; Load returns tasks in the order they were saved.
type TaskRepo struct {
	db *sql.DB
}

// NewTaskRepo wraps an open database
func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

// Save replaces the stored collection with tasks
func (r *TaskRepo) Save(ctx context.Context, tasks []*models.Task) error {
	return replaceSnapshot(ctx, r.db, func(tx *sql.Tx) error {
		insertTask, err := tx.PrepareContext(ctx,
			`INSERT INTO tasks (id, position, title, description, priority, status, due_date, project_id, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare task insert: %w", err)
		}
		defer insertTask.Close()

		insertTag, err := tx.PrepareContext(ctx,
			`INSERT INTO task_tags (task_id, position, tag) VALUES (?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare tag insert: %w", err)
		}
		defer insertTag.Close()

		for pos, t := range tasks {
			if _, err := insertTask.ExecContext(ctx,
				t.ID, pos, t.Title, t.Description, t.Priority.String(), t.Status.String(),
				t.DueDate.UTC(), t.ProjectID, t.CreatedAt.UTC(), t.UpdatedAt.UTC(),
			); err != nil {
				return fmt.Errorf("failed to insert task %s: %w", t.ID, err)
			}

			for i, tag := range t.Tags {
				if _, err := insertTag.ExecContext(ctx, t.ID, i, tag); err != nil {
					return fmt.Errorf("failed to insert tag for task %s: %w", t.ID, err)
				}
			}
		}
		return nil
	})
}

// Load reads the stored collection. Times come back in loc. found is false
// when nothing was ever saved, which is different from a saved empty
// collection.
func (r *TaskRepo) Load(ctx context.Context, loc *time.Location) (tasks []*models.Task, found bool, err error) {
	if loc == nil {
		loc = time.Local
	}

	var saved int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM snapshot_meta`).Scan(&saved); err != nil {
		return nil, false, fmt.Errorf("failed to read snapshot marker: %w", err)
	}

	tasks, err = r.loadTasks(ctx, loc)
	if err != nil {
		return nil, false, err
	}
	// Databases written before the marker existed still count when they hold tasks
	return tasks, saved > 0 || len(tasks) > 0, nil
}

func (r *TaskRepo) loadTasks(ctx context.Context, loc *time.Location) ([]*models.Task, error) {

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description, priority, status, due_date, project_id, created_at, updated_at
		 FROM tasks
		 ORDER BY position`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []*models.Task{}
	byID := map[string]*models.Task{}
	for rows.Next() {
		var (
			task             = &models.Task{Tags: []string{}}
			priority, status string
		)
		if err := rows.Scan(
			&task.ID, &task.Title, &task.Description, &priority, &status,
			&task.DueDate, &task.ProjectID, &task.CreatedAt, &task.UpdatedAt,
		); err != nil {
			return nil, err
		}

		if task.Priority, err = models.ParsePriority(priority); err != nil {
			return nil, fmt.Errorf("task %s: %w", task.ID, err)
		}
		if task.Status, err = models.ParseStatus(status); err != nil {
			return nil, fmt.Errorf("task %s: %w", task.ID, err)
		}
		task.DueDate = task.DueDate.In(loc)
		task.CreatedAt = task.CreatedAt.In(loc)
		task.UpdatedAt = task.UpdatedAt.In(loc)

		tasks = append(tasks, task)
		byID[task.ID] = task
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	tagRows, err := r.db.QueryContext(ctx,
		`SELECT task_id, tag FROM task_tags ORDER BY task_id, position`,
	)
	if err != nil {
		return nil, err
	}
	defer tagRows.Close()

	for tagRows.Next() {
		var taskID, tag string
		if err := tagRows.Scan(&taskID, &tag); err != nil {
			return nil, err
		}
		if task, ok := byID[taskID]; ok {
			task.Tags = append(task.Tags, tag)
		}
	}
	if err := tagRows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
