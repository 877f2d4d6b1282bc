package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
)

// snapshotTables are cleared child first before a snapshot is written
var snapshotTables = []string{"task_tags", "tasks"}

// replaceSnapshot clears the stored snapshot and runs fill in the same
// transaction. If fill fails the previous snapshot survives untouched.
func replaceSnapshot(ctx context.Context, db *sql.DB, fill func(*sql.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin snapshot: %w", err)
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			slog.Error("failed to roll back snapshot", "error", rbErr)
		}
	}()

	for _, table := range snapshotTables {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if err = fill(tx); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO snapshot_meta (id, task_count, saved_at)
		 VALUES (1, (SELECT COUNT(*) FROM tasks), CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET task_count = excluded.task_count, saved_at = excluded.saved_at`,
	); err != nil {
		return fmt.Errorf("failed to mark snapshot: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}
