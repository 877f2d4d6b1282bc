package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskflow/internal/app"
	"github.com/thenoetrevino/taskflow/internal/derive"
	"github.com/thenoetrevino/taskflow/internal/events"
	taskservice "github.com/thenoetrevino/taskflow/internal/services/task"
)

var testNow = time.Date(2024, time.December, 24, 10, 0, 0, 0, time.Local)

func clock() time.Time { return testNow }

// ============================================================================
// Session Tests
// ============================================================================

func TestOpen_InMemorySeeded(t *testing.T) {
	s, err := Open(context.Background(), Options{Seed: true, Clock: clock})
	require.NoError(t, err)
	defer s.Close()

	assert.Nil(t, s.Repo)
	assert.Equal(t, 3, s.App.Store().Len())
	assert.NoError(t, s.Save(context.Background()), "save without a snapshot is a no-op")
}

func TestOpen_NoSeed(t *testing.T) {
	s, err := Open(context.Background(), Options{Clock: clock})
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, 0, s.App.Store().Len())
}

func TestOpen_SnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tasks.db")

	s, err := Open(ctx, Options{DBPath: path, Seed: true, Clock: clock})
	require.NoError(t, err)
	require.NoError(t, s.App.Dispatch(app.DeleteTask{ID: "2"}))
	require.NoError(t, s.Save(ctx))
	require.NoError(t, s.Close())

	restored, err := Open(ctx, Options{DBPath: path, Seed: true, Clock: clock})
	require.NoError(t, err)
	defer restored.Close()

	assert.Equal(t, 2, restored.App.Store().Len())
	_, err = restored.App.Store().GetTask("2")
	assert.ErrorIs(t, err, taskservice.ErrTaskNotFound)
}

func TestOpen_DeletedEverythingStaysDeleted(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tasks.db")

	s, err := Open(ctx, Options{DBPath: path, Seed: true, Clock: clock})
	require.NoError(t, err)
	for _, id := range []string{"1", "2", "3"} {
		require.NoError(t, s.App.Dispatch(app.DeleteTask{ID: id}))
	}
	require.NoError(t, s.Save(ctx))
	require.NoError(t, s.Close())

	reopened, err := Open(ctx, Options{DBPath: path, Seed: true, Clock: clock})
	require.NoError(t, err)
	defer reopened.Close()

	assert.Equal(t, 0, reopened.App.Store().Len(), "seed tasks must not come back")
}

func TestOpen_FreshSnapshotIsSeeded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.db")

	s, err := Open(context.Background(), Options{DBPath: path, Seed: true, Clock: clock})
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, 3, s.App.Store().Len())
}

func TestOpen_DefaultDBPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s, err := Open(context.Background(), Options{DBPath: DefaultDBPath, Seed: true, Clock: clock})
	require.NoError(t, err)
	require.NoError(t, s.Save(context.Background()))
	require.NoError(t, s.Close())

	assert.FileExists(t, filepath.Join(home, ".taskflow", "tasks.db"))
}

func TestOpen_PublishesThroughOption(t *testing.T) {
	rec := &events.Recorder{}
	s, err := Open(context.Background(), Options{Seed: true, Clock: clock, Publisher: rec})
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.App.Dispatch(app.ToggleComplete{ID: "1"}))
	assert.Equal(t, []events.Kind{events.TaskCompleted}, rec.Kinds())
}

func TestOpen_ViewOverride(t *testing.T) {
	view := app.DefaultViewState()
	view.SortKey = derive.SortByPriority
	s, err := Open(context.Background(), Options{Seed: true, Clock: clock, View: &view})
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, derive.SortByPriority, s.App.View().SortKey)
}

// ============================================================================
// Output Tests
// ============================================================================

func TestOutputFormatter_SuccessJSON(t *testing.T) {
	var out bytes.Buffer
	f := &OutputFormatter{JSON: true, Out: &out}

	require.NoError(t, f.Success(map[string]int{"total": 3}, nil))

	var decoded struct {
		Success bool           `json:"success"`
		Data    map[string]int `json:"data"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.True(t, decoded.Success)
	assert.Equal(t, 3, decoded.Data["total"])
}

func TestOutputFormatter_SuccessPretty(t *testing.T) {
	var out bytes.Buffer
	f := &OutputFormatter{Out: &out}

	err := f.Success(nil, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, "3 tasks")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, "3 tasks\n", out.String())
}

func TestOutputFormatter_Error(t *testing.T) {
	var out, errOut bytes.Buffer

	f := &OutputFormatter{Out: &out, Err: &errOut}
	require.NoError(t, f.Error("VALIDATION", "Task title is required"))
	assert.Equal(t, "Error: Task title is required\n", errOut.String())
	assert.Empty(t, out.String())

	out.Reset()
	f.JSON = true
	require.NoError(t, f.Error("VALIDATION", "Task title is required"))
	assert.Contains(t, out.String(), `"success":false`)
	assert.Contains(t, out.String(), `"code":"VALIDATION"`)
}

// ============================================================================
// Exit Code Tests
// ============================================================================

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"validation", &app.ValidationError{Field: "title", Err: taskservice.ErrEmptyTitle}, ExitValidation},
		{"not found", fmt.Errorf("wrap: %w", taskservice.ErrTaskNotFound), ExitNotFound},
		{"bad sort key", fmt.Errorf("%w: size", derive.ErrUnknownSortKey), ExitUsage},
		{"other", errors.New("disk full"), ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
