package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskflow/internal/app"
	"github.com/thenoetrevino/taskflow/internal/derive"
	"github.com/thenoetrevino/taskflow/internal/models"
)

var testNow = time.Date(2024, time.December, 24, 10, 0, 0, 0, time.Local)

// runCommand executes the command tree with an isolated config directory
func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TASKFLOW_THEME_FILE", "")

	var stdout, stderr bytes.Buffer
	root := newRootCmd(func() time.Time { return testNow })
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

type envelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

func decode[T any](t *testing.T, out string) T {
	t.Helper()
	var env envelope[T]
	require.NoError(t, json.Unmarshal([]byte(out), &env), out)
	require.True(t, env.Success)
	return env.Data
}

// ============================================================================
// list
// ============================================================================

func TestList_DefaultsToDueDateOrder(t *testing.T) {
	out, _, err := runCommand(t, "list", "--json")
	require.NoError(t, err)

	tasks := decode[[]models.Task](t, out)
	require.Len(t, tasks, 3)
	assert.Equal(t, []string{"3", "2", "1"}, []string{tasks[0].ID, tasks[1].ID, tasks[2].ID})
}

func TestList_ProjectAndSort(t *testing.T) {
	out, _, err := runCommand(t, "list", "--project", "work", "--sort", "priority", "--json")
	require.NoError(t, err)

	tasks := decode[[]models.Task](t, out)
	require.Len(t, tasks, 2)
	assert.Equal(t, "1", tasks[0].ID, "high priority first")
}

func TestList_Board(t *testing.T) {
	out, _, err := runCommand(t, "list", "--view", "board", "--json")
	require.NoError(t, err)

	board := decode[map[string][]models.Task](t, out)
	assert.Len(t, board["pending"], 2)
	assert.Len(t, board["in-progress"], 1)
	assert.Empty(t, board["completed"])
}

func TestList_BoardHumanReadable(t *testing.T) {
	out, _, err := runCommand(t, "list", "--view", "board", "--project", "work")
	require.NoError(t, err)

	assert.Contains(t, out, "2 task(s) on the board")
	assert.Contains(t, out, "To Do (1)")
	assert.Contains(t, out, "In Progress (1)")
	assert.Contains(t, out, "Completed (0)")
}

func TestList_HumanReadable(t *testing.T) {
	out, _, err := runCommand(t, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "Grocery shopping")
	assert.Contains(t, out, "Dec 23 (overdue)")
}

func TestList_EmptyProject(t *testing.T) {
	out, _, err := runCommand(t, "list", "--project", "health")
	require.NoError(t, err)
	assert.Contains(t, out, "No tasks in Health project")
}

func TestList_NoSeed(t *testing.T) {
	out, _, err := runCommand(t, "list", "--no-seed", "--json")
	require.NoError(t, err)
	assert.Empty(t, decode[[]models.Task](t, out))
}

func TestList_BadSortKey(t *testing.T) {
	_, _, err := runCommand(t, "list", "--sort", "size")
	assert.ErrorIs(t, err, derive.ErrUnknownSortKey)
}

func TestList_BadView(t *testing.T) {
	_, _, err := runCommand(t, "list", "--view", "grid")
	assert.ErrorIs(t, err, app.ErrUnknownViewMode)
}

// ============================================================================
// stats
// ============================================================================

func TestStats(t *testing.T) {
	out, _, err := runCommand(t, "stats", "--json")
	require.NoError(t, err)

	stats := decode[derive.Stats](t, out)
	assert.Equal(t, derive.Stats{Total: 3, Completed: 0, Pending: 2, Overdue: 1}, stats)
}

func TestStats_HumanReadable(t *testing.T) {
	out, _, err := runCommand(t, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Total:     3")
	assert.Contains(t, out, "Overdue:   1")
}

// ============================================================================
// add
// ============================================================================

func TestAdd_CreatesTask(t *testing.T) {
	out, _, err := runCommand(t, "add",
		"--title", "  Book dentist  ",
		"--priority", "urgent",
		"--project", "health",
		"--due", "2024-12-30",
		"--tags", "call, ,health",
		"--json",
	)
	require.NoError(t, err)

	task := decode[models.Task](t, out)
	assert.Equal(t, "Book dentist", task.Title)
	assert.Equal(t, models.PriorityUrgent, task.Priority)
	assert.Equal(t, models.StatusPending, task.Status)
	assert.Equal(t, "health", task.ProjectID)
	assert.Equal(t, []string{"call", "health"}, task.Tags)
	assert.Equal(t, "2024-12-30", task.DueDate.Format(models.DueDateLayout))
}

func TestAdd_BlankTitle(t *testing.T) {
	out, _, err := runCommand(t, "add", "--title", "   ", "--json")
	require.Error(t, err)
	assert.True(t, app.IsValidationError(err))
	assert.Contains(t, out, "Task title is required")
}

func TestAdd_BadDueDate(t *testing.T) {
	_, _, err := runCommand(t, "add", "--title", "x", "--due", "tomorrow")
	require.Error(t, err)
	assert.ErrorIs(t, err, app.ErrInvalidDueDate)
}

func TestAdd_BadPriority(t *testing.T) {
	_, _, err := runCommand(t, "add", "--title", "x", "--priority", "critical")
	assert.ErrorIs(t, err, models.ErrUnknownPriority)
}

func TestAdd_PersistsWithSnapshot(t *testing.T) {
	db := filepath.Join(t.TempDir(), "tasks.db")

	out, _, err := runCommand(t, "add", "--db", db, "--title", "Renew passport")
	require.NoError(t, err)
	assert.Contains(t, out, "Task created successfully!")

	out, _, err = runCommand(t, "list", "--db", db, "--json")
	require.NoError(t, err)
	assert.Len(t, decode[[]models.Task](t, out), 4)
}

// ============================================================================
// config flags
// ============================================================================

func TestLoadConfig_ThemeOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	opts := &rootOptions{theme: "light", now: time.Now}

	cfg, err := opts.loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.ColorScheme.Preset)

	opts.theme = "neon"
	_, err = opts.loadConfig()
	assert.Error(t, err)
}

func TestSessionOptions_FlagsWin(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	opts := &rootOptions{dbPath: "/tmp/flag.db", noSeed: true, now: time.Now}

	cfg, err := opts.loadConfig()
	require.NoError(t, err)
	cfg.Session.DBPath = "/tmp/config.db"

	so := opts.sessionOptions(cfg, nil)
	assert.Equal(t, "/tmp/flag.db", so.DBPath)
	assert.False(t, so.Seed)
}
