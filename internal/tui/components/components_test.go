package components

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/taskflow/internal/config"
	"github.com/thenoetrevino/taskflow/internal/derive"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/tui/theme"
)

var testNow = time.Date(2024, time.December, 24, 10, 0, 0, 0, time.Local)

func init() {
	InitStyles(config.DefaultColorScheme())
}

func testTask() *models.Task {
	return &models.Task{
		ID:          "1",
		Title:       "Grocery shopping",
		Description: "Buy ingredients for weekend dinner party",
		Priority:    models.PriorityLow,
		Status:      models.StatusPending,
		DueDate:     time.Date(2024, time.December, 23, 0, 0, 0, 0, time.Local),
		ProjectID:   "personal",
		Tags:        []string{"shopping", "weekend"},
		CreatedAt:   testNow,
		UpdatedAt:   testNow,
	}
}

func TestRenderTaskRow(t *testing.T) {
	project := &models.Project{ID: "personal", Name: "Personal", Color: "#f97316"}
	out := ansi.Strip(RenderTaskRow(TaskRowProps{
		Task:    testTask(),
		Project: project,
		Now:     testNow,
		Width:   100,
	}))

	assert.Contains(t, out, "[ ]")
	assert.Contains(t, out, "Grocery shopping")
	assert.Contains(t, out, "Dec 23")
	assert.Contains(t, out, "Personal")
	assert.Contains(t, out, "#shopping #weekend")
	assert.Contains(t, out, "Buy ingredients")
}

func TestRenderTaskRow_Completed(t *testing.T) {
	task := testTask()
	task.Status = models.StatusCompleted
	out := ansi.Strip(RenderTaskRow(TaskRowProps{Task: task, Now: testNow, Width: 100}))
	assert.Contains(t, out, "[✓]")
}

func TestRenderRowDescription_TwoLinesMax(t *testing.T) {
	desc := strings.Repeat("word ", 60)
	out := ansi.Strip(renderRowDescription(desc, 30))
	assert.Len(t, strings.Split(out, "\n"), descriptionMaxLines)
	assert.True(t, strings.HasSuffix(strings.TrimRight(out, " "), "…"))

	assert.Empty(t, renderRowDescription("   ", 30))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}

func TestRenderColumn(t *testing.T) {
	tasks := []*models.Task{testTask()}
	out := ansi.Strip(RenderColumn(ColumnProps{
		Status:          models.StatusPending,
		Tasks:           tasks,
		SelectedTaskIdx: -1,
		Width:           40,
		Now:             testNow,
	}))
	assert.Contains(t, out, "To Do (1)")
	assert.Contains(t, out, "Grocery shopping")

	empty := ansi.Strip(RenderColumn(ColumnProps{Status: models.StatusCompleted, Width: 40, Now: testNow}))
	assert.Contains(t, empty, "Completed (0)")
	assert.Contains(t, empty, "No tasks")
}

func TestRenderColumn_ScrollIndicators(t *testing.T) {
	var tasks []*models.Task
	for range 6 {
		tasks = append(tasks, testTask())
	}
	out := ansi.Strip(RenderColumn(ColumnProps{
		Status:       models.StatusPending,
		Tasks:        tasks,
		Height:       columnOverhead + 2*TaskCardHeight,
		Width:        40,
		ScrollOffset: 1,
		Now:          testNow,
	}))
	assert.Contains(t, out, "▲ more above")
	assert.Contains(t, out, "▼ more below")
}

func TestVisibleCards(t *testing.T) {
	assert.Equal(t, 1, VisibleCards(0))
	assert.Equal(t, 3, VisibleCards(columnOverhead+3*TaskCardHeight))
}

func TestRenderStats(t *testing.T) {
	out := ansi.Strip(RenderStats(derive.Stats{Total: 3, Completed: 1, Pending: 1, Overdue: 1}, 120))
	for _, label := range []string{"Total Tasks", "Completed", "Pending", "Overdue"} {
		assert.Contains(t, out, label)
	}
}

func TestRenderStatusBar(t *testing.T) {
	out := ansi.Strip(RenderStatusBar(StatusBarProps{
		Width:    100,
		ViewMode: "list",
		SortKey:  "Due Date",
		Visible:  1,
		HelpKey:  "?",
	}))
	assert.Contains(t, out, "sorted by Due Date")
	assert.Contains(t, out, "1 task ")
	assert.Contains(t, out, "press ? for help")
}

func TestRenderMetadataColumn(t *testing.T) {
	out := ansi.Strip(RenderMetadataColumn(MetadataColumnProps{
		Task:  testTask(),
		Now:   testNow,
		Width: 40,
	}))
	assert.Contains(t, out, "To Do")
	assert.Contains(t, out, "Low")
	assert.Contains(t, out, "(overdue)")
	assert.Contains(t, out, "personal", "unknown project falls back to its id")
}

func TestRenderDescription_Empty(t *testing.T) {
	assert.Contains(t, ansi.Strip(RenderDescription(DescriptionProps{Width: 40})), "No description")
}

func TestRenderDescription_Markdown(t *testing.T) {
	out := ansi.Strip(RenderDescription(DescriptionProps{Description: "**Buy** milk", Width: 40}))
	assert.Contains(t, out, "Buy milk")
	assert.NotContains(t, out, "**")
}

func TestMarkdownStyleFollowsPreset(t *testing.T) {
	t.Cleanup(func() { InitStyles(config.DefaultColorScheme()) })

	tests := map[string]string{"default": "dark", "light": "light", "monochrome": "notty"}
	for preset, want := range tests {
		InitStyles(config.PresetColorScheme(preset))
		assert.Equal(t, want, theme.MarkdownStyle(), preset)
	}
}
