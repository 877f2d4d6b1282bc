package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func day(d int) time.Time {
	return time.Date(2024, time.December, d, 0, 0, 0, 0, time.Local)
}

func ids(tasks []*models.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func mk(id string, p models.Priority, s models.Status, due time.Time) *models.Task {
	return &models.Task{ID: id, Title: id, Priority: p, Status: s, DueDate: due, ProjectID: "work", Tags: []string{}}
}

// ============================================================================
// FILTER TESTS
// ============================================================================

func TestFilterByProject(t *testing.T) {
	seeds := models.SeedTasks()

	tests := []struct {
		name    string
		project string
		want    []string
	}{
		{"all", models.AllProjects, []string{"1", "2", "3"}},
		{"work", "work", []string{"1", "2"}},
		{"personal", "personal", []string{"3"}},
		{"health empty", "health", []string{}},
		{"unknown", "garden", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterByProject(seeds, tt.project)))
		})
	}
}

func TestFilterByProject_DoesNotMutate(t *testing.T) {
	seeds := models.SeedTasks()
	_ = FilterByProject(seeds, "personal")
	assert.Equal(t, []string{"1", "2", "3"}, ids(seeds))
}

// ============================================================================
// SORT TESTS
// ============================================================================

func TestSortTasks_DueDate(t *testing.T) {
	sorted := SortTasks(models.SeedTasks(), SortByDueDate)
	assert.Equal(t, []string{"3", "2", "1"}, ids(sorted), "Dec 23, Dec 24, Dec 25")
}

func TestSortTasks_PriorityDescending(t *testing.T) {
	tasks := []*models.Task{
		mk("low", models.PriorityLow, models.StatusPending, day(1)),
		mk("urgent", models.PriorityUrgent, models.StatusPending, day(1)),
		mk("medium", models.PriorityMedium, models.StatusPending, day(1)),
		mk("high", models.PriorityHigh, models.StatusPending, day(1)),
	}
	assert.Equal(t, []string{"urgent", "high", "medium", "low"}, ids(SortTasks(tasks, SortByPriority)))
}

func TestSortTasks_PriorityStable(t *testing.T) {
	a := mk("a", models.PriorityHigh, models.StatusPending, day(1))
	b := mk("b", models.PriorityHigh, models.StatusPending, day(2))
	c := mk("c", models.PriorityLow, models.StatusPending, day(3))

	perms := [][]*models.Task{
		{a, b, c}, {a, c, b}, {c, a, b},
		{b, a, c}, {b, c, a}, {c, b, a},
	}
	for _, in := range perms {
		got := SortTasks(in, SortByPriority)
		require.Len(t, got, 3)
		assert.Equal(t, "c", got[2].ID, "input %v", ids(in))

		// Equal-rank tasks keep their relative input order
		wantFirst := a.ID
		for _, task := range in {
			if task == b {
				wantFirst = b.ID
				break
			}
			if task == a {
				break
			}
		}
		assert.Equal(t, wantFirst, got[0].ID, "input %v", ids(in))
	}
}

func TestSortTasks_StatusDescendingRank(t *testing.T) {
	tasks := []*models.Task{
		mk("done", models.PriorityLow, models.StatusCompleted, day(1)),
		mk("doing", models.PriorityLow, models.StatusInProgress, day(1)),
		mk("todo", models.PriorityLow, models.StatusPending, day(1)),
	}
	assert.Equal(t, []string{"todo", "doing", "done"}, ids(SortTasks(tasks, SortByStatus)))
}

func TestSortTasks_UnknownKeyKeepsOrder(t *testing.T) {
	seeds := models.SeedTasks()
	assert.Equal(t, []string{"1", "2", "3"}, ids(SortTasks(seeds, SortUnknown)))
}

func TestSortTasks_DoesNotMutateInput(t *testing.T) {
	seeds := models.SeedTasks()
	_ = SortTasks(seeds, SortByDueDate)
	assert.Equal(t, []string{"1", "2", "3"}, ids(seeds))
}

func TestSortTasks_Empty(t *testing.T) {
	assert.Empty(t, SortTasks(nil, SortByPriority))
	assert.NotNil(t, SortTasks(nil, SortByPriority))
}

func TestParseSortKey(t *testing.T) {
	for _, k := range SortKeys() {
		got, err := ParseSortKey(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := ParseSortKey("title")
	assert.ErrorIs(t, err, ErrUnknownSortKey)
}

func TestSortKey_Next(t *testing.T) {
	assert.Equal(t, SortByPriority, SortByDueDate.Next())
	assert.Equal(t, SortByStatus, SortByPriority.Next())
	assert.Equal(t, SortByDueDate, SortByStatus.Next())
	assert.Equal(t, SortByDueDate, SortUnknown.Next())
}

// ============================================================================
// OVERDUE / STATS TESTS
// ============================================================================

func TestIsOverdue(t *testing.T) {
	now := time.Date(2024, time.December, 24, 15, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		task *models.Task
		want bool
	}{
		{"yesterday pending", mk("a", models.PriorityLow, models.StatusPending, day(23)), true},
		{"yesterday in-progress", mk("a", models.PriorityLow, models.StatusInProgress, day(23)), true},
		{"yesterday completed", mk("a", models.PriorityLow, models.StatusCompleted, day(23)), false},
		{"today midnight", mk("a", models.PriorityLow, models.StatusPending, day(24)), false},
		{"today earlier hour", mk("a", models.PriorityLow, models.StatusPending, day(24).Add(9*time.Hour)), false},
		{"tomorrow", mk("a", models.PriorityLow, models.StatusPending, day(25)), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOverdue(tt.task, now))
		})
	}
}

func TestComputeStats_Seeds(t *testing.T) {
	now := time.Date(2024, time.December, 24, 12, 0, 0, 0, time.Local)

	stats := ComputeStats(models.SeedTasks(), now)

	// Task 3 (Dec 23, pending) is the only overdue one
	assert.Equal(t, Stats{Total: 3, Completed: 0, Pending: 2, Overdue: 1}, stats)
}

func TestComputeStats_CompletingShiftsCounts(t *testing.T) {
	now := time.Date(2024, time.December, 24, 12, 0, 0, 0, time.Local)
	seeds := models.SeedTasks()
	before := ComputeStats(seeds, now)

	seeds[1].Status = models.StatusCompleted
	after := ComputeStats(seeds, now)

	assert.Equal(t, before.Completed+1, after.Completed)
	assert.Equal(t, before.Pending-1, after.Pending)
	assert.Equal(t, before.Total, after.Total)
}

func TestComputeStats_Empty(t *testing.T) {
	assert.Equal(t, Stats{}, ComputeStats(nil, time.Now()))
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("X", -5*3600)
	in := time.Date(2024, time.March, 3, 23, 59, 59, 999, loc)
	assert.Equal(t, time.Date(2024, time.March, 3, 0, 0, 0, 0, loc), StartOfDay(in))
}

// ============================================================================
// GROUPING TESTS
// ============================================================================

func TestGroupByStatus(t *testing.T) {
	tasks := []*models.Task{
		mk("p1", models.PriorityLow, models.StatusPending, day(1)),
		mk("c1", models.PriorityLow, models.StatusCompleted, day(1)),
		mk("i1", models.PriorityLow, models.StatusInProgress, day(1)),
		mk("p2", models.PriorityLow, models.StatusPending, day(1)),
	}

	b := GroupByStatus(tasks)

	assert.Equal(t, []string{"p1", "p2"}, ids(b.Pending))
	assert.Equal(t, []string{"i1"}, ids(b.InProgress))
	assert.Equal(t, []string{"c1"}, ids(b.Completed))
	assert.Equal(t, len(tasks), b.Len(), "every task lands in exactly one column")

	cols := b.Columns()
	require.Len(t, cols, 3)
	assert.Equal(t, models.StatusPending, cols[0].Status)
	assert.Equal(t, models.StatusInProgress, cols[1].Status)
	assert.Equal(t, models.StatusCompleted, cols[2].Status)
}

func TestGroupByStatus_Empty(t *testing.T) {
	b := GroupByStatus(nil)
	assert.Equal(t, 0, b.Len())
	assert.NotNil(t, b.Pending)
}
