package models

import (
	"encoding/json"
	"errors"
	"testing"
)

// ============================================================================
// Priority Tests
// ============================================================================

func TestPriority_Rank(t *testing.T) {
	tests := []struct {
		priority Priority
		want     int
	}{
		{PriorityUrgent, 4},
		{PriorityHigh, 3},
		{PriorityMedium, 2},
		{PriorityLow, 1},
		{PriorityUnknown, 0},
	}

	for _, tt := range tests {
		if got := tt.priority.Rank(); got != tt.want {
			t.Errorf("%s.Rank() = %d, want %d", tt.priority, got, tt.want)
		}
	}
}

func TestParsePriority(t *testing.T) {
	for _, p := range Priorities() {
		got, err := ParsePriority(p.String())
		if err != nil {
			t.Fatalf("ParsePriority(%q) error: %v", p.String(), err)
		}
		if got != p {
			t.Errorf("ParsePriority(%q) = %v, want %v", p.String(), got, p)
		}
	}

	if got, err := ParsePriority("  URGENT "); err != nil || got != PriorityUrgent {
		t.Errorf("ParsePriority should be case-insensitive, got %v, %v", got, err)
	}

	_, err := ParsePriority("critical")
	if !errors.Is(err, ErrUnknownPriority) {
		t.Errorf("ParsePriority(critical) error = %v, want ErrUnknownPriority", err)
	}
}

func TestPriority_Title(t *testing.T) {
	if PriorityMedium.Title() != "Medium" {
		t.Errorf("Title() = %q, want Medium", PriorityMedium.Title())
	}
}

// ============================================================================
// Status Tests
// ============================================================================

func TestStatus_Rank(t *testing.T) {
	if !(StatusPending.Rank() > StatusInProgress.Rank() && StatusInProgress.Rank() > StatusCompleted.Rank()) {
		t.Error("expected pending > in-progress > completed")
	}
}

func TestStatus_Transitions(t *testing.T) {
	tests := []struct {
		name string
		got  Status
		want Status
	}{
		{"complete pending", StatusPending.ToggleComplete(), StatusCompleted},
		{"complete in-progress", StatusInProgress.ToggleComplete(), StatusCompleted},
		{"uncomplete", StatusCompleted.ToggleComplete(), StatusPending},
		{"start pending", StatusPending.ToggleInProgress(), StatusInProgress},
		{"start completed", StatusCompleted.ToggleInProgress(), StatusInProgress},
		{"stop in-progress", StatusInProgress.ToggleInProgress(), StatusPending},
		{"advance pending", StatusPending.Next(), StatusInProgress},
		{"advance in-progress", StatusInProgress.Next(), StatusCompleted},
		{"advance completed wraps", StatusCompleted.Next(), StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestParseStatus_Aliases(t *testing.T) {
	for _, in := range []string{"in-progress", "in_progress", "InProgress", "IN-PROGRESS"} {
		got, err := ParseStatus(in)
		if err != nil || got != StatusInProgress {
			t.Errorf("ParseStatus(%q) = %v, %v; want in-progress", in, got, err)
		}
	}

	if _, err := ParseStatus("done"); !errors.Is(err, ErrUnknownStatus) {
		t.Errorf("ParseStatus(done) error = %v, want ErrUnknownStatus", err)
	}
}

func TestStatus_Label(t *testing.T) {
	want := []string{"To Do", "In Progress", "Completed"}
	for i, s := range Statuses() {
		if s.Label() != want[i] {
			t.Errorf("%v.Label() = %q, want %q", s, s.Label(), want[i])
		}
	}
}

// ============================================================================
// Task Tests
// ============================================================================

func TestTask_CloneDoesNotAliasTags(t *testing.T) {
	orig := &Task{ID: "1", Title: "a", Tags: []string{"x"}}
	c := orig.Clone()
	c.Tags[0] = "changed"
	c.Title = "b"

	if orig.Tags[0] != "x" {
		t.Error("Clone() shares the tags slice with the original")
	}
	if orig.Title != "a" {
		t.Error("Clone() modified the original title")
	}
}

func TestTask_CloneNilTags(t *testing.T) {
	c := (&Task{ID: "1"}).Clone()
	if c.Tags == nil {
		t.Error("Clone() should normalize nil tags to an empty slice")
	}
}

func TestTask_JSONUsesEnumNames(t *testing.T) {
	task := &Task{ID: "1", Title: "a", Priority: PriorityUrgent, Status: StatusInProgress, Tags: []string{}}
	data, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if decoded["priority"] != "urgent" {
		t.Errorf("priority = %v, want urgent", decoded["priority"])
	}
	if decoded["status"] != "in-progress" {
		t.Errorf("status = %v, want in-progress", decoded["status"])
	}
}

func TestSeedTasks(t *testing.T) {
	seeds := SeedTasks()
	if len(seeds) != 3 {
		t.Fatalf("SeedTasks() returned %d tasks, want 3", len(seeds))
	}

	seen := map[string]bool{}
	for _, task := range seeds {
		if seen[task.ID] {
			t.Errorf("duplicate seed id %q", task.ID)
		}
		seen[task.ID] = true
		if !task.Priority.Valid() || !task.Status.Valid() {
			t.Errorf("seed %q has invalid enum values", task.ID)
		}
	}
}

func TestDefaultProjects(t *testing.T) {
	projects := DefaultProjects()
	if len(projects) != 3 || projects[0].ID != "work" {
		t.Errorf("DefaultProjects() = %+v, want work first of three", projects)
	}
}
