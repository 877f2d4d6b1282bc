package state

import (
	"testing"
	"time"

	"github.com/thenoetrevino/taskflow/internal/events"
)

// TestClampSelection ensures the selection never points past the last row.
// Edge case: tasks deleted or filtered away under the cursor.
func TestClampSelection(t *testing.T) {
	s := NewUIState()
	s.SetSelectedTask(7)

	s.ClampSelection(3)
	if s.SelectedTask() != 2 {
		t.Errorf("SelectedTask() = %d, want 2", s.SelectedTask())
	}

	s.ClampSelection(0)
	if s.SelectedTask() != 0 {
		t.Errorf("SelectedTask() with empty list = %d, want 0", s.SelectedTask())
	}
}

func TestMoveSelection_Bounds(t *testing.T) {
	s := NewUIState()

	if s.MoveSelection(-1, 3) {
		t.Error("moving up from the first row should be a no-op")
	}
	if !s.MoveSelection(1, 3) || s.SelectedTask() != 1 {
		t.Errorf("SelectedTask() = %d, want 1", s.SelectedTask())
	}
	s.MoveSelection(10, 3)
	if s.SelectedTask() != 2 {
		t.Errorf("SelectedTask() = %d, want clamp to 2", s.SelectedTask())
	}
	if s.MoveSelection(1, 0) {
		t.Error("moving in an empty list should be a no-op")
	}
}

func TestEnsureTaskVisible(t *testing.T) {
	s := NewUIState()

	s.SetSelectedTask(9)
	s.EnsureTaskVisible(0, 4)
	if got := s.ScrollOffset(0); got != 6 {
		t.Errorf("ScrollOffset(0) = %d, want 6", got)
	}

	s.SetSelectedTask(2)
	s.EnsureTaskVisible(0, 4)
	if got := s.ScrollOffset(0); got != 2 {
		t.Errorf("ScrollOffset(0) = %d, want 2", got)
	}

	// Other columns are independent
	if got := s.ScrollOffset(1); got != 0 {
		t.Errorf("ScrollOffset(1) = %d, want 0", got)
	}
}

func TestDeleteConfirmFlow(t *testing.T) {
	s := NewUIState()
	s.RequestDelete("abc")

	if s.Mode() != DeleteConfirmMode || s.PendingDeleteID() != "abc" {
		t.Fatalf("RequestDelete() mode=%v id=%q", s.Mode(), s.PendingDeleteID())
	}

	s.ClearDelete()
	if s.Mode() != NormalMode || s.PendingDeleteID() != "" {
		t.Errorf("ClearDelete() mode=%v id=%q", s.Mode(), s.PendingDeleteID())
	}
}

func TestContentHeightMinimum(t *testing.T) {
	s := NewUIState()
	s.SetHeight(3)
	if s.ContentHeight() != 5 {
		t.Errorf("ContentHeight() = %d, want minimum 5", s.ContentHeight())
	}
}

func TestResetSelection(t *testing.T) {
	s := NewUIState()
	s.SetSelectedColumn(2)
	s.SetSelectedTask(4)
	s.EnsureTaskVisible(2, 2)

	s.ResetSelection()

	if s.SelectedColumn() != 0 || s.SelectedTask() != 0 || s.ScrollOffset(2) != 0 {
		t.Errorf("ResetSelection() left col=%d task=%d offset=%d",
			s.SelectedColumn(), s.SelectedTask(), s.ScrollOffset(2))
	}
}

// ============================================================================
// Notification state
// ============================================================================

func TestNotificationState_Expire(t *testing.T) {
	base := time.Date(2024, 12, 24, 12, 0, 0, 0, time.UTC)
	s := NewNotificationState()
	s.Add(events.New(events.TaskCreated, "1", "old", base))
	s.Add(events.New(events.TaskDeleted, "1", "new", base.Add(2*time.Second)))

	if !s.Expire(base.Add(NotificationTTL), NotificationTTL) {
		t.Fatal("Expire() should drop the old notification")
	}
	latest, ok := s.Latest()
	if !ok || latest.Message != "new" || len(s.All()) != 1 {
		t.Errorf("after Expire got %+v", s.All())
	}

	if s.Expire(base.Add(NotificationTTL), NotificationTTL) {
		t.Error("second Expire() at the same time should remove nothing")
	}
}

func TestNotificationState_Cap(t *testing.T) {
	s := NewNotificationState()
	for i := range 8 {
		s.Add(events.New(events.TaskUpdated, "", string(rune('a'+i)), time.Time{}))
	}
	if len(s.All()) != maxNotifications {
		t.Errorf("len = %d, want %d", len(s.All()), maxNotifications)
	}
	latest, _ := s.Latest()
	if latest.Message != "h" {
		t.Errorf("Latest() = %q, want h", latest.Message)
	}
}
