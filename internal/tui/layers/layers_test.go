package layers

import "testing"

func TestCreateCenteredLayer_Empty(t *testing.T) {
	if CreateCenteredLayer("", 80, 24) != nil {
		t.Error("empty content should produce no layer")
	}
}

func TestCreateCenteredLayer_Position(t *testing.T) {
	if CreateCenteredLayer("abcd\nefgh", 20, 10) == nil {
		t.Fatal("expected a layer")
	}

	x, y := centerOffset("abcd\nefgh", 20, 10)
	if x != 8 || y != 4 {
		t.Errorf("offset = (%d,%d), want (8,4)", x, y)
	}

	// Content larger than the screen pins to the corner
	x, y = centerOffset("abcdefghij", 4, 1)
	if x != 0 || y != 0 {
		t.Errorf("offset = (%d,%d), want (0,0)", x, y)
	}
}

func TestModalWidth(t *testing.T) {
	tests := []struct {
		screen, min, max, want int
	}{
		{200, 50, 80, 80},
		{120, 50, 80, 60},
		{60, 50, 80, 50},
		{30, 50, 80, 28},
	}
	for _, tt := range tests {
		if got := ModalWidth(tt.screen, 2, tt.min, tt.max); got != tt.want {
			t.Errorf("ModalWidth(%d) = %d, want %d", tt.screen, got, tt.want)
		}
	}
}
