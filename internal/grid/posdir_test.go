package grid

import "testing"

func TestPositionAdd(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Position
	}{
		{North, Position{0, 1}},
		{South, Position{0, -1}},
		{East, Position{1, 0}},
		{West, Position{-1, 0}},
	}
	for _, tt := range tests {
		if got := Origin.Add(tt.dir); got != tt.want {
			t.Errorf("Origin.Add(%v) = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestPositionAdd_OppositeRoundTrip(t *testing.T) {
	start := Position{X: -7, Y: 12}
	for _, d := range Directions() {
		if got := start.Add(d).Add(d.Opposite()); got != start {
			t.Errorf("%v then %v ended at %v, want %v", d, d.Opposite(), got, start)
		}
	}
}

func TestPositionAsMapKey(t *testing.T) {
	set := map[Position]struct{}{}
	set[Position{1, 2}] = struct{}{}
	set[Origin.Add(East).Add(North).Add(North)] = struct{}{}
	if len(set) != 1 {
		t.Errorf("Expected equal positions to share a key, got %d entries", len(set))
	}
}
