package geom

import "testing"

func TestOutOfBounds(t *testing.T) {
	tests := []struct {
		name     string
		p        Position
		size     int
		expected bool
	}{
		{"origin", Position{0, 0}, 15, false},
		{"on positive edge", Position{15, 0}, 15, false},
		{"on negative edge", Position{0, -15}, 15, false},
		{"corner", Position{15, 15}, 15, false},
		{"past right edge", Position{16, 0}, 15, true},
		{"past left edge", Position{-16, 0}, 15, true},
		{"past top edge", Position{0, 16}, 15, true},
		{"past bottom edge", Position{0, -16}, 15, true},
		{"small board", Position{3, 0}, 2, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := OutOfBounds(tc.p, tc.size); got != tc.expected {
				t.Errorf("OutOfBounds(%v, %d) = %v, expected %v", tc.p, tc.size, got, tc.expected)
			}
		})
	}
}

func TestPositionAdd(t *testing.T) {
	p := Position{X: 3, Y: -2}

	if got := p.Add(Up); got != (Position{3, -1}) {
		t.Errorf("Add(Up) = %v, expected (3, -1)", got)
	}
	if got := p.Add(Left); got != (Position{2, -2}) {
		t.Errorf("Add(Left) = %v, expected (2, -2)", got)
	}

	// Add must not mutate the receiver
	if p != (Position{3, -2}) {
		t.Errorf("Add mutated receiver: %v", p)
	}
}

func TestNewDelta(t *testing.T) {
	tests := []struct {
		name    string
		dx, dy  int
		wantErr bool
	}{
		{"up", 0, 1, false},
		{"down", 0, -1, false},
		{"left", -1, 0, false},
		{"right", 1, 0, false},
		{"zero", 0, 0, true},
		{"diagonal", 1, 1, true},
		{"too fast", 2, 0, true},
		{"negative diagonal", -1, -1, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := NewDelta(tc.dx, tc.dy)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("NewDelta(%d, %d) succeeded, expected error", tc.dx, tc.dy)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewDelta(%d, %d) failed: %v", tc.dx, tc.dy, err)
			}
			if d.DX != tc.dx || d.DY != tc.dy {
				t.Errorf("NewDelta(%d, %d) = %v", tc.dx, tc.dy, d)
			}
		})
	}
}

func TestDeltaSameAxis(t *testing.T) {
	if !Left.SameAxis(Right) {
		t.Error("Left and Right should share an axis")
	}
	if !Up.SameAxis(Down) {
		t.Error("Up and Down should share an axis")
	}
	if Up.SameAxis(Left) {
		t.Error("Up and Left should not share an axis")
	}
	if Right.SameAxis(Down) {
		t.Error("Right and Down should not share an axis")
	}
}

func TestDeltaString(t *testing.T) {
	tests := []struct {
		d        Delta
		expected string
	}{
		{Up, "up"},
		{Down, "down"},
		{Left, "left"},
		{Right, "right"},
	}

	for _, tc := range tests {
		if got := tc.d.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}
