package damage

import "testing"

func TestRect_ZeroValueIsEmpty(t *testing.T) {
	var r Rect
	if !r.IsEmpty() {
		t.Error("zero Rect is not empty")
	}
}

func TestRect_ExpandToPoint(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		x, y int
		want Rect
	}{
		{"empty becomes unit rect", Rect{}, 5, -3, Rect{5, -3, 1, 1}},
		{"point inside is a no-op", Rect{0, 0, 10, 10}, 4, 4, Rect{0, 0, 10, 10}},
		{"extend right and down", Rect{0, 0, 2, 2}, 9, 5, Rect{0, 0, 10, 6}},
		{"extend left and up", Rect{0, 0, 2, 2}, -3, -1, Rect{-3, -1, 5, 3}},
		{"corner already covered", Rect{0, 0, 2, 2}, 1, 1, Rect{0, 0, 2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.r
			r.ExpandToPoint(tt.x, tt.y)
			if r != tt.want {
				t.Errorf("ExpandToPoint(%d, %d) on %v = %v, want %v",
					tt.x, tt.y, tt.r, r, tt.want)
			}
		})
	}
}

func TestRect_ExpandToRect(t *testing.T) {
	tests := []struct {
		name string
		r, o Rect
		want Rect
	}{
		{"empty plus rect", Rect{}, Rect{2, 3, 4, 5}, Rect{2, 3, 4, 5}},
		{"rect plus empty", Rect{2, 3, 4, 5}, Rect{}, Rect{2, 3, 4, 5}},
		{"disjoint union", Rect{0, 0, 2, 2}, Rect{10, 10, 2, 2}, Rect{0, 0, 12, 12}},
		{"overlapping union", Rect{0, 0, 4, 4}, Rect{2, 2, 4, 4}, Rect{0, 0, 6, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.r
			r.ExpandToRect(tt.o)
			if r != tt.want {
				t.Errorf("ExpandToRect(%v) on %v = %v, want %v", tt.o, tt.r, r, tt.want)
			}
		})
	}
}

func TestRect_Intersect(t *testing.T) {
	tests := []struct {
		name string
		r, o Rect
		want Rect
	}{
		{"identical", Rect{0, 0, 4, 4}, Rect{0, 0, 4, 4}, Rect{0, 0, 4, 4}},
		{"partial overlap", Rect{0, 0, 4, 4}, Rect{2, 2, 4, 4}, Rect{2, 2, 2, 2}},
		{"disjoint", Rect{0, 0, 2, 2}, Rect{5, 5, 2, 2}, Rect{}},
		{"touching edges only", Rect{0, 0, 2, 2}, Rect{2, 0, 2, 2}, Rect{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Intersect(tt.o); got != tt.want {
				t.Errorf("%v.Intersect(%v) = %v, want %v", tt.r, tt.o, got, tt.want)
			}
		})
	}
}
