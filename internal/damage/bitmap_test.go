package damage

import (
	"sort"
	"testing"
)

func TestTileBitmap_Create(t *testing.T) {
	tests := []struct {
		name           string
		tilesX, tilesY int
		wantNil        bool
	}{
		{"valid", 4, 4, false},
		{"single tile", 1, 1, false},
		{"wide", 130, 1, false},
		{"zero width", 0, 4, true},
		{"negative height", 4, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewTileBitmap(tt.tilesX, tt.tilesY)
			if (b == nil) != tt.wantNil {
				t.Fatalf("NewTileBitmap(%d, %d) nil = %v, want %v",
					tt.tilesX, tt.tilesY, b == nil, tt.wantNil)
			}
			if b == nil {
				return
			}
			if b.Count() != 0 {
				t.Errorf("new bitmap Count() = %d, want 0", b.Count())
			}
		})
	}
}

func TestTileBitmap_MarkAndDrain(t *testing.T) {
	b := NewTileBitmap(3, 3)
	b.Mark(0, 0)
	b.Mark(2, 1)
	b.Mark(2, 1) // marking twice is idempotent
	b.Mark(-1, 0)
	b.Mark(0, 3)

	if b.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", b.Count())
	}
	if !b.IsDirty(2, 1) || b.IsDirty(1, 1) {
		t.Error("IsDirty reports wrong tiles")
	}

	var got [][2]int
	b.Drain(func(tx, ty int) { got = append(got, [2]int{tx, ty}) })
	sort.Slice(got, func(i, j int) bool {
		return got[i][1]*3+got[i][0] < got[j][1]*3+got[j][0]
	})

	want := [][2]int{{0, 0}, {2, 1}}
	if len(got) != len(want) {
		t.Fatalf("Drain visited %d tiles, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Drain[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if b.Count() != 0 {
		t.Errorf("Count() after Drain = %d, want 0", b.Count())
	}
}

func TestTileBitmap_MarkRect(t *testing.T) {
	tests := []struct {
		name      string
		r         Rect
		wantCount int
	}{
		{"empty rect", Rect{}, 0},
		{"single pixel", Rect{10, 10, 1, 1}, 1},
		{"one tile exactly", Rect{0, 0, 64, 64}, 1},
		{"crosses one boundary", Rect{60, 0, 8, 8}, 2},
		{"crosses both boundaries", Rect{60, 60, 8, 8}, 4},
		{"clipped to viewport", Rect{-100, -100, 1000, 1000}, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewTileBitmap(4, 4)
			b.MarkRect(tt.r)
			if got := b.Count(); got != tt.wantCount {
				t.Errorf("MarkRect(%v) marked %d tiles, want %d", tt.r, got, tt.wantCount)
			}
		})
	}
}

func TestTileBitmap_MarkAll(t *testing.T) {
	// 130 tiles spans three words, the last one partial.
	b := NewTileBitmap(130, 1)
	b.MarkAll()
	if got := b.Count(); got != 130 {
		t.Errorf("Count() after MarkAll = %d, want 130", got)
	}

	n := 0
	b.Drain(func(_, _ int) { n++ })
	if n != 130 {
		t.Errorf("Drain visited %d tiles, want 130", n)
	}
}
