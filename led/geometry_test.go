package led

import "testing"

func TestIndexBijection(t *testing.T) {
	for _, geo := range []Geometry{
		{Width: 8, Height: 8, OriginBottomRight: true, Serpentine: true},
		{Width: 8, Height: 8, OriginBottomRight: true, Serpentine: false},
		{Width: 8, Height: 8, OriginBottomRight: false, Serpentine: true},
		{Width: 8, Height: 8, OriginBottomRight: false, Serpentine: false},
		{Width: 5, Height: 3, OriginBottomRight: true, Serpentine: true},
		{Width: 3, Height: 4, OriginBottomRight: false, Serpentine: true},
	} {
		seen := make(map[int][2]int, geo.Len())
		for y := 0; y < geo.Height; y++ {
			for x := 0; x < geo.Width; x++ {
				i := geo.Index(x, y)
				if i < 0 || i >= geo.Len() {
					t.Fatalf("%+v: Index(%d,%d) got=%d, want in [0,%d)", geo, x, y, i, geo.Len())
				}
				if prev, dup := seen[i]; dup {
					t.Fatalf("%+v: Index(%d,%d) = %d collides with %v", geo, x, y, i, prev)
				}
				seen[i] = [2]int{x, y}
			}
		}
		if len(seen) != geo.Len() {
			t.Fatalf("%+v: image size got=%d, want %d", geo, len(seen), geo.Len())
		}
	}
}

func TestIndexWiring(t *testing.T) {
	geo := DefaultGeometry()
	tests := []struct {
		x, y, want int
	}{
		{7, 0, 0},  // h1 starts the chain
		{0, 0, 7},  // a1 ends the first row
		{0, 1, 8},  // second row runs left to right
		{7, 1, 15}, //
		{7, 2, 16},
		{0, 7, 56},
		{7, 7, 63},
	}
	for _, tt := range tests {
		if got := geo.Index(tt.x, tt.y); got != tt.want {
			t.Fatalf("Index(%d,%d) got=%d, want %d", tt.x, tt.y, got, tt.want)
		}
	}

	top := Geometry{Width: 8, Height: 8, Serpentine: true}
	if got := top.Index(0, 7); got != 0 {
		t.Fatalf("top-left Index(0,7) got=%d, want 0", got)
	}
	if got := top.Index(0, 6); got != 15 {
		t.Fatalf("top-left Index(0,6) got=%d, want 15", got)
	}
}

func TestIndexOutOfBounds(t *testing.T) {
	geo := DefaultGeometry()
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}} {
		if got := geo.Index(c[0], c[1]); got != -1 {
			t.Fatalf("Index(%d,%d) got=%d, want -1", c[0], c[1], got)
		}
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in   string
		want Square
		ok   bool
	}{
		{"a1", Square{0, 0}, true},
		{"h8", Square{7, 7}, true},
		{"E2", Square{4, 1}, true},
		{"e2e4", Square{4, 1}, true},
		{"", Square{}, false},
		{"e", Square{}, false},
		{"i1", Square{}, false},
		{"a9", Square{}, false},
		{"a0", Square{}, false},
		{"xx", Square{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseSquare(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Fatalf("ParseSquare(%q) got=%v,%v, want %v,%v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
	if s := (Square{4, 3}).String(); s != "e4" {
		t.Fatalf("String() got=%q, want e4", s)
	}
}
