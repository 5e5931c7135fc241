//go:build !tinygo

package hal

import (
	"image/color"
	"strings"
	"testing"

	fcolor "github.com/fatih/color"
)

func TestDumpBoard(t *testing.T) {
	prev := fcolor.NoColor
	fcolor.NoColor = false
	defer func() { fcolor.NoColor = prev }()

	sim := SimConfig{
		BoardWidth:  2,
		BoardHeight: 2,
		BoardIndex:  func(x, y int) int { return y*2 + x },
	}
	frame := []color.RGBA{{R: 255, A: 255}, {}, {}, {G: 255, A: 255}}
	got := dumpBoard(sim, frame)

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines=%d, want 3:\n%s", len(lines), got)
	}
	if !strings.HasPrefix(lines[0], "2 ") || !strings.HasPrefix(lines[1], "1 ") {
		t.Fatalf("rank labels wrong:\n%s", got)
	}
	if lines[2] != "  a b " {
		t.Fatalf("file labels=%q, want %q", lines[2], "  a b ")
	}
	if !strings.Contains(lines[1], "48;2;255;0;0") {
		t.Fatalf("rank 1 missing red cell: %q", lines[1])
	}
	if !strings.Contains(lines[0], "48;2;0;255;0") {
		t.Fatalf("rank 2 missing green cell: %q", lines[0])
	}
}
