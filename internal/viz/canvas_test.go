package viz

import (
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(10, 5)

	c.Set(0, 0)
	if !c.Dot(0, 0) {
		t.Error("expected dot at cell (0,0)")
	}
	if c.Dot(1, 0) {
		t.Error("unexpected dot at cell (1,0)")
	}

	// Out-of-range sets are ignored.
	c.Set(-1, 2)
	c.Set(100, 100)
}

func TestCanvasGlyphOverlay(t *testing.T) {
	c := NewCanvas(4, 2)
	c.SetGlyph(1, 0, '+')

	if c.Glyph(1, 0) != '+' {
		t.Errorf("expected '+', got %q", c.Glyph(1, 0))
	}
	if !strings.Contains(c.String(), "+") {
		t.Error("overlay glyph should render in String output")
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(3, 3)
	c.SetGlyph(0, 0, 'x')

	c.Clear()
	if c.Dot(1, 0) || c.Glyph(0, 0) != 0 {
		t.Error("clear should drop dots and glyphs")
	}
}

func TestCanvasCopyFrom(t *testing.T) {
	src := NewCanvas(4, 2)
	src.Set(0, 0)
	src.SetGlyph(2, 1, '-')

	dst := NewCanvas(4, 2)
	dst.Set(7, 7)
	dst.CopyFrom(src)

	if !dst.Dot(0, 0) || dst.Glyph(2, 1) != '-' {
		t.Error("copy should carry dots and glyphs")
	}
	if dst.Dot(3, 1) {
		t.Error("copy should overwrite prior contents")
	}

	// Mismatched dimensions are a no-op.
	other := NewCanvas(2, 2)
	other.CopyFrom(src)
	if other.Dot(0, 0) {
		t.Error("mismatched copy should be ignored")
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawLine(0, 0, 19, 0)

	for col := 0; col < 10; col++ {
		if !c.Dot(col, 0) {
			t.Errorf("expected horizontal line to light cell %d", col)
		}
	}
}

func TestCanvasStringShape(t *testing.T) {
	c := NewCanvas(6, 3)
	lines := strings.Split(strings.TrimRight(c.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(lines))
	}
	for _, line := range lines {
		if len([]rune(line)) != 6 {
			t.Errorf("expected 6 runes per row, got %d", len([]rune(line)))
		}
	}
}
