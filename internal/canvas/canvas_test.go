package canvas

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	c := New(20, 5)

	if c.Width() != 20 {
		t.Errorf("Width() = %d, expected 20", c.Width())
	}
	if c.Height() != 5 {
		t.Errorf("Height() = %d, expected 5", c.Height())
	}

	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if c.Get(x, y) != ' ' {
				t.Fatalf("new canvas should be blank, got %q at (%d, %d)", c.Get(x, y), x, y)
			}
		}
	}
}

func TestNewNegativeSize(t *testing.T) {
	c := New(-3, -1)
	if c.Width() != 0 || c.Height() != 0 {
		t.Errorf("negative size should clamp to 0, got %dx%d", c.Width(), c.Height())
	}
	c.Set(0, 0, 'x', ColorRed) // Should not panic
}

func TestSetGetCell(t *testing.T) {
	c := New(10, 10)

	c.Set(5, 5, 'X', ColorCyan)
	cell := c.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorCyan {
		t.Errorf("GetCell(5, 5) = %+v, expected X in cyan", cell)
	}

	// Out of bounds should be silent
	c.Set(-1, 0, 'A', ColorRed)
	c.Set(100, 0, 'A', ColorRed)
	c.Set(0, -1, 'A', ColorRed)
	c.Set(0, 100, 'A', ColorRed)

	if c.Get(-1, 0) != ' ' || c.Get(0, 100) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestClear(t *testing.T) {
	c := New(4, 2)
	c.DrawText(0, 0, "abcd", ColorGreen)
	c.Clear()

	if got := c.GetCell(1, 0); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("Clear left %+v", got)
	}
}

func TestDrawText(t *testing.T) {
	c := New(10, 1)
	c.DrawText(8, 0, "hello", ColorDefault)

	if c.Row(0) != "        he" {
		t.Errorf("clipped text row = %q", c.Row(0))
	}

	c.Clear()
	c.DrawText(0, 0, "★☆", ColorYellow)
	if c.Get(0, 0) != '★' || c.Get(1, 0) != '☆' {
		t.Errorf("multibyte runes should occupy one cell each, got %q", c.Row(0))
	}
}

func TestDrawTextCentered(t *testing.T) {
	c := New(11, 1)
	c.DrawTextCentered(0, "abc", ColorDefault)

	if c.Row(0) != "    abc    " {
		t.Errorf("centered row = %q", c.Row(0))
	}
}

func TestDrawBox(t *testing.T) {
	c := New(5, 3)
	c.DrawBox(NewRect(0, 0, 5, 3), ColorGray)

	want := []string{
		"┌───┐",
		"│   │",
		"└───┘",
	}
	for y, row := range want {
		if c.Row(y) != row {
			t.Errorf("row %d = %q, want %q", y, c.Row(y), row)
		}
	}

	tiny := New(3, 3)
	tiny.DrawBox(NewRect(0, 0, 1, 1), ColorGray)
	if strings.TrimSpace(tiny.String()) != "" {
		t.Error("degenerate box should draw nothing")
	}
}

func TestResize(t *testing.T) {
	c := New(4, 4)
	c.Set(1, 1, 'x', ColorDefault)
	c.Resize(6, 2)

	if c.Width() != 6 || c.Height() != 2 {
		t.Errorf("Resize gave %dx%d", c.Width(), c.Height())
	}
	if c.Get(1, 1) != ' ' {
		t.Error("Resize should clear the canvas")
	}
}

func TestTrimmed(t *testing.T) {
	c := New(6, 4)
	c.DrawText(0, 0, "ab", ColorDefault)
	c.DrawText(2, 1, "c", ColorDefault)

	if got := c.Trimmed(); got != "ab\n  c" {
		t.Errorf("Trimmed() = %q", got)
	}
}

func TestRect(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	if r.Right() != 6 || r.Bottom() != 8 {
		t.Errorf("edges = %d,%d", r.Right(), r.Bottom())
	}
	if !r.Contains(2, 3) || r.Contains(6, 3) || r.Contains(2, 8) {
		t.Error("Contains is not half-open")
	}
	if x, y := r.Center(); x != 4 || y != 5 {
		t.Errorf("Center() = %d,%d", x, y)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, want int
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.val, tt.lo, tt.hi, got, tt.want)
		}
	}
}
