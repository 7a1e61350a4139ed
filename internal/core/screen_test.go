package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("dimensions = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen should hold uncolored spaces, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetWithColor(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetWithColor(3, 4, '#', ColorBrown)
	c := s.GetCell(3, 4)
	if c.Rune != '#' || c.Color != ColorBrown {
		t.Errorf("GetCell(3, 4) = %+v, expected brown '#'", c)
	}
	if s.Get(3, 4) != '#' {
		t.Errorf("Get(3, 4) = %q, expected '#'", s.Get(3, 4))
	}

	// Plain Set resets the color.
	s.Set(3, 4, 'x')
	if s.GetCell(3, 4).Color != ColorDefault {
		t.Error("Set should write the default color")
	}

	// Out of bounds is silent.
	s.SetWithColor(-1, 0, 'A', ColorRed)
	s.SetWithColor(0, 100, 'A', ColorRed)
	if s.GetCell(-1, 0) != blankCell {
		t.Error("out of bounds GetCell should return a blank cell")
	}
}

func TestScreenDrawTextWithColor(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextWithColor(2, 1, "Héllo", ColorCyan)

	for i, ch := range []rune("Héllo") {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch || c.Color != ColorCyan {
			t.Errorf("expected cyan %q at (%d, 1), got %+v", ch, 2+i, c)
		}
	}

	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Error("DrawTextCentered: text not at expected position")
	}
}

func TestScreenFillCellAndClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.FillCell(Cell{Rune: '#', Color: ColorRed})
	if s.GetCell(4, 4) != (Cell{Rune: '#', Color: ColorRed}) {
		t.Error("FillCell should fill every cell")
	}

	s.Clear()
	if s.String() != strings.TrimSuffix(strings.Repeat("     \n", 5), "\n") {
		t.Errorf("after Clear, screen = %q", s.String())
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for p, want := range corners {
		if got := s.GetCell(p[0], p[1]); got.Rune != want || got.Color != ColorGray {
			t.Errorf("corner at %v = %+v, expected gray %q", p, got, want)
		}
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawHLine(0, 8, 4, '=', ColorYellow)

	for x := 0; x < 4; x++ {
		if c := s.GetCell(x, 8); c.Rune != '=' || c.Color != ColorYellow {
			t.Errorf("GetCell(%d, 8) = %+v, expected yellow '='", x, c)
		}
	}
	if s.Get(4, 8) != ' ' {
		t.Error("DrawHLine should stop after length cells")
	}

	s.DrawHLine(8, 0, 5, '-', ColorGray)
	if s.Get(9, 0) != '-' {
		t.Error("DrawHLine should draw up to the right edge")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextWithColor(0, 0, "Hello", ColorGreen)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after resize, dimensions = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if !strings.HasPrefix(firstRow(s), "Hello") {
		t.Errorf("content should be preserved, row 0 = %q", firstRow(s))
	}
	if s.GetCell(0, 0).Color != ColorGreen {
		t.Error("colors should be preserved across resize")
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(firstRow(s), "Hello") {
		t.Errorf("content should be preserved after enlarging, row 0 = %q", firstRow(s))
	}
	if s.Get(14, 7) != ' ' {
		t.Error("enlarged area should be blank")
	}
}

func firstRow(s *Screen) string {
	row, _, _ := strings.Cut(s.String(), "\n")
	return row
}
