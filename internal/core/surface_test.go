package core

import (
	"strings"
	"testing"
)

func TestSurfaceSetGet(t *testing.T) {
	s := NewSurface(20, 10)

	s.Set(5, 5, 'X', ColorRed)
	if got := s.Get(5, 5); got != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", got)
	}
	if got := s.GetCell(5, 5).Color; got != ColorRed {
		t.Errorf("GetCell(5, 5).Color = %v, expected ColorRed", got)
	}

	// Untouched cells are blank
	if got := s.Get(0, 0); got != ' ' {
		t.Errorf("Get(0, 0) = %q, expected space", got)
	}
}

func TestSurfaceOutOfBounds(t *testing.T) {
	s := NewSurface(10, 10)

	// Should not panic
	s.Set(-1, 0, 'X', ColorDefault)
	s.Set(0, -1, 'X', ColorDefault)
	s.Set(10, 0, 'X', ColorDefault)
	s.Set(0, 10, 'X', ColorDefault)

	if got := s.Get(-5, 100); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, expected space", got)
	}
}

func TestSurfaceClear(t *testing.T) {
	s := NewSurface(10, 10)
	s.FillRect(NewRect(0, 0, 10, 10), '#', ColorGreen)
	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("cell (%d, %d) not cleared", x, y)
			}
		}
	}
}

func TestSurfaceDrawText(t *testing.T) {
	s := NewSurface(10, 3)
	s.DrawText(2, 1, "hi", ColorCyan)

	if got := s.Row(1); got != "  hi      " {
		t.Errorf("Row(1) = %q", got)
	}

	// Clipping at the right edge
	s.DrawText(8, 0, "long", ColorCyan)
	if got := s.Row(0); got != "        lo" {
		t.Errorf("clipped Row(0) = %q", got)
	}
}

func TestSurfaceDrawTextCentered(t *testing.T) {
	s := NewSurface(11, 1)
	s.DrawTextCentered(0, "abc", ColorDefault)
	if got := strings.TrimRight(s.Row(0), " "); got != "    abc" {
		t.Errorf("centered Row(0) = %q", got)
	}
}

func TestSurfaceFillRect(t *testing.T) {
	s := NewSurface(10, 10)
	s.FillRect(NewRect(2, 3, 3, 2), '#', ColorBlue)

	if s.Get(2, 3) != '#' || s.Get(4, 4) != '#' {
		t.Error("FillRect did not fill interior cells")
	}
	if s.Get(5, 3) != ' ' || s.Get(2, 5) != ' ' {
		t.Error("FillRect wrote outside the rect")
	}
}

func TestSurfaceResizePreservesContent(t *testing.T) {
	s := NewSurface(10, 10)
	s.Set(3, 3, 'A', ColorYellow)
	s.Set(9, 9, 'B', ColorYellow)

	s.Resize(5, 5)
	if s.Width() != 5 || s.Height() != 5 {
		t.Fatalf("Resize dims = %dx%d, expected 5x5", s.Width(), s.Height())
	}
	if s.Get(3, 3) != 'A' {
		t.Error("Resize dropped surviving content")
	}
	if s.Get(9, 9) != ' ' {
		t.Error("out-of-bounds read after shrink should be blank")
	}

	s.Resize(12, 12)
	if s.Get(3, 3) != 'A' {
		t.Error("grow dropped surviving content")
	}
	if s.Get(11, 11) != ' ' {
		t.Error("new cells after grow should be blank")
	}
}

func TestSurfaceString(t *testing.T) {
	s := NewSurface(3, 2)
	s.Set(0, 0, 'a', ColorDefault)
	s.Set(2, 1, 'b', ColorDefault)

	expected := "a  \n  b"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}
