package thumb

import (
	"bytes"
	"strings"
	"testing"

	"github.com/playform/playform/internal/core"
)

func TestPlaceholderInitials(t *testing.T) {
	svg := string(Placeholder("Space Snake Deluxe"))

	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatalf("not an SVG document: %q", svg[:40])
	}
	// At most two initials
	if !strings.Contains(svg, ">SS</text>") {
		t.Errorf("initials missing or wrong: %s", svg)
	}
}

func TestPlaceholderDeterministic(t *testing.T) {
	a := Placeholder("Snake")
	b := Placeholder("Snake")
	if !bytes.Equal(a, b) {
		t.Error("same title produced different placeholders")
	}

	c := Placeholder("Pong")
	if bytes.Equal(a, c) {
		t.Error("different titles produced identical placeholders")
	}
}

func TestPlaceholderEmptyTitle(t *testing.T) {
	svg := string(Placeholder(""))
	if !strings.Contains(svg, ">G</text>") {
		t.Errorf("empty title fallback missing: %s", svg)
	}
}

func TestCaptureRendersCells(t *testing.T) {
	s := core.NewSurface(4, 4)
	s.Set(1, 1, '█', core.ColorBrightGreen)
	s.Set(2, 3, '#', core.ColorRed)

	svg := string(Capture(s))
	if !strings.HasPrefix(svg, "<svg") {
		t.Fatal("Capture did not produce an SVG")
	}
	if !strings.Contains(svg, palette[core.ColorBrightGreen]) {
		t.Error("captured SVG missing the green cell")
	}
	if !strings.Contains(svg, palette[core.ColorRed]) {
		t.Error("captured SVG missing the red cell")
	}
}

func TestCaptureSkipsBlankCells(t *testing.T) {
	s := core.NewSurface(4, 4)
	svg := string(Capture(s))

	// Only the background rect, no per-cell rects
	if got := strings.Count(svg, "<rect"); got != 1 {
		t.Errorf("blank surface rendered %d rects, expected 1", got)
	}
}

func TestCaptureNeverFails(t *testing.T) {
	if svg := Capture(nil); len(svg) == 0 {
		t.Error("Capture(nil) returned nothing")
	}
	if svg := Capture(core.NewSurface(0, 0)); len(svg) == 0 {
		t.Error("Capture(empty) returned nothing")
	}
}
