// Package thumb produces game thumbnails as SVG bytes: generated
// placeholders with the title initials, and still-frame captures of a
// drawing surface. Capture never fails; anything it cannot handle
// falls back to a placeholder.
package thumb

import (
	"fmt"
	"strings"

	"github.com/playform/playform/internal/core"
)

const (
	svgWidth  = 480
	svgHeight = 280
)

// Placeholder generates a gradient tile with up to two initials taken
// from the title words. The hue is derived from a stable string hash,
// so the same title always gets the same colors.
func Placeholder(title string) []byte {
	if title == "" {
		title = "G"
	}

	var initials strings.Builder
	for i, word := range strings.Fields(title) {
		if i == 2 {
			break
		}
		initials.WriteString(strings.ToUpper(word[:1]))
	}
	if initials.Len() == 0 {
		initials.WriteString("G")
	}

	hue := abs(hashCode(title)) % 360

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`, svgWidth, svgHeight)
	sb.WriteString(`<defs><linearGradient id="g" x1="0" y1="0" x2="1" y2="1">`)
	fmt.Fprintf(&sb, `<stop offset="0%%" stop-color="hsl(%d,70%%,50%%)"/>`, hue)
	fmt.Fprintf(&sb, `<stop offset="100%%" stop-color="hsl(%d,70%%,50%%)"/>`, (hue+60)%360)
	sb.WriteString(`</linearGradient></defs>`)
	sb.WriteString(`<rect width="100%" height="100%" fill="url(#g)"/>`)
	fmt.Fprintf(&sb, `<text x="50%%" y="52%%" dominant-baseline="middle" text-anchor="middle" font-family="sans-serif" font-size="110" fill="rgba(255,255,255,.9)" font-weight="800">%s</text>`, initials.String())
	sb.WriteString(`</svg>`)
	return []byte(sb.String())
}

// hashCode is the classic 31-based string hash with int32 wraparound,
// kept so seeded titles keep their historical colors.
func hashCode(s string) int {
	var h int32
	for _, r := range s {
		h = (h << 5) - h + int32(r)
	}
	return int(h)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// palette maps surface colors to SVG fill values.
var palette = map[core.Color]string{
	core.ColorDefault:       "#e6e8ee",
	core.ColorRed:           "#b03030",
	core.ColorGreen:         "#3c9a4e",
	core.ColorYellow:        "#c9b04a",
	core.ColorBlue:          "#3c5fba",
	core.ColorMagenta:       "#9a41a8",
	core.ColorCyan:          "#3aa8a8",
	core.ColorWhite:         "#d5d8e0",
	core.ColorBrightRed:     "#ff5555",
	core.ColorBrightGreen:   "#50fa7b",
	core.ColorBrightYellow:  "#f1fa8c",
	core.ColorBrightBlue:    "#6272ff",
	core.ColorBrightMagenta: "#c778ff",
	core.ColorBrightCyan:    "#00e0b8",
	core.ColorBrightWhite:   "#ffffff",
	core.ColorOrange:        "#ffa033",
	core.ColorGray:          "#8890a0",
}

// Capture renders the surface's colored cell grid into an SVG
// snapshot. A nil or empty surface yields a generic placeholder
// rather than an error: capturing must never fail.
func Capture(s *core.Surface) []byte {
	if s == nil || s.Width() == 0 || s.Height() == 0 {
		return Placeholder("Game")
	}

	cellW := float64(svgWidth) / float64(s.Width())
	cellH := float64(svgHeight) / float64(s.Height())

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`, svgWidth, svgHeight)
	sb.WriteString(`<rect width="100%" height="100%" fill="#0a0b0d"/>`)
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Rune == ' ' {
				continue
			}
			fill, ok := palette[cell.Color]
			if !ok {
				fill = palette[core.ColorDefault]
			}
			fmt.Fprintf(&sb, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`,
				float64(x)*cellW, float64(y)*cellH, cellW, cellH, fill)
		}
	}
	sb.WriteString(`</svg>`)
	return []byte(sb.String())
}
