package export

import (
	"fmt"
	"strings"

	"github.com/mkovar/fieldsim/internal/viz"
)

// CanvasToSVG renders a braille canvas as SVG: one circle per lit dot plus a
// text element per overlay glyph.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per cell
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per cell

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ff88">
`, width, height, width, height))

	dotRadius := scale * 0.4
	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			if !canvas.Dot(col, row) {
				continue
			}
			cx := (float64(col)*2 + 1) * scale
			cy := (float64(row)*4 + 2) * scale
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>`+"\n", cx, cy, dotRadius))
		}
	}
	sb.WriteString("</g>\n<g fill=\"#ffffff\" font-family=\"monospace\" text-anchor=\"middle\">\n")

	fontSize := scale * 3
	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			g := canvas.Glyph(col, row)
			if g == 0 {
				continue
			}
			cx := (float64(col)*2 + 1) * scale
			cy := (float64(row)*4 + 3) * scale
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="%.1f">%s</text>`+"\n",
				cx, cy, fontSize, escapeGlyph(g)))
		}
	}
	sb.WriteString("</g>\n</svg>\n")

	return sb.String()
}

func escapeGlyph(r rune) string {
	switch r {
	case '<':
		return "&lt;"
	case '>':
		return "&gt;"
	case '&':
		return "&amp;"
	default:
		return string(r)
	}
}
