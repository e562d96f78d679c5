// Package hud draws the text overlays shared by the demos: score lines and
// centered message boxes.
package hud

import (
	"unicode/utf8"

	"github.com/vovakirdan/actor-arcade/internal/core"
)

// DrawMessage draws a boxed title and subtitle in the center of the screen.
func DrawMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := utf8.RuneCountInString(title)
	subLen := utf8.RuneCountInString(subtitle)

	boxW := max(titleLen, subLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-titleLen)/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-subLen)/2, boxY+3, subtitle)
}

// DrawStatus writes left- and right-aligned text on the given row.
func DrawStatus(dst *core.Screen, y int, left, right string) {
	dst.DrawText(1, y, left)
	dst.DrawText(dst.Width()-utf8.RuneCountInString(right)-1, y, right)
}

// Fill returns the first glyph of a sprite line, or '?' for an empty sprite.
func Fill(lines []string) rune {
	for _, l := range lines {
		for _, r := range l {
			return r
		}
	}
	return '?'
}
