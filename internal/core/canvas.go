package core

import (
	"errors"
	"unicode/utf8"
)

// ErrOutOfCanvas is returned when a glyph block would be drawn outside the canvas.
var ErrOutOfCanvas = errors.New("draw outside canvas")

// Canvas is the drawing surface a game renders into.
// Implementations must report out-of-canvas draws instead of clipping them.
type Canvas interface {
	// Clear blanks the whole canvas.
	Clear()

	// DrawGlyphBlock draws one row of text starting at the given cell.
	DrawGlyphBlock(row, col int, text string, color Color) error

	// Size returns the canvas dimensions in cells.
	Size() (width, height int)
}

// KeySource yields at most one pending key action per call.
// PollKey never blocks; ok is false when nothing was pressed.
type KeySource interface {
	PollKey() (action Action, ok bool)
}

// DrawTextCentered draws text on row y, centered horizontally on c.
// Text wider than the canvas is rejected with ErrOutOfCanvas.
func DrawTextCentered(c Canvas, y int, text string, color Color) error {
	w, _ := c.Size()
	x := (w - utf8.RuneCountInString(text)) / 2
	return c.DrawGlyphBlock(y, x, text, color)
}
