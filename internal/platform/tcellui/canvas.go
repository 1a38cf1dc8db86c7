// Package tcellui drives games directly on a tcell screen. It is the
// lightweight alternative to the Bubble Tea driver: a ticker paces frames
// and a goroutine forwards terminal events to a buffered channel that the
// frame loop drains without blocking.
package tcellui

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-martians/internal/core"
)

// eventBuffer bounds the events queued between frames.
const eventBuffer = 64

var palette = map[core.Color]tcell.Color{
	core.ColorDefault:      tcell.ColorDefault,
	core.ColorRed:          tcell.PaletteColor(1),
	core.ColorGreen:        tcell.PaletteColor(2),
	core.ColorYellow:       tcell.PaletteColor(3),
	core.ColorBlue:         tcell.PaletteColor(4),
	core.ColorMagenta:      tcell.PaletteColor(5),
	core.ColorCyan:         tcell.PaletteColor(6),
	core.ColorWhite:        tcell.PaletteColor(7),
	core.ColorBrightRed:    tcell.PaletteColor(9),
	core.ColorBrightGreen:  tcell.PaletteColor(10),
	core.ColorBrightYellow: tcell.PaletteColor(11),
	core.ColorGray:         tcell.PaletteColor(245),
}

// Canvas adapts a tcell.Screen to core.Canvas and core.KeySource.
type Canvas struct {
	screen tcell.Screen
	events chan tcell.Event
}

var (
	_ core.Canvas    = (*Canvas)(nil)
	_ core.KeySource = (*Canvas)(nil)
)

// NewCanvas wraps an initialized screen and starts forwarding its events.
// The forwarding goroutine exits when the screen is finalized.
func NewCanvas(screen tcell.Screen) *Canvas {
	c := &Canvas{
		screen: screen,
		events: make(chan tcell.Event, eventBuffer),
	}
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(c.events)
				return
			}
			select {
			case c.events <- ev:
			default: // Drop input the loop has not kept up with
			}
		}
	}()
	return c
}

// Clear blanks the screen.
func (c *Canvas) Clear() {
	c.screen.Clear()
}

// Size returns the screen dimensions.
func (c *Canvas) Size() (int, int) {
	return c.screen.Size()
}

// DrawGlyphBlock writes text on one row. Blocks that do not fit are rejected.
func (c *Canvas) DrawGlyphBlock(row, col int, text string, color core.Color) error {
	w, h := c.screen.Size()
	n := utf8.RuneCountInString(text)
	bounds := core.NewRect(0, 0, w, h)
	if !bounds.Contains(col, row) || (n > 0 && !bounds.Contains(col+n-1, row)) {
		return fmt.Errorf("%w: %d runes at row %d col %d on %dx%d screen",
			core.ErrOutOfCanvas, n, row, col, w, h)
	}

	fg, ok := palette[color]
	if !ok {
		fg = tcell.ColorDefault
	}
	style := tcell.StyleDefault.Foreground(fg)
	i := 0
	for _, r := range text {
		c.screen.SetContent(col+i, row, r, nil, style)
		i++
	}
	return nil
}

// Show flushes drawn content to the terminal.
func (c *Canvas) Show() {
	c.screen.Show()
}

// PollKey returns the first pending key that maps to an action. Other
// events are discarded. It never blocks.
func (c *Canvas) PollKey() (core.Action, bool) {
	for {
		select {
		case ev, ok := <-c.events:
			if !ok {
				return core.ActionNone, false
			}
			if k, isKey := ev.(*tcell.EventKey); isKey {
				if a := actionFor(k); a != core.ActionNone {
					return a, true
				}
			}
		default:
			return core.ActionNone, false
		}
	}
}

func actionFor(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyRune:
		return core.ActionForKey(string(ev.Rune()))
	case tcell.KeyLeft:
		return core.ActionForKey("left")
	case tcell.KeyRight:
		return core.ActionForKey("right")
	case tcell.KeyDown:
		return core.ActionForKey("down")
	case tcell.KeyCtrlC:
		return core.ActionForKey("ctrl+c")
	}
	return core.ActionNone
}
