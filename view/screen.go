// Package view draws generations on a terminal with tcell and turns key presses
// into the runes the gol package understands.
package view

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"uk.ac.bris.cs/tiledlife/gol"
)

// Screen is a gol.Renderer backed by a tcell screen.
type Screen struct {
	screen tcell.Screen
	cfg    gol.Config
	live   tcell.Style
	label  tcell.Style
}

// NewScreen initialises s and clears it. The caller keeps ownership and must call Close.
func NewScreen(s tcell.Screen, cfg gol.Config) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault)
	s.HideCursor()
	s.Clear()
	return &Screen{
		screen: s,
		cfg:    cfg,
		live:   tcell.StyleDefault.Foreground(tcell.ColorGreen),
		label:  tcell.StyleDefault.Bold(true),
	}, nil
}

// Render draws the label on the first line and the grid below it, then waits FrameDelay.
func (v *Screen) Render(label string, g *gol.Grid) error {
	v.screen.Clear()
	for i, r := range label {
		v.screen.SetContent(i, 0, r, nil, v.label)
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.At(y, x) {
				v.screen.SetContent(x, y+2, v.cfg.LiveMarker, nil, v.live)
			} else {
				v.screen.SetContent(x, y+2, v.cfg.DeadMarker, nil, tcell.StyleDefault)
			}
		}
	}
	v.screen.Show()
	if v.cfg.FrameDelay > 0 {
		time.Sleep(v.cfg.FrameDelay)
	}
	return nil
}

// Forward sends the rune of every key press to keyPresses until the screen is
// finalised or done is closed. Escape and Ctrl-C are sent as 'q'.
func (v *Screen) Forward(keyPresses chan<- rune, done <-chan struct{}) {
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return
		}
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		r := key.Rune()
		switch key.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			r = 'q'
		case tcell.KeyRune:
		default:
			continue
		}
		select {
		case keyPresses <- r:
		case <-done:
			return
		}
	}
}

// Close restores the terminal.
func (v *Screen) Close() {
	v.screen.Fini()
}
