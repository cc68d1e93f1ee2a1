package gol

import (
	"errors"
	"fmt"
)

// Params provides the details of how to run the Game of Life.
type Params struct {
	ThreadRows  int
	ThreadCols  int
	ImageHeight int
	ImageWidth  int
	Turns       int
}

var (
	ErrBadThreadGrid  = errors.New("thread grid must have at least one row and one column")
	ErrWorldTooSmall  = errors.New("world must be at least 3x3")
	ErrUnevenTiles    = errors.New("thread grid does not divide the world evenly")
	ErrBadTurns       = errors.New("generation count must not be negative")
	ErrBadProbability = errors.New("probability must be between 0 and 1")
)

// Threads is the number of workers, one per tile.
func (p Params) Threads() int {
	return p.ThreadRows * p.ThreadCols
}

// Validate rejects parameters the engine cannot compute correctly.
func (p Params) Validate() error {
	if p.ThreadRows < 1 || p.ThreadCols < 1 {
		return fmt.Errorf("%dx%d: %w", p.ThreadRows, p.ThreadCols, ErrBadThreadGrid)
	}
	if p.ImageHeight < 3 || p.ImageWidth < 3 {
		return fmt.Errorf("%dx%d: %w", p.ImageHeight, p.ImageWidth, ErrWorldTooSmall)
	}
	if p.ImageHeight%p.ThreadRows != 0 || p.ImageWidth%p.ThreadCols != 0 {
		return fmt.Errorf("world %dx%d, threads %dx%d: %w",
			p.ImageHeight, p.ImageWidth, p.ThreadRows, p.ThreadCols, ErrUnevenTiles)
	}
	if p.Turns < 0 {
		return fmt.Errorf("%d: %w", p.Turns, ErrBadTurns)
	}
	return nil
}

// Result describes how a run ended.
type Result struct {
	CompletedTurns int
	// Extinct is set when every cell died before the last generation.
	Extinct bool
	// Quit is set when a quit key stopped the run early.
	Quit  bool
	World *Grid
}

// Run starts the processing of Game of Life. It validates p, renders generation 0,
// runs one worker goroutine per tile until p.Turns generations have completed or
// the world dies out, and returns the final state.
// out, events and keyPresses may all be nil. events is closed before Run returns.
func Run(p Params, world *Grid, out Renderer, events chan<- Event, keyPresses <-chan rune) (Result, error) {
	if events != nil {
		defer close(events)
	}
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	if world.Height != p.ImageHeight || world.Width != p.ImageWidth {
		return Result{}, fmt.Errorf("initial world is %dx%d, want %dx%d",
			world.Height, world.Width, p.ImageHeight, p.ImageWidth)
	}
	return distributor(p, world.Clone(), out, events, keyPresses)
}
