package gol

import (
	"fmt"

	"uk.ac.bris.cs/tiledlife/util"
)

// Event represents any Game of Life event that needs to be communicated to the user.
type Event interface {
	// Stringer allows each event to be printed.
	fmt.Stringer

	// GetCompletedTurns should return the number of fully completed generations.
	GetCompletedTurns() int
}

// State represents a change in the state of execution.
type State int

const (
	Paused State = iota
	Executing
	Quitting
)

// String methods allow the different types of Events and States to be printed.
func (state State) String() string {
	switch state {
	case Paused:
		return "Paused"
	case Executing:
		return "Executing"
	case Quitting:
		return "Quitting"
	default:
		return "Incorrect State"
	}
}

// StateChange is an Event notifying the user about the change of state of execution.
type StateChange struct {
	CompletedTurns int
	NewState       State
}

// TurnComplete is an Event notifying the user that a generation has been
// swapped in by the barrier. Alive is the number of live cells it holds.
type TurnComplete struct {
	CompletedTurns int
	Alive          int
}

// FinalTurnComplete is sent once the run is over, carrying every live cell of the last generation.
type FinalTurnComplete struct {
	CompletedTurns int
	Alive          []util.Cell
}

func (event StateChange) String() string {
	return fmt.Sprintf("%v", event.NewState)
}

func (event StateChange) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event TurnComplete) String() string {
	return fmt.Sprintf("Generation %d: %d alive", event.CompletedTurns, event.Alive)
}

func (event TurnComplete) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event FinalTurnComplete) String() string {
	return fmt.Sprintf("Final generation %d: %d alive", event.CompletedTurns, len(event.Alive))
}

func (event FinalTurnComplete) GetCompletedTurns() int {
	return event.CompletedTurns
}
