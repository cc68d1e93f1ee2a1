package gol

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// round is the state every worker sees between two barriers.
// It is only replaced by the barrier's trip.
type round struct {
	current *Grid
	next    *Grid
	turn    int
	stop    bool
	err     error
}

// simulation is the context shared by all workers of one run.
type simulation struct {
	p          Params
	barrier    *barrier
	round      round
	live       int
	extinct    bool
	quit       bool
	out        Renderer
	events     chan<- Event
	keyPresses <-chan rune
}

// distributor divides the work between workers and runs them to completion.
func distributor(p Params, world *Grid, out Renderer, events chan<- Event, keyPresses <-chan rune) (Result, error) {
	s := &simulation{
		p:          p,
		out:        out,
		events:     events,
		keyPresses: keyPresses,
		round: round{
			current: world,
			next:    NewGrid(p.ImageHeight, p.ImageWidth),
			stop:    p.Turns == 0,
		},
	}
	s.barrier = newBarrier(p.Threads(), s.trip)

	if err := s.render(0, world); err != nil {
		return Result{}, err
	}
	s.send(StateChange{0, Executing})

	var eg errgroup.Group
	for _, tile := range p.Tiles() {
		w := worker{tile: tile}
		eg.Go(func() error {
			return s.work(w)
		})
	}
	err := eg.Wait()

	final := s.round
	s.send(FinalTurnComplete{CompletedTurns: final.turn, Alive: final.current.AliveCells()})
	s.send(StateChange{final.turn, Quitting})

	return Result{
		CompletedTurns: final.turn,
		Extinct:        s.extinct && final.turn < p.Turns,
		Quit:           s.quit,
		World:          final.current,
	}, err
}

// work is the generation loop of one worker.
func (s *simulation) work(w worker) error {
	r := s.round
	for !r.stop {
		alive := w.step(r.current, r.next)
		s.barrier.await(func() {
			s.live += alive
		})
		r = s.round
	}
	return r.err
}

// trip runs once per generation in whichever worker arrives last.
func (s *simulation) trip() {
	r := s.round
	r.current, r.next = r.next, r.current
	r.turn++

	if s.live == 0 {
		s.extinct = true
	} else if err := s.render(r.turn, r.current); err != nil {
		r.err = err
	}
	s.send(TurnComplete{CompletedTurns: r.turn, Alive: s.live})
	s.live = 0

	if r.err == nil && !s.extinct {
		s.checkKeys(r.turn)
	}
	r.stop = s.extinct || s.quit || r.err != nil || r.turn >= s.p.Turns
	s.round = r
}

func (s *simulation) render(turn int, g *Grid) error {
	if s.out == nil {
		return nil
	}
	if err := s.out.Render(fmt.Sprintf("Generation %d:", turn), g); err != nil {
		return fmt.Errorf("render generation %d: %w", turn, err)
	}
	return nil
}

func (s *simulation) send(e Event) {
	if s.events != nil {
		s.events <- e
	}
}
