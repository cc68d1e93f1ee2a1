package gol

import "github.com/veandco/go-sdl2/sdl"

// checkKeys drains pending key presses without blocking. It runs inside the
// barrier's trip, so every worker is parked while a pause lasts.
func (s *simulation) checkKeys(turn int) {
	for s.keyPresses != nil && !s.quit {
		select {
		case key, ok := <-s.keyPresses:
			if !ok {
				s.keyPresses = nil
				return
			}
			s.dealWithKey(key, turn)
		default:
			return
		}
	}
}

func (s *simulation) dealWithKey(key rune, turn int) {
	switch key {
	case rune(sdl.K_q):
		s.quit = true
	case rune(sdl.K_p):
		s.send(StateChange{turn, Paused})
		s.dealWithPause()
		if !s.quit {
			s.send(StateChange{turn, Executing})
		}
	}
}

// dealWithPause blocks until the pause key is pressed again or the run is quit.
func (s *simulation) dealWithPause() {
	for key := range s.keyPresses {
		switch key {
		case rune(sdl.K_p):
			return
		case rune(sdl.K_q):
			s.quit = true
			return
		}
	}
	s.keyPresses = nil
}
