package gol

// worker owns one tile of the world for the whole run.
type worker struct {
	tile Tile
}

// step writes the next state of every cell in the tile from current into next
// and returns how many of them are alive. Only the tile is written; all of
// current may be read since neighbours cross tile borders.
func (w worker) step(current, next *Grid) int {
	alive := 0
	for y := w.tile.StartRow; y < w.tile.StartRow+w.tile.Rows; y++ {
		for x := w.tile.StartCol; x < w.tile.StartCol+w.tile.Cols; x++ {
			v := newCellValue(current.At(y, x), CountLiveNeighbours(current, y, x))
			next.Set(y, x, v)
			if v {
				alive++
			}
		}
	}
	return alive
}

// Computes the value of a particular cell based on its neighbours
func newCellValue(alive bool, aliveNeighbours int) bool {
	switch {
	case aliveNeighbours < 2:
		return false
	case aliveNeighbours == 2:
		return alive
	case aliveNeighbours == 3:
		return true
	default:
		return false
	}
}
