package gol

import (
	"strings"

	"uk.ac.bris.cs/tiledlife/util"
)

// Grid stores one generation of the world, row-major.
type Grid struct {
	Height int
	Width  int
	cells  []bool
}

// NewGrid allocates an all-dead grid with the given number of rows and columns.
func NewGrid(height, width int) *Grid {
	return &Grid{
		Height: height,
		Width:  width,
		cells:  make([]bool, height*width),
	}
}

// GridFromRows builds a grid from strings where 'X' marks a live cell.
// Rows shorter than the widest row are padded with dead cells.
func GridFromRows(rows ...string) *Grid {
	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	g := NewGrid(len(rows), width)
	for y, r := range rows {
		for x := 0; x < len(r); x++ {
			g.Set(y, x, r[x] == 'X')
		}
	}
	return g
}

func (g *Grid) At(row, col int) bool {
	return g.cells[row*g.Width+col]
}

func (g *Grid) Set(row, col int, alive bool) {
	g.cells[row*g.Width+col] = alive
}

// AtWrapped reads a cell with both coordinates taken modulo the grid size.
func (g *Grid) AtWrapped(row, col int) bool {
	return g.cells[wrap(row, g.Height)*g.Width+wrap(col, g.Width)]
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{Height: g.Height, Width: g.Width, cells: make([]bool, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether both grids have the same shape and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.Height != o.Height || g.Width != o.Width {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Shift returns a copy of the grid translated by dy rows and dx columns on the torus.
func (g *Grid) Shift(dy, dx int) *Grid {
	s := NewGrid(g.Height, g.Width)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			s.Set(wrap((y+dy)%g.Height, g.Height), wrap((x+dx)%g.Width, g.Width), g.At(y, x))
		}
	}
	return s
}

// AliveCells returns the coordinates of every live cell.
func (g *Grid) AliveCells() []util.Cell {
	aliveCells := make([]util.Cell, 0)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.At(y, x) {
				aliveCells = append(aliveCells, util.Cell{X: x, Y: y})
			}
		}
	}
	return aliveCells
}

// Rows returns the grid as 2D slice, one row per entry.
func (g *Grid) Rows() [][]bool {
	rows := make([][]bool, g.Height)
	for y := range rows {
		rows[y] = make([]bool, g.Width)
		copy(rows[y], g.cells[y*g.Width:(y+1)*g.Width])
	}
	return rows
}

// GridFromBools is the inverse of Rows. All rows must have the same length.
func GridFromBools(rows [][]bool) *Grid {
	if len(rows) == 0 {
		return NewGrid(0, 0)
	}
	g := NewGrid(len(rows), len(rows[0]))
	for y := range rows {
		copy(g.cells[y*g.Width:(y+1)*g.Width], rows[y])
	}
	return g
}

func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.At(y, x) {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Function used to wrap around the closed domain board
// Uses optimization for the modulo operation if n is a power of two
func wrap(x, n int) int {
	x += n
	if n != 0 && (n&(n-1)) == 0 {
		return x & (n - 1)
	}
	return x % n
}

// CountLiveNeighbours scans the 3x3 block around (row, col) on the torus and
// removes the centre cell from the total. The grid must be at least 3x3.
func CountLiveNeighbours(g *Grid, row, col int) int {
	count := 0
	for i := row - 1; i <= row+1; i++ {
		for j := col - 1; j <= col+1; j++ {
			if g.AtWrapped(i, j) {
				count++
			}
		}
	}
	if g.At(row, col) {
		count--
	}
	return count
}
