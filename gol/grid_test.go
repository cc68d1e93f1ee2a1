package gol

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uk.ac.bris.cs/tiledlife/util"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		x, n, want int
	}{
		{-1, 8, 7},
		{8, 8, 0},
		{3, 8, 3},
		{-1, 5, 4},
		{5, 5, 0},
		{0, 3, 0},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, wrap(test.x, test.n), "wrap(%d, %d)", test.x, test.n)
	}
}

func TestCountLiveNeighboursUniform(t *testing.T) {
	dead := NewGrid(3, 3)
	live := GridFromRows("XXX", "XXX", "XXX")
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			assert.Equal(t, 0, CountLiveNeighbours(dead, y, x))
			assert.Equal(t, 8, CountLiveNeighbours(live, y, x))
		}
	}
}

func TestCountLiveNeighboursWrapsCorners(t *testing.T) {
	g := GridFromRows(
		"X...X",
		".....",
		".....",
		"X...X",
	)
	assert.Equal(t, 3, CountLiveNeighbours(g, 0, 0))
	assert.Equal(t, 3, CountLiveNeighbours(g, 3, 4))
	assert.Equal(t, 0, CountLiveNeighbours(g, 0, 2))
	assert.Equal(t, 0, CountLiveNeighbours(g, 1, 2))
}

func TestCountLiveNeighboursRotationInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := NewGrid(7, 5)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			g.Set(y, x, rng.Intn(3) == 0)
		}
	}
	for dy := -3; dy <= 9; dy += 4 {
		for dx := -2; dx <= 6; dx += 3 {
			shifted := g.Shift(dy, dx)
			for y := 0; y < g.Height; y++ {
				for x := 0; x < g.Width; x++ {
					sy := ((y+dy)%g.Height + g.Height) % g.Height
					sx := ((x+dx)%g.Width + g.Width) % g.Width
					require.Equal(t, CountLiveNeighbours(g, y, x), CountLiveNeighbours(shifted, sy, sx),
						"cell (%d,%d) shifted by (%d,%d)", y, x, dy, dx)
				}
			}
		}
	}
}

func TestGridFromRows(t *testing.T) {
	g := GridFromRows(".X.", "..X", "XXX")
	assert.Equal(t, 3, g.Height)
	assert.Equal(t, 3, g.Width)
	assert.ElementsMatch(t, []util.Cell{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}}, g.AliveCells())
	assert.Equal(t, ".X.\n..X\nXXX\n", g.String())
}

func TestGridRowsRoundTrip(t *testing.T) {
	g := GridFromRows(".X..", "X..X", "..XX")
	assert.True(t, g.Equal(GridFromBools(g.Rows())))
	assert.False(t, g.Equal(g.Shift(0, 1)))
	assert.True(t, g.Equal(g.Shift(3, 4)))
}

func TestCloneIsIndependent(t *testing.T) {
	g := GridFromRows("X..", "...", "...")
	c := g.Clone()
	c.Set(0, 0, false)
	assert.True(t, g.At(0, 0))
	assert.False(t, c.At(0, 0))
}
