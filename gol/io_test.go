package gol

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf, DefaultConfig())
	require.NoError(t, r.Render("Generation 3:", GridFromRows(".X.", "..X", "XXX")))
	want := "Generation 3:\n\n" +
		" X \n" +
		"  X\n" +
		"XXX\n" +
		"-------------\n"
	assert.Equal(t, want, buf.String())
}

func TestTextRendererCustomMarkers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LiveMarker, cfg.DeadMarker, cfg.Separator = '#', '.', "=="
	var buf bytes.Buffer
	require.NoError(t, NewTextRenderer(&buf, cfg).Render("g", GridFromRows("X..", "...", "..X")))
	assert.Equal(t, "g\n\n#..\n...\n..#\n==\n", buf.String())
}

func TestReadWorld(t *testing.T) {
	in := "X X\n" +
		" X\n" +
		"XXXX\n"
	g, err := ReadWorld(strings.NewReader(in), 3, 3, DefaultConfig())
	require.NoError(t, err)
	assert.True(t, g.Equal(GridFromRows("X.X", ".X.", "XXX")), "got\n%v", g)
}

func TestReadWorldCRLF(t *testing.T) {
	g, err := ReadWorld(strings.NewReader("XXX\r\n...\r\nX.X\r\n"), 3, 3, DefaultConfig())
	require.NoError(t, err)
	assert.True(t, g.Equal(GridFromRows("XXX", "...", "X.X")))
}

func TestReadWorldTooFewRows(t *testing.T) {
	_, err := ReadWorld(strings.NewReader("XXX\n"), 3, 3, DefaultConfig())
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestGenerateWorld(t *testing.T) {
	a, err := GenerateWorld(10, 12, 0.4, 1)
	require.NoError(t, err)
	b, err := GenerateWorld(10, 12, 0.4, 1)
	require.NoError(t, err)
	assert.True(t, a.Equal(b), "same seed must give the same world")
	assert.NotEmpty(t, a.AliveCells())

	none, err := GenerateWorld(5, 5, 0, 1)
	require.NoError(t, err)
	assert.Empty(t, none.AliveCells())

	all, err := GenerateWorld(5, 5, 1, 1)
	require.NoError(t, err)
	assert.Len(t, all.AliveCells(), 25)

	_, err = GenerateWorld(5, 5, 1.5, 1)
	assert.ErrorIs(t, err, ErrBadProbability)
}

func TestReadProbability(t *testing.T) {
	prob, err := ReadProbability(strings.NewReader("0.25\n"))
	require.NoError(t, err)
	assert.Equal(t, 0.25, prob)

	_, err = ReadProbability(strings.NewReader("-1\n"))
	assert.ErrorIs(t, err, ErrBadProbability)

	_, err = ReadProbability(strings.NewReader("lots\n"))
	assert.Error(t, err)
}
