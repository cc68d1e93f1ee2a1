package gol

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strings"
)

// Renderer receives every generation the run produces, labelled with its number.
// Render is called while all workers are parked, so g must not be kept after it returns.
type Renderer interface {
	Render(label string, g *Grid) error
}

// TextRenderer prints a generation as rows of marker characters followed by a separator line.
type TextRenderer struct {
	w   io.Writer
	cfg Config
}

func NewTextRenderer(w io.Writer, cfg Config) *TextRenderer {
	return &TextRenderer{w: w, cfg: cfg}
}

func (t *TextRenderer) Render(label string, g *Grid) error {
	bw := bufio.NewWriter(t.w)
	fmt.Fprintf(bw, "%s\n\n", label)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.At(y, x) {
				bw.WriteRune(t.cfg.LiveMarker)
			} else {
				bw.WriteRune(t.cfg.DeadMarker)
			}
		}
		bw.WriteByte('\n')
	}
	fmt.Fprintln(bw, t.cfg.Separator)
	return bw.Flush()
}

// ReadWorld reads generation 0 as height lines of up to width characters.
// A cell is alive when its character is the live marker; anything else, including
// a missing character at the end of a short line, is dead.
func ReadWorld(r io.Reader, height, width int, cfg Config) (*Grid, error) {
	world := NewGrid(height, width)
	sc := bufio.NewScanner(r)
	for y := 0; y < height; y++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("read row %d: %w", y, err)
			}
			return nil, fmt.Errorf("read row %d: %w", y, io.ErrUnexpectedEOF)
		}
		row := []rune(strings.TrimRight(sc.Text(), "\r"))
		for x := 0; x < width && x < len(row); x++ {
			world.Set(y, x, row[x] == cfg.LiveMarker)
		}
	}
	return world, nil
}

// GenerateWorld makes a random generation 0 where each cell is alive with the given probability.
// The same seed always yields the same world.
func GenerateWorld(height, width int, prob float64, seed int64) (*Grid, error) {
	if prob < 0 || prob > 1 {
		return nil, fmt.Errorf("%v: %w", prob, ErrBadProbability)
	}
	rng := rand.New(rand.NewSource(seed))
	world := NewGrid(height, width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			world.Set(y, x, rng.Float64() < prob)
		}
	}
	return world, nil
}

// ReadProbability reads the probability used by GenerateWorld.
func ReadProbability(r io.Reader) (float64, error) {
	var prob float64
	if _, err := fmt.Fscan(r, &prob); err != nil {
		return 0, fmt.Errorf("read probability: %w", err)
	}
	if prob < 0 || prob > 1 {
		return 0, fmt.Errorf("%v: %w", prob, ErrBadProbability)
	}
	return prob, nil
}
