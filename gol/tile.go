package gol

// Tile is the block of rows and columns a single worker writes each generation.
type Tile struct {
	StartRow int
	Rows     int
	StartCol int
	Cols     int
}

// tileFor returns the tile of worker rank in a threadRows x threadCols
// arrangement over a height x width world. Params.Validate guarantees even division.
func tileFor(rank, threadRows, threadCols, height, width int) Tile {
	localRows := height / threadRows
	localCols := width / threadCols
	return Tile{
		StartRow: (rank / threadCols) * localRows,
		Rows:     localRows,
		StartCol: (rank % threadCols) * localCols,
		Cols:     localCols,
	}
}

// Tiles splits the world into one tile per worker, indexed by rank.
func (p Params) Tiles() []Tile {
	tiles := make([]Tile, p.Threads())
	for rank := range tiles {
		tiles[rank] = tileFor(rank, p.ThreadRows, p.ThreadCols, p.ImageHeight, p.ImageWidth)
	}
	return tiles
}

// Contains reports whether (row, col) lies inside the tile.
func (t Tile) Contains(row, col int) bool {
	return row >= t.StartRow && row < t.StartRow+t.Rows &&
		col >= t.StartCol && col < t.StartCol+t.Cols
}
