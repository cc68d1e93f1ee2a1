package stubs

var Evolve = "GolOperations.Evolve"

type Params struct {
	ThreadRows  int
	ThreadCols  int
	ImageHeight int
	ImageWidth  int
	Turns       int
}

type Request struct {
	World  [][]bool
	Params Params
}

type Response struct {
	World          [][]bool
	CompletedTurns int
	Extinct        bool
}
