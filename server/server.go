package main

import (
	"errors"
	"flag"
	"log"
	"net"
	"net/rpc"

	"uk.ac.bris.cs/tiledlife/gol"
	"uk.ac.bris.cs/tiledlife/stubs"
)

type GolOperations struct{}

func main() {
	pAddr := flag.String("port", "8030", "Port to listen on")
	flag.Parse()
	if err := rpc.Register(&GolOperations{}); err != nil {
		log.Fatalf("register: %v", err)
	}
	listener, err := net.Listen("tcp", ":"+*pAddr)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}
	defer listener.Close()
	log.Printf("Server is up and running. Listening on port %s", *pAddr)
	rpc.Accept(listener)
}

// Evolve runs the tiled engine on the request's world without rendering
// and returns the last generation it reached.
func (golOperation *GolOperations) Evolve(req stubs.Request, res *stubs.Response) error {
	if len(req.World) == 0 {
		return errors.New("empty world")
	}
	p := gol.Params{
		ThreadRows:  req.Params.ThreadRows,
		ThreadCols:  req.Params.ThreadCols,
		ImageHeight: req.Params.ImageHeight,
		ImageWidth:  req.Params.ImageWidth,
		Turns:       req.Params.Turns,
	}
	for _, row := range req.World {
		if len(row) != p.ImageWidth {
			return errors.New("world rows do not match the requested width")
		}
	}
	log.Printf("Evolving %dx%d world for %d generations on %dx%d workers",
		p.ImageHeight, p.ImageWidth, p.Turns, p.ThreadRows, p.ThreadCols)

	result, err := gol.Run(p, gol.GridFromBools(req.World), nil, nil, nil)
	if err != nil {
		return err
	}
	res.World = result.World.Rows()
	res.CompletedTurns = result.CompletedTurns
	res.Extinct = result.Extinct
	log.Printf("Finished evolution of %d generations", result.CompletedTurns)
	return nil
}
