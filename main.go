package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"uk.ac.bris.cs/tiledlife/gol"
	"uk.ac.bris.cs/tiledlife/view"
)

func usage() {
	prog := os.Args[0]
	fmt.Fprintf(os.Stderr, "usage: %s [flags] <r> <c> <m> <n> <max> <i|g>\n", prog)
	fmt.Fprintf(os.Stderr, "    r   = number of rows of threads\n")
	fmt.Fprintf(os.Stderr, "    c   = number of cols of threads\n")
	fmt.Fprintf(os.Stderr, "    m   = number of rows in the world\n")
	fmt.Fprintf(os.Stderr, "    n   = number of columns in the world\n")
	fmt.Fprintf(os.Stderr, "    max = max number of generations\n")
	fmt.Fprintf(os.Stderr, "    i   = user will enter generation 0\n")
	fmt.Fprintf(os.Stderr, "    g   = program should generate generation 0\n")
	flag.PrintDefaults()
}

// parseArgs turns the six positional arguments into run parameters and the input mode.
func parseArgs(args []string) (gol.Params, byte, error) {
	if len(args) != 6 {
		return gol.Params{}, 0, fmt.Errorf("expected 6 arguments, got %d", len(args))
	}
	var nums [5]int
	for i := range nums {
		v, err := strconv.Atoi(args[i])
		if err != nil {
			return gol.Params{}, 0, fmt.Errorf("argument %d: %w", i+1, err)
		}
		nums[i] = v
	}
	if args[5] != "i" && args[5] != "g" {
		return gol.Params{}, 0, fmt.Errorf("mode must be i or g, got %q", args[5])
	}
	p := gol.Params{
		ThreadRows:  nums[0],
		ThreadCols:  nums[1],
		ImageHeight: nums[2],
		ImageWidth:  nums[3],
		Turns:       nums[4],
	}
	return p, args[5][0], nil
}

// initialWorld fetches generation 0 from in, prompting on out.
func initialWorld(mode byte, p gol.Params, cfg gol.Config, in io.Reader, out io.Writer) (*gol.Grid, error) {
	if mode == 'i' {
		fmt.Fprintln(out, "Enter generation 0")
		return gol.ReadWorld(in, p.ImageHeight, p.ImageWidth, cfg)
	}
	fmt.Fprintln(out, "What's the probability that a cell is alive?")
	prob, err := gol.ReadProbability(in)
	if err != nil {
		return nil, err
	}
	return gol.GenerateWorld(p.ImageHeight, p.ImageWidth, prob, cfg.Seed)
}

func main() {
	configPath := flag.String("config", "", "TOML, YAML or JSON file with marker, seed and frame settings")
	useTcell := flag.Bool("tcell", false, "Draw generations in a terminal view; p pauses, q quits")
	verbose := flag.Bool("v", false, "Log state changes to stderr")
	flag.Usage = usage
	flag.Parse()

	p, mode, err := parseArgs(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage()
		os.Exit(1)
	}
	if err := p.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage()
		os.Exit(1)
	}

	cfg := gol.DefaultConfig()
	if *configPath != "" {
		cfg, err = gol.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	world, err := initialWorld(mode, p, cfg, bufio.NewReader(os.Stdin), os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println()

	var out gol.Renderer = gol.NewTextRenderer(os.Stdout, cfg)
	var keyPresses chan rune
	var screen *view.Screen
	done := make(chan struct{})
	if *useTcell {
		s, err := tcell.NewScreen()
		if err != nil {
			log.Fatal(err)
		}
		screen, err = view.NewScreen(s, cfg)
		if err != nil {
			log.Fatal(err)
		}
		keyPresses = make(chan rune, 10)
		go screen.Forward(keyPresses, done)
		out = screen
	}

	events := make(chan gol.Event)
	logged := make(chan struct{})
	go func() {
		defer close(logged)
		for e := range events {
			if _, ok := e.(gol.StateChange); ok && *verbose {
				log.Printf("Completed generations %d: %v", e.GetCompletedTurns(), e)
			}
		}
	}()

	result, err := gol.Run(p, world, out, events, keyPresses)
	<-logged
	close(done)
	if screen != nil {
		screen.Close()
	}
	if err != nil {
		log.Fatal(err)
	}
	if result.Extinct {
		fmt.Println("There are no more live cells")
	}
}
