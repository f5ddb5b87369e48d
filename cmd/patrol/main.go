// Command patrol walks the guard across the puzzle map and prints how many
// cells it visits (part 1) and how many single obstructions would trap it
// in a loop (part 2).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/patrol/input"
	"github.com/katalvlaran/patrol/patrol"
	"github.com/katalvlaran/patrol/render"
)

const defaultInput = "/workspaces/Advent-2024/src/day6/input.txt"

type config struct {
	input    string
	part     int
	watch    bool
	delay    time.Duration
	maxSteps int
	debug    bool
	logPath  string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("patrol", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.input, "input", defaultInput, "puzzle input file")
	fs.IntVar(&cfg.part, "part", 0, "puzzle part to solve: 1, 2, or 0 for both")
	fs.BoolVar(&cfg.watch, "watch", false, "animate part 1 in the terminal")
	fs.DurationVar(&cfg.delay, "delay", 20*time.Millisecond, "pause between frames with -watch")
	fs.IntVar(&cfg.maxSteps, "max-steps", 0, "abort a patrol after this many steps (0: no limit)")
	fs.BoolVar(&cfg.debug, "debug", false, "log progress to stderr")
	fs.StringVar(&cfg.logPath, "log", "", "append debug log to this file instead of stderr")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.part < 0 || cfg.part > 2 {
		return cfg, fmt.Errorf("invalid -part %d", cfg.part)
	}
	return cfg, nil
}

// run is main without the process exit, returning the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, "patrol:", err)
		return 2
	}

	logFile, err := setupLogging(cfg.debug, cfg.logPath, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "patrol:", err)
		return 1
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if err := solve(ctx, cfg, stdout); err != nil {
		fmt.Fprintln(stderr, "patrol:", err)
		return 1
	}
	return 0
}

func solve(ctx context.Context, cfg config, stdout io.Writer) error {
	lines, err := input.Import(cfg.input)
	if err != nil {
		return err
	}
	g, err := patrol.NewGrid(lines)
	if err != nil {
		return err
	}
	start, facing := g.Start()
	log.Printf("grid %dx%d, guard at %v facing %s", g.Width(), g.Height(), start, facing)

	opts := []patrol.Option{
		patrol.WithContext(ctx),
		patrol.WithMaxSteps(cfg.maxSteps),
		patrol.WithLoopDetection(),
	}

	if cfg.part != 2 {
		res, err := partOne(ctx, cfg, g.Clone(), opts)
		if err != nil {
			return err
		}
		log.Printf("guard left from %v facing %s after %d steps", res.Position, res.Facing, res.Steps)
		fmt.Fprintf(stdout, "Day 6 part 1 : %d\n", res.Visited)
	}

	if cfg.part != 1 {
		t0 := time.Now()
		pts, err := patrol.LoopObstructions(g, opts...)
		if err != nil {
			return err
		}
		log.Printf("loop search took %v", time.Since(t0))
		fmt.Fprintf(stdout, "Day 6 part 2 : %d\n", len(pts))
	}
	return nil
}

func partOne(ctx context.Context, cfg config, g *patrol.Grid, opts []patrol.Option) (patrol.Result, error) {
	p := patrol.New(g)
	if !cfg.watch {
		return patrol.Run(p, opts...)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return patrol.Result{}, err
	}
	if err := screen.Init(); err != nil {
		return patrol.Result{}, err
	}
	defer screen.Fini()

	return render.NewView(screen, render.WithDelay(cfg.delay)).Play(ctx, p, opts...)
}
