package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
)

type output struct {
	*maze.Layout
	Stats *maze.Stats `json:"stats,omitempty"`
}

// clockSeed derives a positive seed from the wall clock.
func clockSeed() int {
	return int(time.Now().UnixNano()%math.MaxInt32) + 1
}

func run(cfg *Config, stdout, stderr io.Writer, newSeed func() int) error {
	seed := cfg.seed
	if seed == 0 {
		seed = newSeed()
		fmt.Fprintf(stderr, "seed: %d\n", seed)
	}

	m, err := maze.New(cfg.cols, cfg.rows, seed)
	if err != nil {
		return err
	}

	var stats *maze.Stats
	if cfg.stats {
		s, err := m.Stats()
		if err != nil {
			return err
		}
		stats = &s
	}

	if cfg.json {
		layout, err := m.Layout(cfg.solve)
		if err != nil {
			return err
		}
		return json.NewEncoder(stdout).Encode(output{Layout: layout, Stats: stats})
	}

	var path []maze.CellPosition
	if cfg.solve {
		if path, err = m.Solution(); err != nil {
			return err
		}
	}

	fmt.Fprint(stdout, m.Render(path))

	if stats != nil {
		fmt.Fprintf(stdout, "open passages:   %d\n", stats.OpenPassages)
		fmt.Fprintf(stdout, "dead ends:       %d\n", stats.DeadEnds)
		fmt.Fprintf(stdout, "junctions:       %d\n", stats.Junctions)
		fmt.Fprintf(stdout, "solution length: %d\n", stats.SolutionLength)
	}

	return nil
}
