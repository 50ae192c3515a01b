package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-mars-life/model"
	"github.com/sheikhrachel/go-mars-life/utils"
)

const historySize = 3

// promptPreset shows the preset menu until a valid choice is read
func promptPreset(in *bufio.Reader, out io.Writer) (model.Preset, error) {
	for {
		fmt.Fprint(out, "Which case would you like to view?\n")
		for _, p := range model.Presets {
			fmt.Fprintf(out, "%d) %s\n", int(p), p)
		}
		fmt.Fprint(out, "\nYour Choice: ")

		line, err := in.ReadString('\n')
		if line != "" {
			if p, perr := model.ParsePreset(line); perr == nil {
				return p, nil
			}
		}
		if err != nil {
			return 0, errors.Wrap(err, "[promptPreset] no valid choice read")
		}
		fmt.Fprint(out, "\nTry again.\n\n")
	}
}

// newRenderer builds the text renderer described by config
func newRenderer(config utils.Config, out io.Writer) *model.TextRenderer {
	return &model.TextRenderer{
		Alive:     config.AliveGlyph,
		Dead:      config.DeadGlyph,
		BlockSize: config.BlockSize,
		Out:       out,
	}
}

// history keeps the hashes of the most recent generations for cycle detection
type history []string

func (h *history) push(hash string) {
	*h = append(*h, hash)
	if len(*h) > historySize {
		*h = (*h)[1:]
	}
}

// status classifies the current generation against the recorded history
func (h history) status(g *model.Generation) string {
	if g.CountLivingCells() == 0 {
		return "Extinct"
	}
	hash := g.Hash()
	if len(h) >= 1 && h[len(h)-1] == hash {
		return "Stable"
	}
	if len(h) >= 2 && h[len(h)-2] == hash {
		return "Oscillating"
	}
	return "Active"
}

// nextGeneration steps g with the engine selected by config
func nextGeneration(ctx context.Context, g *model.Generation, config utils.Config) (*model.Generation, error) {
	if config.Parallel {
		return g.NextGenerationParallel(ctx, config.Workers)
	}
	return g.NextGeneration(), nil
}

// sleepCtx waits for d or until ctx is done
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// runSimulation renders config.Iterations generations starting from seed
func runSimulation(
	ctx context.Context,
	config utils.Config,
	seed *model.Generation,
	renderer *model.TextRenderer,
	out io.Writer,
) (*utils.Stats, error) {
	var (
		stats   = utils.NewStats()
		recent  history
		current = seed
	)

	for generation := range config.Iterations {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		if config.ClearScreen {
			renderer.Clear()
		}

		living := current.CountLivingCells()
		stats.Update(living)
		fmt.Fprintf(out, "Gen: %d | Living: %d | Status: %s\n\n", generation, living, recent.status(current))
		renderer.Display(current)
		recent.push(current.Hash())

		next, err := nextGeneration(ctx, current, config)
		if err != nil {
			return stats, errors.Wrapf(err, "[runSimulation] generation %d", generation)
		}
		current = next

		if err = sleepCtx(ctx, config.FrameDelay); err != nil {
			return stats, err
		}
	}
	return stats, nil
}

// displaySummary prints the final stats of a run
func displaySummary(out io.Writer, stats *utils.Stats) {
	fmt.Fprintf(out, "Final stats: %d generations in %.1f seconds\n",
		stats.Generations, stats.Elapsed().Seconds())
	fmt.Fprintf(out, "Population: last %d | min %d | max %d | avg %.1f\n",
		stats.Population, stats.MinPopulation, stats.MaxPopulation, stats.AveragePopulation)
}
