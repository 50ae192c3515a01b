package main

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/sheikhrachel/go-mars-life/model"
	"github.com/sheikhrachel/go-mars-life/utils"
)

func testConfig() utils.Config {
	config := utils.DefaultConfig()
	config.FrameDelay = 0
	config.ClearScreen = false
	return config
}

func TestPromptPresetRetriesInvalidInput(t *testing.T) {
	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader("7\nfoo\n3\n"))

	p, err := promptPreset(in, &out)
	if err != nil {
		t.Fatalf("promptPreset: %v", err)
	}
	if p != model.PresetGlider {
		t.Fatalf("got %v, want Glider", p)
	}
	if n := strings.Count(out.String(), "Try again."); n != 2 {
		t.Fatalf("expected 2 retries, got %d:\n%s", n, out.String())
	}
	if !strings.Contains(out.String(), "1) Still\n2) Oscillator\n3) Glider\n") {
		t.Fatalf("menu missing from output:\n%s", out.String())
	}
}

func TestPromptPresetLastLineWithoutNewline(t *testing.T) {
	p, err := promptPreset(bufio.NewReader(strings.NewReader("2")), &bytes.Buffer{})
	if err != nil || p != model.PresetOscillator {
		t.Fatalf("got %v, %v; want Oscillator", p, err)
	}
}

func TestPromptPresetEOF(t *testing.T) {
	if _, err := promptPreset(bufio.NewReader(strings.NewReader("9\n")), &bytes.Buffer{}); err == nil {
		t.Fatal("expected error at EOF without a valid choice")
	}
}

func TestRunSimulation(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		config := testConfig()
		config.Iterations = 6
		config.Parallel = parallel

		seed, _ := model.PresetOscillator.Seed(config.Rows, config.Cols)
		var out bytes.Buffer

		stats, err := runSimulation(context.Background(), config, seed, newRenderer(config, &out), &out)
		if err != nil {
			t.Fatalf("parallel=%v: %v", parallel, err)
		}
		if stats.Generations != 6 || stats.MinPopulation != 3 || stats.MaxPopulation != 3 {
			t.Fatalf("parallel=%v: unexpected stats %+v", parallel, stats)
		}

		text := out.String()
		if !strings.Contains(text, "Gen: 0 | Living: 3 | Status: Active") {
			t.Fatalf("parallel=%v: missing first status line:\n%s", parallel, text)
		}
		if !strings.Contains(text, "Gen: 2 | Living: 3 | Status: Oscillating") {
			t.Fatalf("parallel=%v: blinker not reported as oscillating:\n%s", parallel, text)
		}
		if n := strings.Count(text, "Gen: "); n != 6 {
			t.Fatalf("parallel=%v: rendered %d frames, want 6", parallel, n)
		}
	}
}

func TestRunSimulationStatus(t *testing.T) {
	config := testConfig()
	config.Iterations = 3

	still, _ := model.PresetStill.Seed(config.Rows, config.Cols)
	var out bytes.Buffer
	if _, err := runSimulation(context.Background(), config, still, newRenderer(config, &out), &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Gen: 1 | Living: 4 | Status: Stable") {
		t.Fatalf("block not reported as stable:\n%s", out.String())
	}

	empty, _ := model.NewGeneration(config.Rows, config.Cols)
	out.Reset()
	if _, err := runSimulation(context.Background(), config, empty, newRenderer(config, &out), &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Gen: 0 | Living: 0 | Status: Extinct") {
		t.Fatalf("empty grid not reported as extinct:\n%s", out.String())
	}
}

func TestRunSimulationCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	config := testConfig()
	seed, _ := model.PresetGlider.Seed(config.Rows, config.Cols)
	var out bytes.Buffer

	stats, err := runSimulation(ctx, config, seed, newRenderer(config, &out), &out)
	if err != context.Canceled {
		t.Fatalf("got %v, want context.Canceled", err)
	}
	if stats.Generations != 0 || out.Len() != 0 {
		t.Fatalf("cancelled run rendered output: %q", out.String())
	}
}
