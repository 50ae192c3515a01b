package model

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownPreset is returned when a menu choice names no preset.
var ErrUnknownPreset = errors.New("unknown preset")

// Preset is a named starting pattern. Values match the menu numbering.
type Preset int

const (
	PresetStill Preset = iota + 1
	PresetOscillator
	PresetGlider
)

// Presets lists every preset in menu order
var Presets = []Preset{PresetStill, PresetOscillator, PresetGlider}

var presetCells = map[Preset][]Cell{
	// 2x2 block
	PresetStill: {{1, 1}, {1, 2}, {2, 1}, {2, 2}},
	// horizontal blinker
	PresetOscillator: {{2, 1}, {2, 2}, {2, 3}},
	PresetGlider:     {{3, 1}, {3, 2}, {3, 3}, {1, 2}, {2, 3}},
}

func (p Preset) String() string {
	switch p {
	case PresetStill:
		return "Still"
	case PresetOscillator:
		return "Oscillator"
	case PresetGlider:
		return "Glider"
	default:
		return "Preset(" + strconv.Itoa(int(p)) + ")"
	}
}

// Cells returns the live cells of the preset
func (p Preset) Cells() []Cell {
	return append([]Cell(nil), presetCells[p]...)
}

// Seed builds a rows x cols generation with the preset's cells alive
func (p Preset) Seed(rows, cols int) (*Generation, error) {
	cells, ok := presetCells[p]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPreset, "[Seed] %d", int(p))
	}
	g, err := NewGeneration(rows, cols, cells...)
	if err != nil {
		return nil, errors.Wrapf(err, "[Seed] preset %s", p)
	}
	return g, nil
}

// ParsePreset accepts a menu number ("1".."3") or a case-insensitive preset name
func ParsePreset(s string) (Preset, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		p := Preset(n)
		if _, ok := presetCells[p]; ok {
			return p, nil
		}
		return 0, errors.Wrapf(ErrUnknownPreset, "[ParsePreset] %q", s)
	}
	for _, p := range Presets {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownPreset, "[ParsePreset] %q", s)
}
