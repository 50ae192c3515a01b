package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the simulation driver
type Config struct {
	Rows        int           `json:"rows"`
	Cols        int           `json:"cols"`
	Iterations  int           `json:"iterations"`
	FrameDelay  time.Duration `json:"frame_delay"`
	BlockSize   int           `json:"block_size"`
	AliveGlyph  string        `json:"alive_glyph"`
	DeadGlyph   string        `json:"dead_glyph"`
	ClearScreen bool          `json:"clear_screen"`
	Parallel    bool          `json:"parallel"`
	Workers     int           `json:"workers"`
}

// DefaultConfig returns an 8x8 board run for 40 generations at 250ms per frame
func DefaultConfig() Config {
	return Config{
		Rows:        8,
		Cols:        8,
		Iterations:  40,
		FrameDelay:  250 * time.Millisecond,
		BlockSize:   2,
		AliveGlyph:  "@",
		DeadGlyph:   ".",
		ClearScreen: true,
		Parallel:    false,
		Workers:     0, // runtime.NumCPU()
	}
}

// LoadConfig loads configuration from JSON file, filling unset fields with defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid config in file: %+v", filename)
	}

	return config, nil
}

// Validate checks the fields the driver cannot run without
func (c Config) Validate() error {
	switch {
	case c.Rows < 1 || c.Cols < 1:
		return errors.Errorf("grid must be at least 1x1, got %dx%d", c.Rows, c.Cols)
	case c.Iterations < 0:
		return errors.Errorf("iterations must not be negative, got %d", c.Iterations)
	case c.FrameDelay < 0:
		return errors.Errorf("frame delay must not be negative, got %s", c.FrameDelay)
	case c.BlockSize < 1:
		return errors.Errorf("block size must be positive, got %d", c.BlockSize)
	case c.AliveGlyph == "" || c.DeadGlyph == "":
		return errors.New("alive and dead glyphs must be set")
	}
	return nil
}
