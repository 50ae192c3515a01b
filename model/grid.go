package model

import (
	"context"
	"crypto/md5"
	"fmt"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-mars-life/rules"
)

var (
	// ErrEmptyGrid is returned when a generation would have no rows or no columns.
	ErrEmptyGrid = errors.New("grid must have at least one row and one column")
	// ErrRaggedGrid is returned when rows of a source matrix differ in length.
	ErrRaggedGrid = errors.New("grid rows must all have the same length")
	// ErrOutOfRange is returned for coordinates outside [0, rows) x [0, cols).
	ErrOutOfRange = errors.New("coordinate out of range")
)

// Cell identifies a position on the grid
type Cell struct {
	Row int
	Col int
}

// Generation is an immutable snapshot of a toroidal grid at one time step.
// Nothing in this package writes to a Generation once it has been returned.
type Generation struct {
	rows  int
	cols  int
	cells [][]bool
}

func newEmpty(rows, cols int) *Generation {
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, cols)
	}
	return &Generation{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}
}

// NewGeneration creates a rows x cols generation with the given cells alive and all others dead
func NewGeneration(rows, cols int, alive ...Cell) (*Generation, error) {
	if rows < 1 || cols < 1 {
		return nil, errors.Wrapf(ErrEmptyGrid, "[NewGeneration] %dx%d", rows, cols)
	}

	g := newEmpty(rows, cols)
	for _, c := range alive {
		if !g.inBounds(c.Row, c.Col) {
			return nil, errors.Wrapf(ErrOutOfRange, "[NewGeneration] cell (%d,%d) on %dx%d grid",
				c.Row, c.Col, rows, cols)
		}
		g.cells[c.Row][c.Col] = true
	}
	return g, nil
}

// FromCells copies a row-major liveness matrix into a new generation
func FromCells(cells [][]bool) (*Generation, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, errors.Wrap(ErrEmptyGrid, "[FromCells]")
	}

	cols := len(cells[0])
	g := newEmpty(len(cells), cols)
	for r, row := range cells {
		if len(row) != cols {
			return nil, errors.Wrapf(ErrRaggedGrid, "[FromCells] row %d has %d columns, want %d",
				r, len(row), cols)
		}
		copy(g.cells[r], row)
	}
	return g, nil
}

// Rows returns the number of rows
func (g *Generation) Rows() int {
	return g.rows
}

// Cols returns the number of columns
func (g *Generation) Cols() int {
	return g.cols
}

func (g *Generation) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Alive reports whether the cell at (row, col) is alive. Out of range cells read as dead.
func (g *Generation) Alive(row, col int) bool {
	if !g.inBounds(row, col) {
		return false
	}
	return g.cells[row][col]
}

// Cells returns a copy of the liveness matrix
func (g *Generation) Cells() [][]bool {
	out := make([][]bool, g.rows)
	for r := range g.cells {
		out[r] = append([]bool(nil), g.cells[r]...)
	}
	return out
}

// LiveCells lists the live cells in row-major order
func (g *Generation) LiveCells() []Cell {
	var live []Cell
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c] {
				live = append(live, Cell{Row: r, Col: c})
			}
		}
	}
	return live
}

// CountLivingCells returns the total number of living cells
func (g *Generation) CountLivingCells() (count int) {
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c] {
				count++
			}
		}
	}
	return
}

// Equal reports whether both generations have the same dimensions and liveness
func (g *Generation) Equal(other *Generation) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// Hash returns an MD5 hash of the grid's dimensions and row-major liveness
func (g *Generation) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", g.rows, g.cols)
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// CountLiveNeighbors counts live cells among the 8 toroidal neighbors of (row, col).
// The target itself must be in range; only neighbor coordinates wrap.
func (g *Generation) CountLiveNeighbors(row, col int) (int, error) {
	if !g.inBounds(row, col) {
		return 0, errors.Wrapf(ErrOutOfRange, "[CountLiveNeighbors] (%d,%d) on %dx%d grid",
			row, col, g.rows, g.cols)
	}
	return g.liveNeighbors(row, col), nil
}

// liveNeighbors assumes (row, col) is in range. On grids narrower than 3 some
// offsets land on the same cell, or on the target itself, and are counted each time.
func (g *Generation) liveNeighbors(row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr := (row + dr + g.rows) % g.rows
			nc := (col + dc + g.cols) % g.cols
			if g.cells[nr][nc] {
				count++
			}
		}
	}
	return count
}

// stepRows writes next-state values for rows [start, end) into next, reading only from g
func (g *Generation) stepRows(next *Generation, start, end int) {
	for r := start; r < end; r++ {
		for c := range g.cols {
			next.cells[r][c] = rules.NextCellState(g.cells[r][c], g.liveNeighbors(r, c))
		}
	}
}

// NextGeneration computes the successor generation. The receiver is not modified.
func (g *Generation) NextGeneration() *Generation {
	next := newEmpty(g.rows, g.cols)
	g.stepRows(next, 0, g.rows)
	return next
}

// NextGenerationParallel computes the successor generation with row bands split
// across workers. A worker count below 1 uses runtime.NumCPU().
func (g *Generation) NextGenerationParallel(ctx context.Context, workers int) (*Generation, error) {
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	var (
		next          = newEmpty(g.rows, g.cols)
		eg, egCtx     = errgroup.WithContext(ctx)
		rowsPerWorker = (g.rows + workers - 1) / workers // Ceiling division
	)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.rows)
		)
		if startRow >= g.rows {
			break
		}

		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			g.stepRows(next, startRow, endRow)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, errors.Wrap(err, "[NextGenerationParallel] step cancelled")
	}
	return next, nil
}
