package rules

import "testing"

func TestNextCellState(t *testing.T) {
	tests := []struct {
		alive     bool
		neighbors int
		want      bool
	}{
		{true, 0, false},
		{true, 1, false},
		{true, 2, true},
		{true, 3, true},
		{true, 4, false},
		{true, 5, false},
		{true, 6, false},
		{true, 7, false},
		{true, 8, false},
		{false, 0, false},
		{false, 1, false},
		{false, 2, false},
		{false, 3, true},
		{false, 4, false},
		{false, 5, false},
		{false, 6, false},
		{false, 7, false},
		{false, 8, false},
	}

	for _, tt := range tests {
		if got := NextCellState(tt.alive, tt.neighbors); got != tt.want {
			t.Errorf("NextCellState(%v, %d) = %v, want %v", tt.alive, tt.neighbors, got, tt.want)
		}
	}
}
