package rules

/*
NextCellState applies the Game of Life transition table to a single cell.

	alive, 0 or 1 neighbors -> dead
	alive, 2 or 3 neighbors -> alive
	alive, 4+ neighbors     -> dead
	dead, exactly 3         -> alive
	dead, anything else     -> dead
*/
func NextCellState(alive bool, neighbors int) bool {
	next := false
	if alive {
		if neighbors == 0 || neighbors == 1 {
			next = false
		}
		if neighbors >= 4 {
			next = false
		}
		if neighbors == 2 || neighbors == 3 {
			next = true
		}
		return next
	}
	if neighbors == 3 {
		next = true
	}
	return next
}
