package domain

// Difficulty labels target puzzle generation: the fewer clues survive
// carving, the harder the puzzle.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int
	Col int
}

// Hint describes a forced move on a partial grid.
type Hint struct {
	Message string
	Cell    CellCoord
	Value   Cell
}

// Puzzle is a generated puzzle together with the solution it was carved from.
type Puzzle struct {
	Seed       int64
	Difficulty Difficulty
	Clues      *Grid
	Solution   *Grid
}
