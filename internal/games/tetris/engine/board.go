package engine

import "strings"

// Cell is a permanently placed board cell.
type Cell struct {
	X, Y int
	Type Type
}

// Board is the grid of placed cells, hidden rows included. Row y is stored
// at grid[y+HiddenRows]. It is a value: assigning or returning a Board copies
// it, so successive boards never alias.
type Board struct {
	grid [HiddenRows + Height][Width]Type
}

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{}
}

// With returns a copy of the board with the given cells placed.
// Cells outside the grid are ignored.
func (b Board) With(cells ...Cell) Board {
	for _, c := range cells {
		if inGrid(c.X, c.Y) {
			b.grid[c.Y+HiddenRows][c.X] = c.Type
		}
	}
	return b
}

// inGrid reports whether (x, y) lies in the well or the hidden rows above it.
func inGrid(x, y int) bool {
	return x >= 0 && x < Width && y >= -HiddenRows && y < Height
}

// At returns the type placed at (x, y), or None.
func (b Board) At(x, y int) Type {
	if !inGrid(x, y) {
		return None
	}
	return b.grid[y+HiddenRows][x]
}

// Occupied reports whether (x, y) holds a placed cell.
func (b Board) Occupied(x, y int) bool {
	return b.At(x, y) != None
}

// Cells returns every placed cell, row by row from the top hidden row.
func (b Board) Cells() []Cell {
	var cells []Cell
	for row := range b.grid {
		for x := range Width {
			if t := b.grid[row][x]; t != None {
				cells = append(cells, Cell{X: x, Y: row - HiddenRows, Type: t})
			}
		}
	}
	return cells
}

// Count returns the number of placed cells.
func (b Board) Count() int {
	n := 0
	for row := range b.grid {
		for x := range Width {
			if b.grid[row][x] != None {
				n++
			}
		}
	}
	return n
}

// IsLegal reports whether the piece may occupy its position: every cell
// inside the side walls, above the floor, no higher than the hidden rows and
// not on a placed cell.
func (b Board) IsLegal(p Piece) bool {
	if !p.Type.Valid() {
		return false
	}
	for _, c := range p.Cells() {
		if !inGrid(c.X, c.Y) || b.grid[c.Y+HiddenRows][c.X] != None {
			return false
		}
	}
	return true
}

// LockAndClear places the piece on the board, removes every full row and
// compacts the rows above. It returns the new board and the number of rows
// cleared. Hidden rows are compacted like any other row, so a cell locked
// above the top edge falls into view when rows below it clear.
func (b Board) LockAndClear(p Piece) (Board, int) {
	for _, c := range p.Cells() {
		if inGrid(c.X, c.Y) {
			b.grid[c.Y+HiddenRows][c.X] = p.Type
		}
	}

	const rows = HiddenRows + Height
	var full [rows]bool
	cleared := 0
	for row := range rows {
		n := 0
		for x := range Width {
			if b.grid[row][x] != None {
				n++
			}
		}
		if n == Width {
			full[row] = true
			cleared++
		}
	}
	if cleared == 0 {
		return b, 0
	}

	// Each surviving row falls by the number of cleared rows below it.
	var next Board
	for row := range rows {
		if full[row] {
			continue
		}
		below := 0
		for r := row + 1; r < rows; r++ {
			if full[r] {
				below++
			}
		}
		next.grid[row+below] = b.grid[row]
	}
	return next, cleared
}

// DropDistance returns how many rows the piece can fall before it rests.
func (b Board) DropDistance(p Piece) int {
	if !b.IsLegal(p) {
		return 0
	}
	d := 0
	for b.IsLegal(p.Moved(0, d+1)) {
		d++
	}
	return d
}

// String draws the visible rows one per line, '.' for empty cells and the
// type letter for placed ones.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow((Width + 1) * Height)
	for y := range Height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range Width {
			if t := b.At(x, y); t != None {
				sb.WriteString(t.String())
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
