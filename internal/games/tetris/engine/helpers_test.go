package engine

// sequence is a Randomizer that replays a fixed list of types in a loop.
type sequence struct {
	types []Type
	i     int
}

func (q *sequence) Next() Type {
	t := q.types[q.i%len(q.types)]
	q.i++
	return t
}

// rowsExcept fills the given rows completely except column gap.
func rowsExcept(gap int, rows ...int) Board {
	var cells []Cell
	for _, y := range rows {
		for x := range Width {
			if x != gap {
				cells = append(cells, Cell{X: x, Y: y, Type: Z})
			}
		}
	}
	return NewBoard().With(cells...)
}

// verticalI is an I piece standing in column x with its lowest cell at row 19.
func verticalI(x int) Piece {
	return Piece{Origin: Point{X: x, Y: 17}, Type: I, Rotation: 1}
}

func cellSet(cells []Point) map[Point]bool {
	set := make(map[Point]bool, len(cells))
	for _, c := range cells {
		set[c] = true
	}
	return set
}
