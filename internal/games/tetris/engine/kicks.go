package engine

// Kick tables list the origin displacements tried, in order, when the naive
// rotation of a piece is blocked. Offsets are relative to the naive
// candidate and use the board's downward-growing Y axis.
//
// Index: [from][to]. Identity transitions are empty.
type kickTable [4][4][]Point

// jlstzKicks serves J, L, S, T and Z.
var jlstzKicks = kickTable{
	0: {
		1: {{-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		2: {{0, -1}, {1, 0}, {-1, 0}},
		3: {{1, 0}, {1, -1}, {0, 2}, {1, 2}},
	},
	1: {
		0: {{1, 0}, {1, 1}, {0, -2}, {1, -2}},
		2: {{1, 0}, {1, 1}, {0, -2}, {1, -2}},
		3: {{1, 0}, {-1, 0}, {0, -1}},
	},
	2: {
		0: {{0, 1}, {-1, 0}, {1, 0}},
		1: {{-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		3: {{1, 0}, {1, -1}, {0, 2}, {1, 2}},
	},
	3: {
		0: {{-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		1: {{-1, 0}, {1, 0}, {0, -1}},
		2: {{-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	},
}

// iKicks serves the I piece.
var iKicks = kickTable{
	0: {
		1: {{-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
		2: {{0, -1}, {1, 0}, {-1, 0}},
		3: {{-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
	},
	1: {
		0: {{2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
		2: {{-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
		3: {{1, 0}, {-1, 0}, {0, -1}},
	},
	2: {
		0: {{0, 1}, {-1, 0}, {1, 0}},
		1: {{1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
		3: {{2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	},
	3: {
		0: {{1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
		1: {{-1, 0}, {1, 0}, {0, -1}},
		2: {{-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	},
}

// Kicks returns the ordered kick candidates for rotating a piece of type t
// from one rotation state to another. O never needs kicks: its naive
// rotation covers the same four cells.
func Kicks(t Type, from, to int) []Point {
	from, to = normRotation(from), normRotation(to)
	switch t {
	case I:
		return iKicks[from][to]
	case J, L, S, T, Z:
		return jlstzKicks[from][to]
	default:
		return nil
	}
}
