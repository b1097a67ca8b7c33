// Package engine implements the falling-block simulation: piece geometry,
// the board and its collision rules, rotation with kicks, the piece queue and
// hold slot, the gravity timer and the session state machine.
//
// Everything here is synchronous and owned by a single Session. The package
// has no timers and no I/O; a platform drives it with Tick and Dispatch.
package engine

// Board dimensions and queue depth. HiddenRows rows sit above row 0, at
// negative y; pieces may occupy and lock into them but they are not drawn.
const (
	Width      = 10
	Height     = 20
	HiddenRows = 2
	QueueSize  = 5
)

// Type identifies a tetromino shape. The zero value is None.
type Type uint8

const (
	None Type = iota
	I
	J
	L
	O
	S
	T
	Z
)

// Types lists the seven real piece types.
var Types = [...]Type{I, J, L, O, S, T, Z}

// String returns the single-letter name of the type.
func (t Type) String() string {
	switch t {
	case I:
		return "I"
	case J:
		return "J"
	case L:
		return "L"
	case O:
		return "O"
	case S:
		return "S"
	case T:
		return "T"
	case Z:
		return "Z"
	default:
		return "None"
	}
}

// Valid reports whether t is one of the seven real types.
func (t Type) Valid() bool {
	return t >= I && t <= Z
}

// Point is a grid coordinate or offset. Y grows downwards.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p minus q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// shapes holds the four cell offsets of every type in every rotation state,
// relative to the piece origin.
var shapes = [...][4][4]Point{
	I: {
		{{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
		{{0, -1}, {0, 0}, {0, 1}, {0, 2}},
		{{-2, 0}, {-1, 0}, {0, 0}, {1, 0}},
		{{0, -2}, {0, -1}, {0, 0}, {0, 1}},
	},
	J: {
		{{-1, -1}, {-1, 0}, {0, 0}, {1, 0}},
		{{0, -1}, {1, -1}, {0, 0}, {0, 1}},
		{{-1, 0}, {0, 0}, {1, 0}, {1, 1}},
		{{0, -1}, {0, 0}, {0, 1}, {-1, 1}},
	},
	L: {
		{{1, -1}, {-1, 0}, {0, 0}, {1, 0}},
		{{0, -1}, {0, 0}, {0, 1}, {1, 1}},
		{{-1, 0}, {0, 0}, {1, 0}, {-1, 1}},
		{{-1, -1}, {0, -1}, {0, 0}, {0, 1}},
	},
	O: {
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{-1, 0}, {0, 0}, {-1, 1}, {0, 1}},
		{{-1, -1}, {0, -1}, {-1, 0}, {0, 0}},
		{{0, -1}, {1, -1}, {0, 0}, {1, 0}},
	},
	S: {
		{{0, -1}, {1, -1}, {-1, 0}, {0, 0}},
		{{0, -1}, {0, 0}, {1, 0}, {1, 1}},
		{{0, 0}, {1, 0}, {-1, 1}, {0, 1}},
		{{-1, -1}, {-1, 0}, {0, 0}, {0, 1}},
	},
	T: {
		{{0, -1}, {-1, 0}, {0, 0}, {1, 0}},
		{{0, -1}, {0, 0}, {1, 0}, {0, 1}},
		{{-1, 0}, {0, 0}, {1, 0}, {0, 1}},
		{{0, -1}, {-1, 0}, {0, 0}, {0, 1}},
	},
	Z: {
		{{-1, -1}, {0, -1}, {0, 0}, {1, 0}},
		{{1, -1}, {0, 0}, {1, 0}, {0, 1}},
		{{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
		{{0, -1}, {-1, 0}, {0, 0}, {-1, 1}},
	},
}

// anchorDrift is where the I and O bounding boxes sit relative to the origin
// in each rotation state. Rotating moves the origin by drift[from]-drift[to]
// so the piece turns in place instead of wandering.
var anchorDrift = [4]Point{{0, 0}, {-1, 0}, {-1, -1}, {0, -1}}

// normRotation maps any integer onto 0..3.
func normRotation(r int) int {
	return ((r % 4) + 4) % 4
}

// Offsets returns the four cell offsets of a type in a rotation state.
// None yields the zero array.
func Offsets(t Type, rotation int) [4]Point {
	if !t.Valid() {
		return [4]Point{}
	}
	return shapes[t][normRotation(rotation)]
}

// SpawnOrigin returns the anchor a new piece of type t starts at.
func SpawnOrigin(t Type) Point {
	if t == I || t == O {
		return Point{X: 4, Y: 0}
	}
	return Point{X: 4, Y: 1}
}

// Piece is the falling tetromino. It is a value: every move or rotation
// returns a new Piece.
type Piece struct {
	Origin   Point
	Type     Type
	Rotation int
}

// NewPiece creates a piece at origin in rotation state 0.
func NewPiece(t Type, origin Point) Piece {
	return Piece{Origin: origin, Type: t}
}

// Cells returns the four absolute cells of the piece.
func (p Piece) Cells() [4]Point {
	cells := Offsets(p.Type, p.Rotation)
	for i := range cells {
		cells[i] = cells[i].Add(p.Origin)
	}
	return cells
}

// Moved returns the piece translated by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.Origin = p.Origin.Add(Point{X: dx, Y: dy})
	return p
}

// Rotated returns the naive rotation of the piece: the next (clockwise) or
// previous rotation state, with the origin compensated for I and O.
func (p Piece) Rotated(clockwise bool) Piece {
	step := -1
	if clockwise {
		step = 1
	}
	from := normRotation(p.Rotation)
	to := normRotation(from + step)
	p.Origin = p.Origin.Add(pivot(p.Type, from, to))
	p.Rotation = to
	return p
}

// pivot is the origin compensation applied by a naive rotation.
// O shares I's drift so its four cells stay put.
func pivot(t Type, from, to int) Point {
	if t != I && t != O {
		return Point{}
	}
	return anchorDrift[from].Sub(anchorDrift[to])
}
