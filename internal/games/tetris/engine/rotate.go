package engine

// Rotate turns the piece one step and resolves blocked rotations with the
// kick table. The naive rotation is tried first, then each kick in order.
// When every candidate is blocked the piece is returned unchanged.
func Rotate(b Board, p Piece, clockwise bool) Piece {
	naive := p.Rotated(clockwise)
	if b.IsLegal(naive) {
		return naive
	}
	for _, k := range Kicks(p.Type, p.Rotation, naive.Rotation) {
		candidate := naive.Moved(k.X, k.Y)
		if b.IsLegal(candidate) {
			return candidate
		}
	}
	return p
}
