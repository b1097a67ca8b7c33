package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffsetsAreFourDistinctConnectedCells(t *testing.T) {
	for _, typ := range Types {
		for rot := range 4 {
			offsets := Offsets(typ, rot)
			set := cellSet(offsets[:])
			require.Len(t, set, 4, "%v rotation %d has duplicate cells", typ, rot)

			// Flood fill from the first cell must reach all four
			seen := map[Point]bool{offsets[0]: true}
			stack := []Point{offsets[0]}
			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				for _, d := range []Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
					n := p.Add(d)
					if set[n] && !seen[n] {
						seen[n] = true
						stack = append(stack, n)
					}
				}
			}
			assert.Len(t, seen, 4, "%v rotation %d is not connected", typ, rot)
		}
	}
}

func TestOffsetsNormaliseRotation(t *testing.T) {
	assert.Equal(t, Offsets(T, 1), Offsets(T, 5))
	assert.Equal(t, Offsets(T, 3), Offsets(T, -1))
	assert.Equal(t, [4]Point{}, Offsets(None, 0))
}

func TestSpawnOrigin(t *testing.T) {
	tests := []struct {
		typ      Type
		expected Point
	}{
		{I, Point{4, 0}},
		{O, Point{4, 0}},
		{J, Point{4, 1}},
		{L, Point{4, 1}},
		{S, Point{4, 1}},
		{T, Point{4, 1}},
		{Z, Point{4, 1}},
	}
	for _, tc := range tests {
		t.Run(tc.typ.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, SpawnOrigin(tc.typ))

			// Spawn position is fully inside the visible well
			for _, c := range NewPiece(tc.typ, tc.expected).Cells() {
				assert.True(t, inGrid(c.X, c.Y) && c.Y >= 0, "cell %v off the well", c)
			}
		})
	}
}

func TestRotatedOKeepsItsCells(t *testing.T) {
	p := NewPiece(O, SpawnOrigin(O))
	start := p.Cells()
	want := cellSet(start[:])

	cw, ccw := p, p
	for range 4 {
		cw = cw.Rotated(true)
		ccw = ccw.Rotated(false)
		c1, c2 := cw.Cells(), ccw.Cells()
		assert.Equal(t, want, cellSet(c1[:]))
		assert.Equal(t, want, cellSet(c2[:]))
	}
}

func TestRotatedFullTurnIsIdentity(t *testing.T) {
	for _, typ := range Types {
		p := NewPiece(typ, Point{5, 10})
		q := p
		for range 4 {
			q = q.Rotated(true)
		}
		assert.Equal(t, p, q, "%v clockwise", typ)

		q = p.Rotated(true).Rotated(false)
		assert.Equal(t, p, q, "%v there and back", typ)
	}
}

func TestIRotatesInPlace(t *testing.T) {
	// Horizontal I on row 0 columns 3..6 turns into a column at x=5
	p := NewPiece(I, Point{4, 0}).Rotated(true)
	assert.Equal(t, 1, p.Rotation)
	assert.Equal(t, Point{5, 0}, p.Origin)
	assert.Equal(t, [4]Point{{5, -1}, {5, 0}, {5, 1}, {5, 2}}, p.Cells())
}

func TestKickTableIsTotal(t *testing.T) {
	for _, typ := range Types {
		for from := range 4 {
			for to := range 4 {
				kicks := Kicks(typ, from, to)
				switch {
				case from == to, typ == O:
					assert.Empty(t, kicks, "%v %d->%d", typ, from, to)
				default:
					assert.NotEmpty(t, kicks, "%v %d->%d", typ, from, to)
				}
			}
		}
	}
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "I", I.String())
	assert.Equal(t, "None", None.String())
	assert.False(t, None.Valid())
	assert.True(t, Z.Valid())
}
