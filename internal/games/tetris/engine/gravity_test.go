package engine

import "testing"

func TestGravityFiresOnLongTick(t *testing.T) {
	g := NewGravity(3)
	for i := 1; i < 3; i++ {
		if g.Advance() {
			t.Fatalf("Advance() fired early at tick %d", i)
		}
	}
	if !g.Advance() {
		t.Error("Advance() should fire at the long tick")
	}
	g.Reset()
	if g.Ticks() != 0 {
		t.Errorf("Ticks() = %d after Reset, expected 0", g.Ticks())
	}
}

func TestGravityForce(t *testing.T) {
	g := NewGravity(100)
	g.Advance()
	g.Force()
	if !g.Advance() {
		t.Error("Advance() should fire right after Force")
	}
}

func TestGravityDefault(t *testing.T) {
	if got := NewGravity(0).LongTick(); got != DefaultLongTick {
		t.Errorf("LongTick() = %d, expected %d", got, DefaultLongTick)
	}
}
