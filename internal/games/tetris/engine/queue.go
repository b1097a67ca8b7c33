package engine

import "math/rand"

// Randomizer draws the next piece type for the queue.
type Randomizer interface {
	Next() Type
}

// uniform draws each type independently with equal probability.
// Repeats are allowed; there is no bag.
type uniform struct {
	rng *rand.Rand
}

// NewUniformRandomizer returns a seeded uniform randomizer.
func NewUniformRandomizer(seed int64) Randomizer {
	return &uniform{rng: rand.New(rand.NewSource(seed))}
}

func (u *uniform) Next() Type {
	return Types[u.rng.Intn(len(Types))]
}

// Queue holds the upcoming piece types. Index 0 plays next.
type Queue struct {
	items [QueueSize]Type
	rnd   Randomizer
}

// NewQueue fills a queue from the randomizer.
func NewQueue(rnd Randomizer) *Queue {
	q := &Queue{rnd: rnd}
	for i := range q.items {
		q.items[i] = rnd.Next()
	}
	return q
}

// Pop removes and returns the front type and appends a fresh draw.
func (q *Queue) Pop() Type {
	front := q.items[0]
	copy(q.items[:], q.items[1:])
	q.items[QueueSize-1] = q.rnd.Next()
	return front
}

// Peek returns a copy of the queue contents.
func (q *Queue) Peek() [QueueSize]Type {
	return q.items
}
