package engine

import (
	"math/rand"
	"sync"
)

// DefaultFourProbability is the chance a spawned tile is a 4 instead of a 2.
const DefaultFourProbability = 0.1

// Source is the random source behind tile spawning.
// *rand.Rand satisfies it.
type Source interface {
	// Intn returns a value in [0, n). n is always > 0.
	Intn(n int) int
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
}

// lockedSource serialises access to a *rand.Rand for hosts that share one
// source between goroutines.
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource returns a seeded, goroutine-safe Source.
func NewSource(seed int64) Source {
	return &lockedSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// Spawner places new tiles on empty cells.
type Spawner struct {
	src      Source
	fourProb float64
}

// Option configures a Spawner (and the Controller that owns it).
type Option func(*Spawner)

// WithFourProbability sets the chance of spawning a 4, clamped to [0, 1].
func WithFourProbability(p float64) Option {
	return func(s *Spawner) {
		switch {
		case p < 0:
			p = 0
		case p > 1:
			p = 1
		}
		s.fourProb = p
	}
}

// NewSpawner creates a spawner drawing from src.
func NewSpawner(src Source, opts ...Option) *Spawner {
	s := &Spawner{
		src:      src,
		fourProb: DefaultFourProbability,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Spawn returns b with one new tile on a uniformly chosen empty cell:
// 4 with the configured probability, otherwise 2.
// A full board is returned unchanged and the source is not consulted.
func (s *Spawner) Spawn(b Board) Board {
	empty := EmptyCells(b)
	if len(empty) == 0 {
		return b
	}

	cell := empty[s.src.Intn(len(empty))]

	value := 2
	if s.src.Float64() < s.fourProb {
		value = 4
	}

	b[cell.Y][cell.X] = value
	return b
}
