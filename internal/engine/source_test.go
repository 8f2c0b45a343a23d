package engine

// scriptedSource replays fixed values and counts how often it was consulted.
type scriptedSource struct {
	ints   []int
	floats []float64
	calls  int
}

func (s *scriptedSource) Intn(n int) int {
	s.calls++
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedSource) Float64() float64 {
	s.calls++
	if len(s.floats) == 0 {
		return 0.5
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}
