package maze

// LCG constants. Mazes are bit-identical across implementations that share them.
const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// SeededRandom is a linear congruential generator whose whole output
// sequence is fixed by the seed it was built with.
//
// The increment is non-zero, so a zero state is not a fixed point and
// every seed, including 0, yields a usable sequence.
// It is not safe for concurrent use.
type SeededRandom struct {
	state int64
}

// NewSeededRandom returns a generator seeded with seed. Seeds outside
// [0, modulus) are reduced first, which leaves the sequence unchanged.
func NewSeededRandom(seed int) *SeededRandom {
	s := int64(seed) % lcgModulus
	if s < 0 {
		s += lcgModulus
	}
	return &SeededRandom{state: s}
}

// Next advances the generator and returns a value in [0, 1).
func (r *SeededRandom) Next() float64 {
	r.state = (r.state*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(r.state) / lcgModulus
}

// Intn returns a value in [0, n). It returns 0 when n <= 0.
func (r *SeededRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() * float64(n))
}

// Shuffle permutes n elements in place with a Fisher-Yates pass from the
// last index down.
func (r *SeededRandom) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		swap(i, j)
	}
}
