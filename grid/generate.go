// Package grid - random obstacle generation.
//
// Determinism:
//   - Same (rows, cols, density, seed) ⇒ identical grid on every platform.
//   - seed==0 selects defaultSeed; there is no hidden time-based source.
//
// Concurrency:
//   - Each call builds its own *rand.Rand; nothing is shared between calls.
package grid

import (
	"fmt"
	"math/rand"
)

// defaultSeed is used when callers pass seed==0.
const defaultSeed int64 = 1

// DefaultDensity is the obstacle density used when none is configured (25%).
const DefaultDensity = 0.25

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// Generate builds a rows×cols grid in which every cell independently becomes
// Blocked with probability density, then clears the start and end cells.
// Options are applied as for New; WithBlocked cells are added on top of the
// random obstacles.
//
// Returns ErrInvalidDensity if density is outside [0,1], and any error New
// would return.
// Complexity: O(R×C).
func Generate(rows, cols int, density float64, seed int64, opts ...Option) (*Grid, error) {
	// 1. Validate density before any allocation (NaN fails both comparisons)
	if !(density >= 0 && density <= 1) {
		return nil, fmt.Errorf("%w: %v (must be in [0,1])", ErrInvalidDensity, density)
	}

	// 2. Build the empty grid with endpoints resolved
	g, err := New(rows, cols, opts...)
	if err != nil {
		return nil, err
	}

	// 3. Roll every cell in row-major order; OR with explicit obstacles
	r := rngFromSeed(seed)
	for i := range g.blocked {
		if r.Float64() < density {
			g.blocked[i] = true
		}
	}

	// 4. Re-establish the endpoint invariant
	if err = g.clearEndpoints(); err != nil {
		return nil, err
	}

	return g, nil
}

// DensityFromPercent converts an obstacle density given either as a
// fraction in [0,1] or as a percent in (1,100] into a fraction.
// Returns ErrInvalidDensity for negative values or values above 100.
func DensityFromPercent(v float64) (float64, error) {
	switch {
	case v >= 0 && v <= 1:
		return v, nil
	case v > 1 && v <= 100:
		return v / 100, nil
	default:
		return 0, fmt.Errorf("%w: %v (want fraction 0..1 or percent 0..100)", ErrInvalidDensity, v)
	}
}
