package grid_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/grid"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty dimensions and bad cells.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		opts       []grid.Option
		err        error
	}{
		{"ZeroRows", 0, 3, nil, grid.ErrEmptyGrid},
		{"NegativeCols", 3, -1, nil, grid.ErrEmptyGrid},
		{"BlockedOutside", 2, 2, []grid.Option{grid.WithBlocked(grid.At(2, 0))}, grid.ErrOutOfBounds},
		{"StartOutside", 2, 2, []grid.Option{grid.WithStart(grid.At(-1, 0))}, grid.ErrInvalidEndpoint},
		{"EndOutside", 2, 2, []grid.Option{grid.WithEnd(grid.At(0, 2))}, grid.ErrInvalidEndpoint},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.rows, tc.cols, tc.opts...)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%d,%d) error = %v; want %v", tc.rows, tc.cols, err, tc.err)
			}
		})
	}
}

// TestNew_DefaultsAndEndpointsCleared checks default corners and that explicit
// obstacles on the endpoints are overridden.
func TestNew_DefaultsAndEndpointsCleared(t *testing.T) {
	g, err := grid.New(3, 4, grid.WithBlocked(grid.At(0, 0), grid.At(2, 3), grid.At(1, 1)))
	require.NoError(t, err)

	assert.Equal(t, grid.At(0, 0), g.Start())
	assert.Equal(t, grid.At(2, 3), g.End())
	assert.True(t, g.IsPassable(g.Start()))
	assert.True(t, g.IsPassable(g.End()))
	assert.False(t, g.IsPassable(grid.At(1, 1)))
	assert.Equal(t, grid.Blocked, g.State(grid.At(1, 1)))
	assert.Equal(t, 12, g.Len())
	assert.Equal(t, 11, g.PassableCount())
}

// TestGenerate_EndpointsAlwaysPassable covers the endpoint invariant for every
// density including 1.0, across several shapes and seeds.
func TestGenerate_EndpointsAlwaysPassable(t *testing.T) {
	densities := []float64{0, 0.25, 0.5, 0.9, 1}
	shapes := [][2]int{{1, 1}, {1, 7}, {5, 5}, {12, 9}}
	for _, d := range densities {
		for _, s := range shapes {
			for seed := int64(0); seed < 5; seed++ {
				g, err := grid.Generate(s[0], s[1], d, seed)
				require.NoError(t, err)
				assert.True(t, g.IsPassable(g.Start()), "start blocked: d=%v shape=%v seed=%d", d, s, seed)
				assert.True(t, g.IsPassable(g.End()), "end blocked: d=%v shape=%v seed=%d", d, s, seed)
			}
		}
	}
}

// TestGenerate_FullDensity blocks everything except the two endpoints.
func TestGenerate_FullDensity(t *testing.T) {
	g, err := grid.Generate(4, 6, 1, 99)
	require.NoError(t, err)
	assert.Equal(t, 2, g.PassableCount())

	g, err = grid.Generate(4, 6, 0, 99)
	require.NoError(t, err)
	assert.Equal(t, 24, g.PassableCount())
}

// TestGenerate_Deterministic locks reproducibility per seed.
func TestGenerate_Deterministic(t *testing.T) {
	a, err := grid.Generate(20, 30, 0.3, 42)
	require.NoError(t, err)
	b, err := grid.Generate(20, 30, 0.3, 42)
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())

	// seed 0 maps to a fixed default seed
	z1, _ := grid.Generate(10, 10, 0.4, 0)
	z2, _ := grid.Generate(10, 10, 0.4, 0)
	assert.Equal(t, z1.String(), z2.String())

	c, err := grid.Generate(20, 30, 0.3, 43)
	require.NoError(t, err)
	assert.NotEqual(t, a.String(), c.String(), "different seeds should differ on a 600-cell grid")
}

// TestGenerate_InvalidDensity rejects densities outside [0,1].
func TestGenerate_InvalidDensity(t *testing.T) {
	for _, d := range []float64{-0.01, 1.01, math.NaN()} {
		_, err := grid.Generate(3, 3, d, 1)
		assert.ErrorIs(t, err, grid.ErrInvalidDensity, "density %v", d)
	}
}

// TestDensityFromPercent accepts fractions and percents.
func TestDensityFromPercent(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0}, {0.25, 0.25}, {1, 1}, {25, 0.25}, {100, 1},
	}
	for _, tc := range cases {
		got, err := grid.DensityFromPercent(tc.in)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got, 1e-12, "in=%v", tc.in)
	}
	_, err := grid.DensityFromPercent(101)
	assert.ErrorIs(t, err, grid.ErrInvalidDensity)
	_, err = grid.DensityFromPercent(-1)
	assert.ErrorIs(t, err, grid.ErrInvalidDensity)
}

// TestWithEndpoints copies the grid and clears obstacles at new endpoints.
func TestWithEndpoints(t *testing.T) {
	g := grid.MustParse(
		"S.#",
		".#.",
		"..E",
	)
	moved, err := g.WithEndpoints(grid.At(0, 2), grid.At(1, 1))
	require.NoError(t, err)
	assert.True(t, moved.IsPassable(grid.At(0, 2)))
	assert.True(t, moved.IsPassable(grid.At(1, 1)))
	assert.False(t, g.IsPassable(grid.At(1, 1)), "original must not change")

	_, err = g.WithEndpoints(grid.At(0, 0), grid.At(3, 3))
	assert.ErrorIs(t, err, grid.ErrInvalidEndpoint)
}

//----------------------------------------------------------------------------//
// Neighbor rule
//----------------------------------------------------------------------------//

// TestNeighbors_InteriorOrder pins East, South, West, North for every interior cell.
func TestNeighbors_InteriorOrder(t *testing.T) {
	g, err := grid.New(5, 6)
	require.NoError(t, err)
	for r := 1; r < g.Rows()-1; r++ {
		for c := 1; c < g.Cols()-1; c++ {
			want := []grid.Cell{
				grid.At(r, c+1), // East
				grid.At(r+1, c), // South
				grid.At(r, c-1), // West
				grid.At(r-1, c), // North
			}
			assert.Equal(t, want, g.Neighbors(grid.At(r, c)), "cell (%d,%d)", r, c)
		}
	}
}

// TestNeighbors_Boundary checks that boundary cells omit out-of-range
// directions without substituting anything and keep the relative order.
func TestNeighbors_Boundary(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	cases := []struct {
		cell grid.Cell
		want []grid.Cell
	}{
		{grid.At(0, 0), []grid.Cell{grid.At(0, 1), grid.At(1, 0)}},                // E,S
		{grid.At(0, 2), []grid.Cell{grid.At(1, 2), grid.At(0, 1)}},                // S,W
		{grid.At(2, 2), []grid.Cell{grid.At(2, 1), grid.At(1, 2)}},                // W,N
		{grid.At(2, 0), []grid.Cell{grid.At(2, 1), grid.At(1, 0)}},                // E,N
		{grid.At(0, 1), []grid.Cell{grid.At(0, 2), grid.At(1, 1), grid.At(0, 0)}}, // E,S,W
		{grid.At(1, 0), []grid.Cell{grid.At(1, 1), grid.At(2, 0), grid.At(0, 0)}}, // E,S,N
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, g.Neighbors(tc.cell), "cell %v", tc.cell)
	}

	single, err := grid.New(1, 1)
	require.NoError(t, err)
	assert.Empty(t, single.Neighbors(grid.At(0, 0)))
}

// TestNeighbors_SkipsObstacles filters Blocked cells out of the fixed order.
func TestNeighbors_SkipsObstacles(t *testing.T) {
	g := grid.MustParse(
		"...",
		"..#",
		".#.",
	)
	// East (1,2) and South (2,1) are blocked: West then North remain.
	assert.Equal(t, []grid.Cell{grid.At(1, 0), grid.At(0, 1)}, g.Neighbors(grid.At(1, 1)))
	assert.False(t, g.IsPassable(grid.At(-1, 0)))
	assert.False(t, g.IsPassable(grid.At(0, 3)))
}

// TestIsNeighbor distinguishes 4-adjacency from diagonals and identity.
func TestIsNeighbor(t *testing.T) {
	assert.True(t, grid.IsNeighbor(grid.At(1, 1), grid.At(1, 2)))
	assert.True(t, grid.IsNeighbor(grid.At(1, 1), grid.At(0, 1)))
	assert.False(t, grid.IsNeighbor(grid.At(1, 1), grid.At(2, 2)))
	assert.False(t, grid.IsNeighbor(grid.At(1, 1), grid.At(1, 1)))
}
