package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/dfs"
	"github.com/katalvlaran/gridwalk/event"
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/render"
	"github.com/katalvlaran/gridwalk/session"
)

func TestCanvas_ApplySequence(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)
	c := render.NewCanvas(g, g.Start(), g.End())
	assert.Equal(t, []string{"S..", "...", "..E"}, c.Lines())

	c.Apply(event.Event{Kind: event.Visiting, Cell: grid.At(0, 0)})
	c.Apply(event.Event{Kind: event.Frontier, Cell: grid.At(0, 1), Depth: 1})
	c.Apply(event.Event{Kind: event.Frontier, Cell: grid.At(1, 0), Depth: 1})
	c.Apply(event.Event{Kind: event.Visiting, Cell: grid.At(0, 1), Depth: 1})
	assert.Equal(t, []string{"S@.", "+..", "..E"}, c.Lines())

	c.Apply(event.Event{Kind: event.Backtrack, Cell: grid.At(0, 1), Depth: 1})
	assert.Equal(t, []string{"So.", "+..", "..E"}, c.Lines())

	c.Apply(event.Found([]grid.Cell{
		grid.At(0, 0), grid.At(1, 0), grid.At(1, 1), grid.At(2, 1), grid.At(2, 2),
	}))
	assert.Equal(t, "So.\n**.\n.*E", c.String())
	assert.Equal(t, 6, c.Visited())

	c.Reset()
	assert.Equal(t, []string{"S..", "...", "..E"}, c.Lines())
	assert.Zero(t, c.Visited())
}

// TestCanvas_FrontierDoesNotOverwrite keeps visited cells visited.
func TestCanvas_FrontierDoesNotOverwrite(t *testing.T) {
	g, err := grid.New(1, 3)
	require.NoError(t, err)
	c := render.NewCanvas(g, g.Start(), g.End())
	c.Apply(event.Event{Kind: event.Visiting, Cell: grid.At(0, 1)})
	c.Apply(event.Event{Kind: event.Exhausted})
	c.Apply(event.Event{Kind: event.Frontier, Cell: grid.At(0, 1)})
	assert.Equal(t, "SoE", c.String())
}

func TestCanvas_IgnoresOutOfBounds(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	c := render.NewCanvas(g, g.Start(), g.End())
	assert.NotPanics(t, func() {
		c.Apply(event.Event{Kind: event.Visiting, Cell: grid.At(5, 5)})
		c.Apply(event.Event{Kind: event.Frontier, Cell: grid.At(-1, 0)})
		c.Apply(event.Found([]grid.Cell{grid.At(0, 0), grid.At(0, 9)}))
	})
	assert.Equal(t, "S.\n.E", c.String())
}

// TestCanvas_DFSRun renders a complete depth-first search with a dead end.
func TestCanvas_DFSRun(t *testing.T) {
	g := grid.MustParse(
		"S.#",
		".#.",
		"..E",
	)
	w, err := dfs.NewWalker(g, g.Start(), g.End())
	require.NoError(t, err)
	c := render.NewCanvas(g, g.Start(), g.End())
	for {
		ev := w.Step()
		c.Apply(ev)
		if ev.Terminal() {
			break
		}
	}
	assert.Equal(t, []string{"So#", "*#.", "**E"}, c.Lines())
}

func TestStatus(t *testing.T) {
	found := event.Found([]grid.Cell{grid.At(0, 0), grid.At(0, 1)})
	assert.Equal(t, "BFS: Path found! length 2", render.Status(session.BFS, found))
	assert.Equal(t, "DFS: No path found", render.Status(session.DFS, event.Event{Kind: event.Exhausted}))
	assert.Equal(t, "DFS: Cancelled", render.Status(session.DFS, event.Event{Kind: event.Cancelled}))
	assert.Equal(t, "BFS: frontier (1,2)",
		render.Status(session.BFS, event.Event{Kind: event.Frontier, Cell: grid.At(1, 2)}))
}
