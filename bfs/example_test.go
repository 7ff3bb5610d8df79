package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/bfs"
	"github.com/katalvlaran/gridwalk/grid"
)

// ExampleWalker_Step demonstrates BFS layering around a wall. The frontier
// grows one layer at a time and the reported path is a shortest one.
//
//	S . #
//	. # .
//	. . E
func ExampleWalker_Step() {
	g := grid.MustParse(
		"S.#",
		".#.",
		"..E",
	)
	w, err := bfs.NewWalker(g, g.Start(), g.End())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for {
		ev := w.Step()
		fmt.Println(ev)
		if ev.Terminal() {
			break
		}
	}
	// Output:
	// #1 frontier (0,1) depth=1
	// #2 frontier (1,0) depth=1
	// #3 visiting (0,1) depth=1
	// #4 visiting (1,0) depth=1
	// #5 frontier (2,0) depth=2
	// #6 visiting (2,0) depth=2
	// #7 frontier (2,1) depth=3
	// #8 visiting (2,1) depth=3
	// #9 path_found len=5 [(0,0) (1,0) (2,0) (2,1) (2,2)]
}
