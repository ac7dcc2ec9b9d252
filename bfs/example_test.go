package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/randwalk/bfs"
	"github.com/katalvlaran/randwalk/builder"
)

// ExampleBFS demonstrates BFS layering on a 3×3 lattice numbered row by row.
func ExampleBFS() {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(3, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bfs.BFS(g, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println(res.Depth[9])
	// Output:
	// [1 2 4 3 5 7 6 8 9]
	// 4
}
