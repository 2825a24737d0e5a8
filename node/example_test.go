// File: node/example_test.go
package node_test

import (
	"fmt"

	"github.com/katalvlaran/hydronet/component"
	"github.com/katalvlaran/hydronet/flux"
	"github.com/katalvlaran/hydronet/node"
)

// ExampleNode_GetOutput demonstrates the uniform convention: two units
// produce one flux each and the node blends them 25/75.
func ExampleNode_GetOutput() {
	fast := newUnitStub("fast", flux.Series{2.0})
	slow := newUnitStub("slow", flux.Series{3.0})

	n, _ := node.New("hillslope", 12.5, []component.Unit{fast, slow}, node.Uniform(0.25, 0.75))
	n.SetInput([]flux.Series{{1.0}})

	out, _ := n.GetOutput(true)
	fmt.Println(out)
	// Output:
	// [[2.75]]
}

// ExampleMasked demonstrates per-position routing: each unit feeds exactly
// one of the two output positions.
func ExampleMasked() {
	surface := newUnitStub("surface", flux.Series{5.0})
	baseflow := newUnitStub("baseflow", flux.Series{7.0})

	n, _ := node.New("junction", 3.0, []component.Unit{surface, baseflow}, node.Masked(
		[]node.Weight{node.Coef(1), node.Skip()},
		[]node.Weight{node.Skip(), node.Coef(1)},
	))
	n.SetInput([]flux.Series{{1.0}})

	out, _ := n.GetOutput(true)
	fmt.Println(out)
	// Output:
	// [[5] [7]]
}
