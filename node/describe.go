// SPDX-License-Identifier: MIT
package node

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
)

// String renders a multi-line summary of the node: its id and area, the
// mounted units, and the weighting. Units implementing fmt.Stringer
// contribute their own description line by line under their branch.
func (n *Node) String() string {
	tree := treeprint.NewWithRoot(fmt.Sprintf("node %q (area %g)", n.id, n.area))

	units := tree.AddBranch("units")
	for _, u := range n.units {
		branch := units.AddBranch(u.ID())
		s, ok := u.(fmt.Stringer)
		if !ok {
			continue
		}
		for _, line := range strings.Split(strings.TrimRight(s.String(), "\n"), "\n") {
			branch.AddNode(line)
		}
	}
	tree.AddNode("weights " + n.weights.String())

	return tree.String()
}
