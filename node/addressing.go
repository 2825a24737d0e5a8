// SPDX-License-Identifier: MIT
package node

import (
	"fmt"

	"github.com/katalvlaran/hydronet/component"
)

// elementPathLen is the segment count of a fully qualified element address,
// "<unit>_<element>_<member>". Addresses of any other length resolve to a
// member of the unit itself.
const elementPathLen = 3

// GetInternal resolves an attribute on a component owned by the node, for
// post-run inspection.
//
// The path selects a mounted unit by id; unit ids may themselves contain the
// separator, so the longest matching prefix wins. A three-segment path
// addresses an element nested inside the unit and forwards the unresolved
// remainder of the path to the unit's own resolver; any other length
// addresses the attribute on the unit itself.
//
// An address matching no unit reports ErrUnknownComponent; a missing
// attribute surfaces the unit's component.ErrUnknownMember. Both carry the
// node id and the requested name.
func (n *Node) GetInternal(path component.Path, attribute string) (any, error) {
	u, sub, err := n.resolve(path)
	if err != nil {
		return nil, err
	}
	v, err := u.GetInternal(sub, attribute)
	if err != nil {
		return nil, fmt.Errorf("node %q: attribute %q: %w", n.id, attribute, err)
	}

	return v, nil
}

// CallInternal invokes a method on a component owned by the node, with named
// arguments. Address resolution follows GetInternal.
func (n *Node) CallInternal(path component.Path, method string, args component.Args) (any, error) {
	u, sub, err := n.resolve(path)
	if err != nil {
		return nil, err
	}
	v, err := u.CallInternal(sub, method, args)
	if err != nil {
		return nil, fmt.Errorf("node %q: method %q: %w", n.id, method, err)
	}

	return v, nil
}

// resolve selects the addressed unit and the sub-path to forward to it: the
// path remainder for a full element address, nil when the target is the
// unit itself.
func (n *Node) resolve(path component.Path) (component.Unit, component.Path, error) {
	u, consumed, ok := n.findUnit(path)
	if !ok {
		return nil, nil, fmt.Errorf("node %q: component %q: %w", n.id, path.String(), ErrUnknownComponent)
	}
	var sub component.Path
	if len(path) == elementPathLen && consumed < len(path) {
		sub = path[consumed:]
	}

	return u, sub, nil
}

// findUnit selects the mounted unit whose id equals the longest joinable
// prefix of path, returning it with the number of consumed segments.
// Complexity: O(len(path)) pointer lookups.
func (n *Node) findUnit(path component.Path) (component.Unit, int, bool) {
	for end := len(path); end > 0; end-- {
		if idx, ok := n.pointer[path[:end].String()]; ok {
			return n.units[idx], end, true
		}
	}

	return nil, 0, false
}
