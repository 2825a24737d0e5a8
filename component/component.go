// Package component declares the contract between the aggregation layer and
// the computational units it composes, together with the hierarchical
// addressing vocabulary (Path, Args) shared by every level of a model.
//
// A Unit is any runoff-producing component that accepts forcing input,
// produces output fluxes, exposes its internals for post-run inspection, and
// participates in the parameter/state namespace of the model it is mounted
// in. Node-level code consumes units exclusively through this interface.
//
// Errors:
//
//	ErrUnknownMember - a requested attribute or method does not exist.
package component

import (
	"errors"

	"github.com/katalvlaran/hydronet/flux"
)

// ErrUnknownMember indicates that a component has no attribute or method
// under the requested name. Resolvers at every hierarchy level wrap it with
// their own identity before surfacing it.
var ErrUnknownMember = errors.New("component: unknown attribute or method")

// Args carries the named arguments of a CallInternal invocation.
type Args map[string]any

// Unit is the capability contract required of every computational component
// mounted into a node.
//
// The two duplication forms replace ambient copy semantics with an explicit
// protocol: Duplicate forks everything, DuplicateShared keeps parameter
// storage common between original and copy while forking state storage.
// Mounting one unit into several nodes under a common calibration uses the
// shared form; independent calibration uses the exclusive one.
type Unit interface {
	// ID returns the unit identifier, unique within its node.
	ID() string

	// SetInput hands the forcing series to the unit. The unit owns the slice
	// it receives; callers pass a copy whenever aliasing matters.
	SetInput(in []flux.Series)

	// GetOutput produces the unit's output fluxes in the unit's own fixed
	// order. When solve is false the unit reuses its already computed
	// internal solution instead of running its solver again.
	GetOutput(solve bool) ([]flux.Series, error)

	// GetInternal resolves an attribute on the component addressed by path,
	// relative to the unit. A nil path addresses the unit itself. Unknown
	// targets report ErrUnknownMember.
	GetInternal(path Path, attribute string) (any, error)

	// CallInternal invokes a method on the component addressed by path,
	// relative to the unit. A nil path addresses the unit itself.
	CallInternal(path Path, method string, args Args) (any, error)

	// AddPrefixParameters prepends prefix to every parameter name owned by
	// the unit or its elements. Re-applying a present prefix is a no-op.
	AddPrefixParameters(prefix string)

	// AddPrefixStates prepends prefix to every state name owned by the unit
	// or its elements. Re-applying a present prefix is a no-op.
	AddPrefixStates(prefix string)

	// Duplicate returns a fully independent copy of the unit: parameter and
	// state storage are both forked.
	Duplicate() Unit

	// DuplicateShared returns a copy whose parameter storage is shared with
	// the receiver while state storage is forked.
	DuplicateShared() Unit
}
