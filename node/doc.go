// Package node implements the aggregation vertex of a hydrological model
// network: a Node mounts several computational units over one spatial
// element, fans the forcing input out to each of them, and merges their
// output fluxes into a single weighted output.
//
// A Node encodes three pieces of catchment semantics:
//
//   - Weighted combination. Unit outputs merge under one of two mutually
//     exclusive conventions, fixed per node by its Weighting value.
//     Uniform(c0, c1, ...) scales every flux of unit i by c_i and sums
//     position-wise. Masked(row0, row1, ...) spells out, per unit and per
//     output position, whether the unit contributes there and with which
//     coefficient; each unit's outputs are consumed left to right across its
//     contributing positions only.
//
//   - Parameter ownership. Units are mounted either with shared parameter
//     storage (the default, so all nodes over the same units calibrate as
//     one) or as exclusive copies whose parameter names gain the node id as
//     prefix (independent calibration). State storage is forked and prefixed
//     in both policies, since per-timestep state is never meaningfully
//     shared between nodes.
//
//   - Hierarchical addressing. GetInternal and CallInternal resolve a typed
//     component.Path against the mounted units: the longest path prefix
//     matching a unit id selects the unit, a three-segment address descends
//     into the unit's elements, anything else targets the unit itself.
//
// # API
//
// Construction validates all invariants up front and reports every
// violation in one error:
//
//	n, err := node.New("hillslope", 12.5,
//	    []component.Unit{fast, slow},
//	    node.Uniform(0.65, 0.35),
//	    node.WithOwnedParameters(),
//	)
//
// Per timestep, hand the forcing to the node and solve:
//
//	n.SetInput([]flux.Series{rain, pet})
//	out, err := n.GetOutput(true)
//
// A Node is deliberately not copyable: it identifies one vertex of a model
// network, and a copy would silently fork or alias unit state. Mount the
// same units into a second New call instead.
//
// # Errors
//
//	ErrEmptyID, ErrNegativeArea, ErrNoUnits, ErrNilUnit, ErrDuplicateUnitID,
//	ErrWeightCount, ErrBadWeight, ErrMaskShape - construction violations,
//	aggregated so one error reports them all.
//	ErrNoInput        - GetOutput before any SetInput.
//	ErrOutputMismatch - a unit produced a different number of output series
//	                    than its weighting entry consumes.
//	ErrUnknownComponent - an address matching no mounted unit.
//
// # Integration
//
//   - Consumes units through github.com/katalvlaran/hydronet/component.
//   - Exchanges series through github.com/katalvlaran/hydronet/flux.
//   - Network layers drive AddPrefixParameters, AddPrefixStates and
//     ExternalRouting; nothing in this package depends on them.
package node
