// Package hydronet is a building block for component-based rainfall-runoff
// models: it aggregates the outputs of independent runoff units into the
// weighted outflow of a catchment node and addresses everything mounted
// below a node by hierarchical name.
//
// What hydronet gives you:
//
//   - Weighted flux combination: uniform scalar blending or per-position
//     masked routing, validated hard at construction and at merge time
//   - Parameter ownership policies: shared calibration across nodes or
//     exclusive per-node copies, with automatic name prefixing
//   - Hierarchical addressing: inspect or invoke any unit or nested element
//     through a typed path, without reflection
//   - Routing hooks: identity by default, replaceable per node for internal
//     and network-facing (external) routing
//   - Optional concurrent unit solving with deterministic merging
//
// Everything is organized under three subpackages:
//
//	flux/      - the Series time-series type and its merge arithmetic
//	component/ - the Unit capability contract, Path addressing, Args
//	node/      - the aggregation vertex: construction, GetOutput, addressing
//
// Quick sketch:
//
//	rain, pet ──► node ──► fast unit ─┐
//	                  └──► slow unit ─┴─ weighted merge ─ routing ─ outflow
//
// Units are consumed through the component.Unit interface; any runoff model
// satisfying it can be mounted. See node/doc.go and the examples/ program
// for end-to-end usage.
//
//	go get github.com/katalvlaran/hydronet
package hydronet
