// SPDX-License-Identifier: MIT
package node

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/katalvlaran/hydronet/component"
	"github.com/katalvlaran/hydronet/flux"
	"golang.org/x/sync/errgroup"
)

// noCopy flags by-value copies of Node under `go vet -copylocks`.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Node aggregates several computational units over one spatial element of a
// model network: it fans the forcing input out to every unit, collects their
// output fluxes, and merges them according to its Weighting.
//
// A Node is built once by New and never copied; it identifies one network
// vertex, and a copy would silently fork or alias unit state. Its unit set
// is fixed for life and the id-prefixing of parameter and state names
// happens exactly once, at construction.
//
// Concurrency: a Node is not safe for concurrent use. One simulation
// timeline drives SetInput and GetOutput in order.
type Node struct {
	noCopy noCopy

	id   string
	area float64

	units   []component.Unit
	pointer map[string]int // unit id -> index into units
	weights Weighting
	shared  bool

	input []flux.Series // last forcing handed to SetInput, nil until then

	internalRouting RoutingFunc
	externalRouting RoutingFunc
	concurrent      bool
}

// New assembles a Node from its units and weighting.
//
// Mounting policy, chosen by the WithSharedParameters/WithOwnedParameters
// option pair:
//   - shared (default): each unit is mounted through DuplicateShared, so its
//     parameter storage stays common with the caller's original while its
//     state storage is forked for this node.
//   - owned: each unit is mounted through Duplicate and every parameter name
//     gains the "<id>_" prefix, decoupling this node's calibration.
//
// State names always gain the "<id>_" prefix: states are per-node under both
// policies.
//
// All invariants are checked up front and every violation is reported in one
// error; errors.Is recognizes each individual sentinel.
// Complexity: O(U · cost(duplicate)) time.
func New(id string, area float64, units []component.Unit, weights Weighting, opts ...Option) (*Node, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(id, area, units, weights); err != nil {
		return nil, fmt.Errorf("node.New(%q): %w", id, err)
	}

	n := &Node{
		id:              id,
		area:            area,
		units:           make([]component.Unit, len(units)),
		pointer:         make(map[string]int, len(units)),
		weights:         weights,
		shared:          cfg.shared,
		internalRouting: cfg.internal,
		externalRouting: cfg.external,
		concurrent:      cfg.concurrent,
	}
	for i, u := range units {
		if cfg.shared {
			n.units[i] = u.DuplicateShared()
		} else {
			n.units[i] = u.Duplicate()
			n.units[i].AddPrefixParameters(id)
		}
		n.units[i].AddPrefixStates(id)
		n.pointer[n.units[i].ID()] = i
	}

	return n, nil
}

// validate reports every constraint violation of the constructor arguments
// in one aggregated error, nil when all hold.
func validate(id string, area float64, units []component.Unit, weights Weighting) error {
	var verr *multierror.Error
	if id == "" {
		verr = multierror.Append(verr, ErrEmptyID)
	}
	if area < 0 {
		verr = multierror.Append(verr, fmt.Errorf("%w: %v", ErrNegativeArea, area))
	}
	if len(units) == 0 {
		verr = multierror.Append(verr, ErrNoUnits)
	} else {
		seen := make(map[string]struct{}, len(units))
		for i, u := range units {
			if u == nil {
				verr = multierror.Append(verr, fmt.Errorf("%w: position %d", ErrNilUnit, i))
				continue
			}
			if _, dup := seen[u.ID()]; dup {
				verr = multierror.Append(verr, fmt.Errorf("%w: %q", ErrDuplicateUnitID, u.ID()))
			}
			seen[u.ID()] = struct{}{}
		}
	}
	if got := weights.entries(); got != len(units) {
		verr = multierror.Append(verr, fmt.Errorf("%w: %d entries for %d units", ErrWeightCount, got, len(units)))
	}
	verr = multierror.Append(verr, weights.validate()...)

	return verr.ErrorOrNil()
}

// ID returns the node identifier.
func (n *Node) ID() string { return n.id }

// Area returns the net contributing area of the node, excluding the area of
// any upstream nodes.
func (n *Node) Area() float64 { return n.area }

// SetInput hands the forcing series (typically precipitation and potential
// evapotranspiration) to the node. The slice is stored as-is: every unit
// receives its own deep copy at GetOutput time, so units never alias the
// caller's data, while the caller may still rewrite the slice contents
// between SetInput and GetOutput. Complexity: O(1).
func (n *Node) SetInput(in []flux.Series) {
	n.input = in
}

// GetOutput solves every mounted unit over the current input, merges their
// output fluxes according to the node's Weighting, and applies the internal
// routing hook to the merged result.
//
// When solve is false, units reuse their already computed internal solution
// (states untouched) instead of running their solvers again.
//
// Each unit receives an independent deep copy of the node input. Units run
// sequentially unless the node was built WithConcurrentUnits; the merge
// consumes outputs in mounting order either way, so the result is
// identical. A failing unit aborts the whole call.
//
// Returns ErrNoInput before any SetInput, ErrOutputMismatch when a unit's
// output count disagrees with the weighting, and flux.ErrLengthMismatch when
// series lengths disagree between units.
// Complexity: O(U·cost(unit) + U·J·T) time for U units, J output positions
// and series length T.
func (n *Node) GetOutput(solve bool) ([]flux.Series, error) {
	if n.input == nil {
		return nil, fmt.Errorf("node %q: %w", n.id, ErrNoInput)
	}
	outs, err := n.solveUnits(solve)
	if err != nil {
		return nil, err
	}
	merged, err := n.combine(outs)
	if err != nil {
		return nil, err
	}

	return n.internalRouting(merged), nil
}

// solveUnits feeds every unit a private copy of the node input and collects
// their outputs in mounting order.
func (n *Node) solveUnits(solve bool) ([][]flux.Series, error) {
	outs := make([][]flux.Series, len(n.units))

	if !n.concurrent {
		for _, u := range n.units {
			u.SetInput(flux.CloneAll(n.input))
		}
		for i, u := range n.units {
			out, err := u.GetOutput(solve)
			if err != nil {
				return nil, fmt.Errorf("node %q: unit %q: %w", n.id, u.ID(), err)
			}
			outs[i] = out
		}

		return outs, nil
	}

	var eg errgroup.Group
	for i, u := range n.units {
		eg.Go(func() error {
			u.SetInput(flux.CloneAll(n.input))
			out, err := u.GetOutput(solve)
			if err != nil {
				return fmt.Errorf("node %q: unit %q: %w", n.id, u.ID(), err)
			}
			outs[i] = out

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return outs, nil
}

// combine merges the per-unit outputs into the node output according to the
// weighting convention.
func (n *Node) combine(outs [][]flux.Series) ([]flux.Series, error) {
	if n.weights.IsMasked() {
		return n.combineMasked(outs)
	}

	return n.combineUniform(outs)
}

// combineUniform sums w_i * o_i[k] over all units i for every output
// position k. The first unit's scaled output initializes the accumulator;
// every unit must produce the same number of series.
func (n *Node) combineUniform(outs [][]flux.Series) ([]flux.Series, error) {
	width := len(outs[0])
	var merged []flux.Series
	for i, out := range outs {
		if len(out) != width {
			return nil, fmt.Errorf("node %q: unit %q produced %d series, want %d: %w",
				n.id, n.units[i].ID(), len(out), width, ErrOutputMismatch)
		}
		if i == 0 {
			merged = make([]flux.Series, width)
			for k, s := range out {
				merged[k] = s.Scaled(n.weights.uniform[0])
			}
			continue
		}
		for k, s := range out {
			if err := merged[k].AddScaled(s, n.weights.uniform[i]); err != nil {
				return nil, fmt.Errorf("node %q: output %d of unit %q: %w", n.id, k, n.units[i].ID(), err)
			}
		}
	}

	return merged, nil
}

// combineMasked consumes unit i's output series left to right across the
// non-skip positions of mask row i. The first contribution at a position
// initializes it; positions no unit contributes to come back as all-zero
// series of the merge's common sample length.
func (n *Node) combineMasked(outs [][]flux.Series) ([]flux.Series, error) {
	merged := make([]flux.Series, len(n.weights.masked[0]))
	for i, out := range outs {
		row := n.weights.masked[i]
		if want := contributing(row); len(out) != want {
			return nil, fmt.Errorf("node %q: unit %q produced %d series, weighting row consumes %d: %w",
				n.id, n.units[i].ID(), len(out), want, ErrOutputMismatch)
		}
		next := 0 // index of the unit's next unconsumed series
		for j, entry := range row {
			if entry.skip {
				continue
			}
			s := out[next]
			next++
			if merged[j] == nil {
				merged[j] = s.Scaled(entry.coef)
				continue
			}
			if err := merged[j].AddScaled(s, entry.coef); err != nil {
				return nil, fmt.Errorf("node %q: output %d of unit %q: %w", n.id, j, n.units[i].ID(), err)
			}
		}
	}

	zeroLen := 0
	for _, s := range merged {
		if s != nil {
			zeroLen = len(s)
			break
		}
	}
	for j, s := range merged {
		if s == nil {
			merged[j] = flux.Zeros(zeroLen)
		}
	}

	return merged, nil
}

// ExternalRouting applies the node's external routing hook to fluxes leaving
// the node toward the network. The default hook returns f unchanged; network
// layers call this on a node's combined output before feeding it downstream.
func (n *Node) ExternalRouting(f []flux.Series) []flux.Series {
	return n.externalRouting(f)
}

// AddPrefixParameters forwards prefix to every mounted unit, prepending it
// to all parameter names under this node. Network layers use it to namespace
// whole nodes; New already applied the node id where the mounting policy
// demands it.
func (n *Node) AddPrefixParameters(prefix string) {
	for _, u := range n.units {
		u.AddPrefixParameters(prefix)
	}
}

// AddPrefixStates forwards prefix to every mounted unit, prepending it to
// all state names under this node.
func (n *Node) AddPrefixStates(prefix string) {
	for _, u := range n.units {
		u.AddPrefixStates(prefix)
	}
}
