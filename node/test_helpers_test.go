package node_test

import (
	"fmt"

	"github.com/katalvlaran/hydronet/component"
	"github.com/katalvlaran/hydronet/flux"
)

// callRecord is one GetInternal/CallInternal delivery observed by a stub.
type callRecord struct {
	path   component.Path
	member string
}

// unitStub is a minimal component.Unit for node tests: it returns pre-canned
// output series, records every input and resolution call it receives, and
// keeps parameters and states in plain maps so prefixing and sharing
// semantics stay observable.
type unitStub struct {
	id  string
	out []flux.Series
	err error

	params map[string]float64
	states map[string]float64

	gotInput [][]flux.Series // every SetInput payload, in call order
	solved   []bool          // every GetOutput solve flag, in call order
	resolved []callRecord    // every GetInternal/CallInternal delivery

	// copies collects every stub handed out by Duplicate/DuplicateShared,
	// in call order, so tests can reach the instances a node mounted.
	copies []*unitStub

	// quiet drops call recording so benchmark iterations do not grow
	// fixture memory.
	quiet bool
}

func newUnitStub(id string, out ...flux.Series) *unitStub {
	return &unitStub{
		id:     id,
		out:    out,
		params: make(map[string]float64),
		states: make(map[string]float64),
	}
}

func (u *unitStub) ID() string { return u.id }

func (u *unitStub) SetInput(in []flux.Series) {
	if u.quiet {
		return
	}
	u.gotInput = append(u.gotInput, in)
}

func (u *unitStub) GetOutput(solve bool) ([]flux.Series, error) {
	if !u.quiet {
		u.solved = append(u.solved, solve)
	}
	if u.err != nil {
		return nil, u.err
	}

	return flux.CloneAll(u.out), nil
}

// GetInternal serves members from the parameter and state maps. An element
// address is faked by flattening path and attribute into one map key.
func (u *unitStub) GetInternal(path component.Path, attribute string) (any, error) {
	u.resolved = append(u.resolved, callRecord{path: path, member: attribute})
	key := attribute
	if len(path) > 0 {
		key = path.String() + component.Separator + attribute
	}
	if v, ok := u.params[key]; ok {
		return v, nil
	}
	if v, ok := u.states[key]; ok {
		return v, nil
	}

	return nil, fmt.Errorf("unit %q: %q: %w", u.id, key, component.ErrUnknownMember)
}

// CallInternal understands a single method, "scale", which multiplies every
// parameter by args["factor"] and returns the number of parameters touched.
func (u *unitStub) CallInternal(path component.Path, method string, args component.Args) (any, error) {
	u.resolved = append(u.resolved, callRecord{path: path, member: method})
	if method != "scale" {
		return nil, fmt.Errorf("unit %q: %q: %w", u.id, method, component.ErrUnknownMember)
	}
	factor, ok := args["factor"].(float64)
	if !ok {
		return nil, fmt.Errorf("unit %q: scale: factor argument missing", u.id)
	}
	for k := range u.params {
		u.params[k] *= factor
	}

	return len(u.params), nil
}

func (u *unitStub) AddPrefixParameters(prefix string) { applyPrefix(u.params, prefix) }

func (u *unitStub) AddPrefixStates(prefix string) { applyPrefix(u.states, prefix) }

// Duplicate forks parameters and states.
func (u *unitStub) Duplicate() component.Unit {
	d := newUnitStub(u.id, u.out...)
	d.err = u.err
	d.quiet = u.quiet
	for k, v := range u.params {
		d.params[k] = v
	}
	for k, v := range u.states {
		d.states[k] = v
	}
	u.copies = append(u.copies, d)

	return d
}

// DuplicateShared shares the parameter map and forks the state map.
func (u *unitStub) DuplicateShared() component.Unit {
	d := &unitStub{
		id:     u.id,
		out:    u.out,
		err:    u.err,
		params: u.params,
		states: make(map[string]float64, len(u.states)),
		quiet:  u.quiet,
	}
	for k, v := range u.states {
		d.states[k] = v
	}
	u.copies = append(u.copies, d)

	return d
}

// String gives the node description branch some per-unit content.
func (u *unitStub) String() string {
	return fmt.Sprintf("stub %s\n%d params", u.id, len(u.params))
}

// applyPrefix rewrites every key of m in place with the prefix applied once,
// preserving the map identity shared copies rely on.
func applyPrefix(m map[string]float64, prefix string) {
	renamed := make(map[string]float64, len(m))
	for k, v := range m {
		renamed[component.Prefixed(prefix, k)] = v
	}
	for k := range m {
		delete(m, k)
	}
	for k, v := range renamed {
		m[k] = v
	}
}
