// SPDX-License-Identifier: MIT
package node

import "errors"

// Sentinel errors for node construction and aggregation.
var (
	// ErrEmptyID indicates a node constructed without an identifier.
	ErrEmptyID = errors.New("node: id must be non-empty")

	// ErrNegativeArea indicates a negative net contributing area.
	ErrNegativeArea = errors.New("node: area must be non-negative")

	// ErrNoUnits indicates a node constructed without units.
	ErrNoUnits = errors.New("node: at least one unit is required")

	// ErrNilUnit indicates a nil entry in the unit list.
	ErrNilUnit = errors.New("node: nil unit")

	// ErrDuplicateUnitID indicates two mounted units carrying the same id.
	ErrDuplicateUnitID = errors.New("node: duplicate unit id")

	// ErrWeightCount indicates a weighting that does not carry exactly one
	// entry per unit.
	ErrWeightCount = errors.New("node: weighting must carry one entry per unit")

	// ErrBadWeight indicates a NaN or infinite weighting coefficient.
	ErrBadWeight = errors.New("node: weight coefficient must be finite")

	// ErrMaskShape indicates masked weighting rows of unequal lengths.
	ErrMaskShape = errors.New("node: masked weighting rows must share one length")

	// ErrNoInput indicates GetOutput was called before any SetInput.
	ErrNoInput = errors.New("node: no input set")

	// ErrOutputMismatch indicates a unit produced a different number of
	// output series than its weighting entry consumes.
	ErrOutputMismatch = errors.New("node: unit output count does not match weighting")

	// ErrUnknownComponent indicates an address that matches no mounted unit.
	ErrUnknownComponent = errors.New("node: unknown component")
)
