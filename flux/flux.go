// Package flux defines the numeric currency exchanged between hydrological
// components: the Series time-series type plus the small arithmetic surface
// the aggregation layer needs (cloning, scaling, in-place accumulation).
//
// A Series carries one value per simulation step. Units are domain-defined
// (typically mm per step); Series itself is unit-agnostic.
//
// Errors:
//
//	ErrLengthMismatch - element-wise accumulation over series of different lengths.
package flux

import "errors"

// ErrLengthMismatch indicates element-wise accumulation over series of different lengths.
var ErrLengthMismatch = errors.New("flux: series length mismatch")

// Series is a single flux time series: one sample per simulation step.
type Series []float64

// Clone returns an independent copy of s. A nil Series clones to nil.
// Complexity: O(n).
func (s Series) Clone() Series {
	if s == nil {
		return nil
	}
	out := make(Series, len(s))
	copy(out, s)

	return out
}

// Scaled returns a fresh Series holding s[k]*w for every sample k.
// Complexity: O(n).
func (s Series) Scaled(w float64) Series {
	out := make(Series, len(s))
	for k, v := range s {
		out[k] = v * w
	}

	return out
}

// AddScaled accumulates src[k]*w into s[k] in place.
// Returns ErrLengthMismatch when the two series differ in length.
// Complexity: O(n).
func (s Series) AddScaled(src Series, w float64) error {
	if len(s) != len(src) {
		return ErrLengthMismatch
	}
	for k, v := range src {
		s[k] += v * w
	}

	return nil
}

// CloneAll returns a deep copy of a series set: the outer slice and every
// inner Series are freshly allocated. Nil input yields nil.
// Complexity: O(total samples).
func CloneAll(set []Series) []Series {
	if set == nil {
		return nil
	}
	out := make([]Series, len(set))
	for i, s := range set {
		out[i] = s.Clone()
	}

	return out
}

// Zeros returns a Series of n zero samples.
func Zeros(n int) Series {
	return make(Series, n)
}
