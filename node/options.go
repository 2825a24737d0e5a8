// SPDX-License-Identifier: MIT
package node

import "github.com/katalvlaran/hydronet/flux"

// RoutingFunc post-processes an aggregated flux set. Implementations may
// return the argument unchanged or a transformed replacement.
type RoutingFunc func([]flux.Series) []flux.Series

// identityRouting is the default for both routing stages.
func identityRouting(f []flux.Series) []flux.Series { return f }

// config collects constructor options before validation.
type config struct {
	shared     bool
	concurrent bool
	internal   RoutingFunc
	external   RoutingFunc
}

// defaultConfig returns the stock configuration: shared parameters,
// sequential unit solving, identity routing at both stages.
func defaultConfig() config {
	return config{shared: true, internal: identityRouting, external: identityRouting}
}

// Option configures a Node at construction time.
type Option func(*config)

// WithSharedParameters mounts units so their parameter storage stays common
// with the caller's originals (the default). State storage is forked and
// prefixed with the node id regardless of this policy.
func WithSharedParameters() Option {
	return func(c *config) { c.shared = true }
}

// WithOwnedParameters mounts fully independent unit copies and prefixes
// every parameter name with the node id, so the node calibrates alone.
func WithOwnedParameters() Option {
	return func(c *config) { c.shared = false }
}

// WithInternalRouting replaces the identity transform applied to the merged
// output before GetOutput returns it. Panics on nil r.
func WithInternalRouting(r RoutingFunc) Option {
	if r == nil {
		panic("node: WithInternalRouting requires a non-nil RoutingFunc")
	}

	return func(c *config) { c.internal = r }
}

// WithExternalRouting replaces the identity transform applied by
// ExternalRouting. Panics on nil r.
func WithExternalRouting(r RoutingFunc) Option {
	if r == nil {
		panic("node: WithExternalRouting requires a non-nil RoutingFunc")
	}

	return func(c *config) { c.external = r }
}

// WithConcurrentUnits solves mounted units in parallel goroutines during
// GetOutput. The merged result is identical to the sequential default; only
// wall time changes.
func WithConcurrentUnits() Option {
	return func(c *config) { c.concurrent = true }
}
