// Package aseq contains the core vocabulary of the deferred-collection
// pipeline: the Promise[T] deferred value, the resolution Mode, the Hole
// and Undefined sentinels, value coercion, and the TypeError raised for
// ineligible inputs and missing callables.
//
// Highlights:
// - Go/Resolve/Reject/New: construct Promise[T]
// - Await (method and package function): settle deferred values, flattening
//   nested deferredness at the package level
// - Lift: wrap an arbitrary value as a Promise[any]
// - Hole/Undefined: absent slot vs present "no value"
// - Display/Truthy: default string and predicate coercion
// - ShapeError/CallableError: the two TypeError forms
//
// The collection machinery itself lives in the shape, resolve and pipe
// subpackages.
package aseq
