// Package pipe provides the fluent wrapper over deferred collections.
//
// A Pipe is one immutable pipeline stage: it owns a deferred value and a
// resolution mode, and every operation returns a new stage depending only
// on its predecessor. Construction via From accepts anything, deferred or
// not, with no validation; an operation validates its settled input and
// callable, runs the mode-selected resolver, and surfaces any mismatch as
// a rejection of the new stage, never as an immediate error.
//
// Key operations:
// - From: wrap a value or deferred value as a parallel-mode pipeline
// - Map/ForEach/Filter/Find/FindIndex/Some/Every: drive a callable over
//   the collection
// - Serial/Parallel: force the mode of an equivalent pipeline
// - Promise/Await: consume the settled value outside the chain
package pipe
