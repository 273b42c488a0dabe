// Package resolve drives callables over a normalized View and assembles
// the settled output.
//
// Combine is the hole-aware combinator: it settles every present slot
// concurrently, keeps absent slots absent, and rejects with the first
// failure while in-flight siblings keep running unobserved.
//
// Run executes one resolver pass in the requested aseq.Mode. Parallel
// settles and invokes all present slots concurrently and assembles through
// Combine; Serial walks indices in strictly ascending order, one slot
// fully settled before the next starts.
package resolve
