package aseq

// Callable is the per-element function an operation drives. this is the
// invocation context shared by reference across all invocations of one
// call (the engine never mutates it), value is the settled element, index
// the slot position, and src the normalized but still unresolved source
// collection with holes as Hole. A deferred return value is settled before
// it counts as the invocation's result.
type Callable func(this, value any, index int, src []any) (any, error)
