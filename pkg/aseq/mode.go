package aseq

// Mode selects how a resolver walks a view's present slots. It is fixed
// per pipeline stage and inherited by derived stages until switched.
type Mode int

const (
	// Parallel settles and invokes every present slot concurrently.
	// Output order still follows index order; only completion order is
	// unconstrained.
	Parallel Mode = iota

	// Serial fully settles slot i (element, invocation, returned
	// deferred value) before slot i+1 starts.
	Serial
)

func (m Mode) String() string {
	if m == Serial {
		return "serial"
	}
	return "parallel"
}
