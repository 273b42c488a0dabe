package shape

import "github.com/ib-77/aseq/pkg/aseq"

// Slot is one position of a View: absent (a hole) or present with a value
// that may itself be deferred.
type Slot struct {
	Present bool
	Value   any
}

// View is the uniform indexable form every eligible collection normalizes
// into. Length is fixed at construction; a View is built once per
// operation call and consumed by exactly one resolver run.
type View struct {
	slots []Slot
}

// NewView returns a View of n absent slots.
func NewView(n int) *View {
	return &View{slots: make([]Slot, n)}
}

func (v *View) Len() int {
	return len(v.slots)
}

// At returns the value at i and whether the slot is present.
func (v *View) At(i int) (any, bool) {
	s := v.slots[i]
	return s.Value, s.Present
}

// Set marks slot i present with value.
func (v *View) Set(i int, value any) {
	v.slots[i] = Slot{Present: true, Value: value}
}

// Raw materializes the slots as the canonical []any form, holes as
// aseq.Hole, without settling anything.
func (v *View) Raw() []any {
	out := make([]any, len(v.slots))
	for i, s := range v.slots {
		if s.Present {
			out[i] = s.Value
		} else {
			out[i] = aseq.Hole
		}
	}
	return out
}
