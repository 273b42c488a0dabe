package pipe

import (
	"github.com/ib-77/aseq/pkg/aseq"
	"github.com/ib-77/aseq/pkg/aseq/resolve"
)

// operation describes one exposed entry point. The table is built once at
// startup and never mutated; text reports whether the operation accepts
// text sequences, which decides the shapes its rejection message names.
type operation struct {
	name string
	text bool
}

var operations = map[string]operation{
	"map":       {name: "map", text: true},
	"forEach":   {name: "forEach", text: true},
	"filter":    {name: "filter", text: true},
	"find":      {name: "find", text: true},
	"findIndex": {name: "findIndex", text: true},
	"some":      {name: "some", text: true},
	"every":     {name: "every", text: true},
}

// Map transforms every present element through fn. Length and hole
// pattern carry over to the output untouched.
func (pp *Pipe) Map(fn aseq.Callable, this ...any) *Pipe {
	return pp.stage(operations["map"], fn, this, func(out resolve.Outcome) any {
		return out.Results
	})
}

// ForEach runs fn for every present element and settles to aseq.Undefined
// once every invocation has settled.
func (pp *Pipe) ForEach(fn aseq.Callable, this ...any) *Pipe {
	return pp.stage(operations["forEach"], fn, this, func(resolve.Outcome) any {
		return aseq.Undefined
	})
}

// Filter keeps the settled elements whose callable result is truthy. The
// output is dense: holes never make it through.
func (pp *Pipe) Filter(fn aseq.Callable, this ...any) *Pipe {
	return pp.stage(operations["filter"], fn, this, func(out resolve.Outcome) any {
		kept := make([]any, 0, len(out.Elems))
		for i, r := range out.Results {
			if out.Elems[i] == aseq.Hole {
				continue
			}
			if aseq.Truthy(r) {
				kept = append(kept, out.Elems[i])
			}
		}
		return kept
	})
}

// Find settles to the first present element, in index order, whose
// callable result is truthy, or aseq.Undefined when none is.
func (pp *Pipe) Find(fn aseq.Callable, this ...any) *Pipe {
	return pp.stage(operations["find"], fn, this, func(out resolve.Outcome) any {
		for i, r := range out.Results {
			if out.Elems[i] != aseq.Hole && aseq.Truthy(r) {
				return out.Elems[i]
			}
		}
		return aseq.Undefined
	})
}

// FindIndex settles to the index of the first present element whose
// callable result is truthy, or -1.
func (pp *Pipe) FindIndex(fn aseq.Callable, this ...any) *Pipe {
	return pp.stage(operations["findIndex"], fn, this, func(out resolve.Outcome) any {
		for i, r := range out.Results {
			if out.Elems[i] != aseq.Hole && aseq.Truthy(r) {
				return i
			}
		}
		return -1
	})
}

// Some settles to true when any present element's callable result is
// truthy.
func (pp *Pipe) Some(fn aseq.Callable, this ...any) *Pipe {
	return pp.stage(operations["some"], fn, this, func(out resolve.Outcome) any {
		for i, r := range out.Results {
			if out.Elems[i] != aseq.Hole && aseq.Truthy(r) {
				return true
			}
		}
		return false
	})
}

// Every settles to true when every present element's callable result is
// truthy. Holes do not count against it.
func (pp *Pipe) Every(fn aseq.Callable, this ...any) *Pipe {
	return pp.stage(operations["every"], fn, this, func(out resolve.Outcome) any {
		for i, r := range out.Results {
			if out.Elems[i] != aseq.Hole && !aseq.Truthy(r) {
				return false
			}
		}
		return true
	})
}
