package aseq

import "fmt"

// TypeError reports a value that does not fit the shape an operation
// requires: an ineligible collection input, or a callable that cannot be
// invoked. It always travels as the rejection of a stage's promise, never
// as a panic or an immediate return from the chaining call.
type TypeError struct {
	Op       string
	Received any
	msg      string
}

func (e *TypeError) Error() string {
	return e.msg
}

// ShapeError builds the rejection for an input that is not an eligible
// collection. withText reports whether op also accepts text sequences,
// which decides the shapes named by the message.
func ShapeError(op string, received any, withText bool) *TypeError {
	shapes := "an Array or array-like Object"
	if withText {
		shapes = "an Array, String, or array-like Object"
	}
	return &TypeError{
		Op:       op,
		Received: received,
		msg:      fmt.Sprintf("%s cannot be called on %s, only on %s", op, Display(received), shapes),
	}
}

// CallableError builds the rejection for a callable that cannot be
// invoked. A nil callable renders as "undefined".
func CallableError(fn any) *TypeError {
	d := "undefined"
	if !IsNil(fn) {
		d = Display(fn)
	}
	return &TypeError{
		Received: fn,
		msg:      fmt.Sprintf("%s is not a function", d),
	}
}

// NewTypeError builds a TypeError with a caller-supplied message, for
// callables that reject with the same kind the engine uses.
func NewTypeError(msg string) *TypeError {
	return &TypeError{msg: msg}
}
