package pipe

import (
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/aseq/pkg/aseq"
	"github.com/ib-77/aseq/pkg/aseq/resolve"
	"github.com/ib-77/aseq/pkg/aseq/shape"
)

// Pipe is one stage of a deferred-collection pipeline: a deferred value
// plus the resolution mode its operations run under. Stages are immutable
// once constructed; chaining builds a linear, non-cyclic dependency chain
// where each stage consumes only its immediate predecessor.
type Pipe struct {
	id        uuid.UUID
	createdAt time.Time
	mode      aseq.Mode
	p         *aseq.Promise[any]
}

// From wraps any value, including a deferred value settling to a
// collection, in a parallel-mode pipeline. Nothing is validated here: an
// ineligible value only rejects once an operation needs it.
func From(v any) *Pipe {
	return wrap(aseq.Lift(v), aseq.Parallel)
}

func wrap(p *aseq.Promise[any], mode aseq.Mode) *Pipe {
	return &Pipe{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		mode:      mode,
		p:         p,
	}
}

// Promise exposes the stage's settled value as a plain deferred value for
// non-chained consumption.
func (pp *Pipe) Promise() *aseq.Promise[any] {
	return pp.p
}

// Await settles the stage.
func (pp *Pipe) Await() (any, error) {
	return pp.p.Await()
}

func (pp *Pipe) Mode() aseq.Mode {
	return pp.mode
}

// Serial returns an equivalent pipeline with the mode forced to Serial.
// Already produced stages keep the mode they were built with.
func (pp *Pipe) Serial() *Pipe {
	return wrap(pp.p, aseq.Serial)
}

// Parallel returns an equivalent pipeline with the mode forced to
// Parallel.
func (pp *Pipe) Parallel() *Pipe {
	return wrap(pp.p, aseq.Parallel)
}

func (pp *Pipe) Id() uuid.UUID {
	return pp.id
}

func (pp *Pipe) CreatedAt() time.Time {
	return pp.createdAt
}

// stage chains one operation: settle the predecessor, classify and
// normalize its value, check the callable, run the mode's resolver, let
// assemble shape the final value. A rejected input short-circuits before
// the classifier runs and merely forwards the rejection.
func (pp *Pipe) stage(op operation, fn aseq.Callable, this []any,
	assemble func(resolve.Outcome) any) *Pipe {

	mode := pp.mode
	prev := pp.p
	ctx := invocationContext(this)

	return wrap(aseq.Go(func() (any, error) {
		in, err := prev.Await()
		if err != nil {
			return nil, err
		}
		view, ok := shape.Normalize(in)
		if !ok {
			return nil, aseq.ShapeError(op.name, in, op.text)
		}
		if fn == nil {
			return nil, aseq.CallableError(fn)
		}
		out, err := resolve.Run(view, fn, ctx, mode).Await()
		if err != nil {
			return nil, err
		}
		return assemble(out), nil
	}), mode)
}

// invocationContext picks the optional this argument; the engine passes it
// by reference to every invocation and never touches it.
func invocationContext(this []any) any {
	if len(this) == 0 {
		return nil
	}
	return this[0]
}
