package resolve

import (
	"sync"

	"github.com/ib-77/aseq/pkg/aseq"
	"github.com/ib-77/aseq/pkg/aseq/shape"
)

// Outcome is what one resolver run produces: the settled elements and the
// settled callable results, index-aligned with the source view, holes as
// aseq.Hole in both.
type Outcome struct {
	Elems   []any
	Results []any
}

// Combine settles every present slot of view concurrently and
// independently, then fulfills with the canonical []any form: same length,
// same hole pattern, same index-to-value mapping. The first slot to fail
// rejects the whole result; in-flight siblings are not cancelled and their
// eventual outcomes are discarded.
func Combine(view *shape.View) *aseq.Promise[[]any] {
	out := view.Raw()
	p, fulfill, reject := aseq.New[[]any]()

	var wg sync.WaitGroup
	for i := 0; i < view.Len(); i++ {
		el, ok := view.At(i)
		if !ok {
			continue
		}
		wg.Add(1)
		go func(i int, el any) {
			defer wg.Done()
			v, err := aseq.Await(el)
			if err != nil {
				reject(err)
				return
			}
			out[i] = v
		}(i, el)
	}
	go func() {
		wg.Wait()
		fulfill(out)
	}()
	return p
}

// Run drives fn over every present slot of view in the given mode. Absent
// slots never reach fn. The callable mismatch is the caller's to check;
// Run assumes fn is invocable.
func Run(view *shape.View, fn aseq.Callable, this any, mode aseq.Mode) *aseq.Promise[Outcome] {
	if mode == aseq.Serial {
		return serial(view, fn, this)
	}
	return parallel(view, fn, this)
}

// parallel resolves element, invocation and returned deferredness per slot
// concurrently, then assembles through Combine so the output order always
// matches index order no matter how completions interleave.
func parallel(view *shape.View, fn aseq.Callable, this any) *aseq.Promise[Outcome] {
	src := view.Raw()
	elems := view.Raw()

	calls := shape.NewView(view.Len())
	for i := 0; i < view.Len(); i++ {
		i := i
		el, ok := view.At(i)
		if !ok {
			continue
		}
		calls.Set(i, aseq.Go(func() (any, error) {
			v, err := aseq.Await(el)
			if err != nil {
				return nil, err
			}
			elems[i] = v
			r, err := fn(this, v, i, src)
			if err != nil {
				return nil, err
			}
			return aseq.Await(r)
		}))
	}

	return aseq.Go(func() (Outcome, error) {
		results, err := Combine(calls).Await()
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Elems: elems, Results: results}, nil
	})
}

// serial walks indices strictly ascending: slot i settles its element, its
// invocation and the invocation's returned deferredness before slot i+1
// starts. Suited to callables with ordering-sensitive side effects.
func serial(view *shape.View, fn aseq.Callable, this any) *aseq.Promise[Outcome] {
	src := view.Raw()

	return aseq.Go(func() (Outcome, error) {
		elems := view.Raw()
		results := view.Raw()
		for i := 0; i < view.Len(); i++ {
			el, ok := view.At(i)
			if !ok {
				continue
			}
			v, err := aseq.Await(el)
			if err != nil {
				return Outcome{}, err
			}
			elems[i] = v
			r, err := fn(this, v, i, src)
			if err != nil {
				return Outcome{}, err
			}
			if r, err = aseq.Await(r); err != nil {
				return Outcome{}, err
			}
			results[i] = r
		}
		return Outcome{Elems: elems, Results: results}, nil
	})
}
