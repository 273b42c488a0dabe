package aseq

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Promise is a deferred value. It settles exactly once, either fulfilled
// with a value or rejected with an error, and every settlement observer
// sees the same outcome. A settled promise is terminal: there are no
// retries and no re-settlement.
type Promise[T any] struct {
	id        uuid.UUID
	createdAt time.Time

	once  sync.Once
	done  chan struct{}
	value T
	err   error
}

func newPromise[T any]() *Promise[T] {
	return &Promise[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		done:      make(chan struct{}),
	}
}

// Go runs fn in its own goroutine and returns a Promise for its outcome.
// The goroutine starts immediately.
func Go[T any](fn func() (T, error)) *Promise[T] {
	p := newPromise[T]()
	go func() {
		v, err := fn()
		if err != nil {
			p.reject(err)
			return
		}
		p.fulfill(v)
	}()
	return p
}

// Resolve returns an already fulfilled Promise.
func Resolve[T any](v T) *Promise[T] {
	p := newPromise[T]()
	p.fulfill(v)
	return p
}

// Reject returns an already rejected Promise.
func Reject[T any](err error) *Promise[T] {
	p := newPromise[T]()
	p.reject(err)
	return p
}

// New returns an unsettled Promise together with its fulfill and reject
// functions. Whichever is called first wins; later calls are ignored.
func New[T any]() (p *Promise[T], fulfill func(T), reject func(error)) {
	p = newPromise[T]()
	return p, p.fulfill, p.reject
}

func (p *Promise[T]) fulfill(v T) {
	p.once.Do(func() {
		p.value = v
		close(p.done)
	})
}

func (p *Promise[T]) reject(err error) {
	p.once.Do(func() {
		p.err = err
		close(p.done)
	})
}

// Await blocks until the promise settles. Safe to call any number of
// times; every call returns the same outcome.
func (p *Promise[T]) Await() (T, error) {
	<-p.done
	return p.value, p.err
}

// Done is closed once the promise has settled.
func (p *Promise[T]) Done() <-chan struct{} {
	return p.done
}

// Settled reports whether the promise has settled, without blocking.
func (p *Promise[T]) Settled() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Settle implements Awaitable for dynamically typed consumers.
func (p *Promise[T]) Settle() (any, error) {
	v, err := p.Await()
	return v, err
}

func (p *Promise[T]) Id() uuid.UUID {
	return p.id
}

func (p *Promise[T]) CreatedAt() time.Time {
	return p.createdAt
}

// Awaitable is any deferred value the engine can settle without knowing
// its element type.
type Awaitable interface {
	Settle() (any, error)
}

// Await settles v if it is deferred, flattening nested deferredness, and
// returns a non-deferred value as it is.
func Await(v any) (any, error) {
	for {
		a, ok := v.(Awaitable)
		if !ok {
			return v, nil
		}
		var err error
		v, err = a.Settle()
		if err != nil {
			return nil, err
		}
	}
}

// Lift wraps v as a Promise[any]: a deferred value keeps its own
// settlement, anything else is already fulfilled.
func Lift(v any) *Promise[any] {
	if p, ok := v.(*Promise[any]); ok {
		return p
	}
	if _, ok := v.(Awaitable); ok {
		return Go(func() (any, error) { return Await(v) })
	}
	return Resolve(v)
}
