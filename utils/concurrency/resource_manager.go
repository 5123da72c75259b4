// Package concurrency implements a simple channel based resource manager for concurrent operations.
package concurrency

import (
	"sync"
)

// ResourceManager runs tasks concurrently over a fixed pool of resources
// (e.g. a read-only polynomial or a per-worker scratch buffer).
// At most one task holds a given resource at a time, so the number of
// concurrent tasks is bounded by the size of the pool.
type ResourceManager[T any] struct {
	wg        sync.WaitGroup
	resources chan T
	errors    chan error
}

// NewResourceManager instantiates a new [ResourceManager] over the given resources.
// The method will panic if resources is empty.
func NewResourceManager[T any](resources []T) *ResourceManager[T] {

	if len(resources) == 0 {
		panic("cannot NewResourceManager: resources is empty")
	}

	pool := make(chan T, len(resources))
	for i := range resources {
		pool <- resources[i]
	}

	return &ResourceManager[T]{
		resources: pool,
		errors:    make(chan error, 1),
	}
}

// Task is a function taking as input a resource of the pool.
type Task[T any] func(resource T) (err error)

// Run runs a [Task] concurrently on the first available resource.
// Once a [Task] has returned an error, the tasks which have not yet
// started are skipped.
func (r *ResourceManager[T]) Run(f Task[T]) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		resource := <-r.resources
		defer func() { r.resources <- resource }()

		if len(r.errors) != 0 {
			return
		}

		if err := f(resource); err != nil {
			select {
			case r.errors <- err:
			default:
			}
		}
	}()
}

// Wait waits until all the [Task] passed to Run have returned and returns
// the first encountered error, if any.
func (r *ResourceManager[T]) Wait() (err error) {
	r.wg.Wait()
	select {
	case err = <-r.errors:
	default:
	}
	return
}
