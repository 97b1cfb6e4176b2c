package complexity

import "errors"

// ErrBadWorkers indicates WithWorkers was called with fewer than 1 worker.
var ErrBadWorkers = errors.New("complexity: Workers must be at least 1")

// Options configures the behavior of Total.
//
// Workers – number of goroutines evaluating codes concurrently.
// 1 (the default) keeps evaluation sequential.
type Options struct {
	Workers int // per-code evaluation fan-out
}

// Option represents a functional option for configuring Total.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with sensible
// defaults: sequential evaluation (Workers = 1).
func DefaultOptions() Options {
	return Options{
		Workers: 1,
	}
}

// WithWorkers sets the number of goroutines Total uses to evaluate codes.
// Must pass at least 1; smaller values cause ErrBadWorkers.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			// Panic to signal invalid configuration early.
			panic(ErrBadWorkers.Error())
		}
		o.Workers = n
	}
}
