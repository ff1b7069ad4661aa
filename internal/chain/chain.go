// Package chain maps a fallible operation over a list strictly in order.
//
// Items are never visited concurrently, so a failure always leaves a
// well-defined prefix of the list processed. What happens on failure is
// chosen per call: Abort stops at the first error, SkipWith reports the
// error to a fallback and moves on to the next item.
package chain

import (
	"context"
	"fmt"
)

// Visitor processes one item. Returning ok=false contributes no result
// without counting as a failure.
type Visitor[T, R any] func(ctx context.Context, item T) (result R, ok bool, err error)

// Fallback receives the item and error of a skipped visit.
type Fallback[T any] func(item T, err error)

type policy[T any] struct {
	skip     bool
	fallback Fallback[T]
}

type Option[T any] func(*policy[T])

// Abort stops the walk on the first failing item and returns its error.
// It is the default.
func Abort[T any]() Option[T] {
	return func(p *policy[T]) {
		p.skip = false
		p.fallback = nil
	}
}

// SkipWith reports failures to fallback and continues with the next item.
func SkipWith[T any](fallback Fallback[T]) Option[T] {
	return func(p *policy[T]) {
		p.skip = true
		p.fallback = fallback
	}
}

// Map applies visit to every item in order and returns the compacted results.
// Under Abort the results gathered before the failure are returned alongside the error.
func Map[T, R any](ctx context.Context, items []T, visit Visitor[T, R], opts ...Option[T]) ([]R, error) {
	p := &policy[T]{}
	for _, opt := range opts {
		opt(p)
	}

	results := make([]R, 0, len(items))
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result, ok, err := call(ctx, item, visit)
		if err != nil {
			if !p.skip {
				return results, err
			}
			if p.fallback != nil {
				p.fallback(item, err)
			}
			continue
		}
		if ok {
			results = append(results, result)
		}
	}

	return results, nil
}

// Flatten concatenates per-item result slices.
func Flatten[R any](groups [][]R) []R {
	var n int
	for _, g := range groups {
		n += len(g)
	}
	out := make([]R, 0, n)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func call[T, R any](ctx context.Context, item T, visit Visitor[T, R]) (result R, ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero R
			result, ok = zero, false
			if e, isErr := r.(error); isErr {
				err = fmt.Errorf("visitor panic: %w", e)
				return
			}
			err = fmt.Errorf("visitor panic: %v", r)
		}
	}()
	return visit(ctx, item)
}
