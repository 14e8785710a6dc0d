package view

import "context"

// List is the reusable fetch-then-render-then-mutate-then-refetch resource
// every domain view is built on. The displayed collection is always exactly
// the last successful fetch: a failed load leaves the previous items in
// place, and every successful mutation is followed by a full re-fetch.
type List[T any] struct {
	fetch func(ctx context.Context) ([]T, error)
	items []T
}

func NewList[T any](fetch func(ctx context.Context) ([]T, error)) *List[T] {
	return &List[T]{fetch: fetch}
}

// Load replaces the items with a fresh fetch result. On failure the previous
// items are kept and the error is returned to the caller.
func (l *List[T]) Load(ctx context.Context) error {
	items, err := l.fetch(ctx)
	if err != nil {
		return err
	}
	l.items = items
	return nil
}

// Mutate runs the mutation and, only on success, re-fetches the list. This is
// the single place a retry or cancellation policy would slot in later.
func (l *List[T]) Mutate(ctx context.Context, mutation func(ctx context.Context) error) error {
	if err := mutation(ctx); err != nil {
		return err
	}
	return l.Load(ctx)
}

func (l *List[T]) Items() []T {
	return l.items
}

func (l *List[T]) Len() int {
	return len(l.items)
}
