package store

import (
	"maps"
	"slices"
)

// Pagination mirrors the pagination block of paginated responses.
type Pagination struct {
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

// Resource is the uniform state of one resource domain: the last-fetched
// collection, the current single item, the async-operation flags, and the
// consumer-owned pagination/filter inputs.
//
// Invariants: Loading is true only strictly between an operation's
// dispatch and its resolution; Error is non-empty only after a rejection
// and is cleared by the next dispatch or an explicit ClearError.
type Resource[T any] struct {
	Items      []T
	Current    *T
	Loading    bool
	Error      string
	Pagination Pagination
	Filters    map[string]string
}

func newResource[T any]() Resource[T] {
	return Resource[T]{Filters: map[string]string{}}
}

// snapshot returns a copy safe to hand out: slices and maps are cloned,
// Current is copied by value.
func snapshot[T any](r *Resource[T]) Resource[T] {
	out := *r
	out.Items = slices.Clone(r.Items)
	out.Filters = maps.Clone(r.Filters)
	if r.Current != nil {
		cur := *r.Current
		out.Current = &cur
	}
	return out
}

// replaceByID swaps the entry matching updated's id in place. Entries with
// other ids are never touched.
func replaceByID[T any](items []T, updated T, id func(T) string) {
	target := id(updated)
	for i := range items {
		if id(items[i]) == target {
			items[i] = updated
		}
	}
}

// removeByID filters out the entry with the given id, preserving order.
func removeByID[T any](items []T, target string, id func(T) string) []T {
	out := items[:0:0]
	for _, item := range items {
		if id(item) != target {
			out = append(out, item)
		}
	}
	return out
}
