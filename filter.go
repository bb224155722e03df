package medcard

import "strings"

// Filter narrows a slice of items by case-insensitive substring match.
// it keeps the filtered view and the index mapping back to the original
// source slice. no UI opinions — bring your own rendering.
//
// usage:
//
//	f := NewFilter(&years, func(y *int) string { return strconv.Itoa(*y) })
//	f.Update("199")          // re-filter when the query changes
//	f.Items                  // filtered subset, in source order
//	f.Original(selectedIdx)  // map filtered index back to the source slice
type Filter[T any] struct {
	Items []T // filtered subset, in source order

	source    *[]T
	extract   func(*T) string
	lastQuery string
	indices   []int // indices[i] = index into *source for Items[i]
}

// NewFilter creates a filter over a source slice.
// extract returns the searchable text for each item.
func NewFilter[T any](source *[]T, extract func(*T) string) *Filter[T] {
	f := &Filter[T]{
		source:  source,
		extract: extract,
	}
	f.Reset()
	return f
}

// Update re-filters the source slice with a new query string.
// no-op if the query hasn't changed.
func (f *Filter[T]) Update(query string) {
	if query == f.lastQuery {
		return
	}
	f.lastQuery = query

	if query == "" {
		f.Reset()
		return
	}

	needle := strings.ToLower(query)
	src := *f.source
	f.Items = f.Items[:0]
	f.indices = f.indices[:0]
	for i := range src {
		if strings.Contains(strings.ToLower(f.extract(&src[i])), needle) {
			f.Items = append(f.Items, src[i])
			f.indices = append(f.indices, i)
		}
	}
}

// Reset clears the query so Items mirrors the full source slice.
func (f *Filter[T]) Reset() {
	f.lastQuery = ""
	src := *f.source
	f.Items = append(f.Items[:0], src...)
	f.indices = f.indices[:0]
	for i := range src {
		f.indices = append(f.indices, i)
	}
}

// Original maps a filtered index back to the source slice index.
// Returns -1 when i is out of range.
func (f *Filter[T]) Original(i int) int {
	if i < 0 || i >= len(f.indices) {
		return -1
	}
	return f.indices[i]
}
