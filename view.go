// Package view provides a non-owning, allocation-free window over a
// contiguous run of elements in memory: a pointer plus an extent policy that
// either tracks the length at runtime (Dynamic) or fixes it in the type
// (Fixed[L]) at zero storage cost.
//
// A View never owns, resizes or frees the memory it points into. It stays
// valid exactly as long as the storage it was built from; the caller keeps
// that storage alive, the same discipline a raw Go slice of somebody else's
// backing array demands. Copying a View is a two-word copy producing an
// independent handle onto the same storage.
//
// Preconditions (index bounds, matching fixed-extent counts, ordered pointer
// ranges, sufficient remaining length) are enforced by contract checks that
// panic with a diagnostic. Building with the contracts_off tag compiles every
// check out; violations then read or write out of bounds with no detection.
// There is no recoverable-error path in this package.
package view

import (
	"fmt"
	"unsafe"

	"github.com/awwaw/contiguous-view/internal/common"
)

// View is a pointer-plus-extent window into contiguous storage it does not
// own. The zero value is an empty view with nil data. Note the fixed-extent
// caveat: the zero value of View[T, Fixed[L]] reports L's length while its
// data is nil, so element access on it is undefined; only construction gives
// a usable fixed-extent view.
type View[T any, E Extent[E]] struct {
	ext  E // first, so a zero-sized Fixed extent adds no bytes
	data *T
}

// FromSlice builds a dynamic view over s, sharing its backing array.
func FromSlice[T any](s []T) View[T, Dynamic] {
	return View[T, Dynamic]{ext: Dynamic{count: len(s)}, data: unsafe.SliceData(s)}
}

// FromPtr builds a view over the count elements starting at p. The extent is
// named first so it can be given alone: FromPtr[Fixed[quad]](p, 4) asserts a
// fixed length from a runtime count, and spelling the extent at the call site
// is the deliberate opt-in that asserting it requires. The fixed
// instantiation contract-checks count against L's constant.
func FromPtr[E Extent[E], T any](p *T, count int) View[T, E] {
	common.Assert(count >= 0, "negative count")
	var e E
	return View[T, E]{ext: e.forCount(count), data: p}
}

// FromRange builds a dynamic view over the elements in [first, last).
// A reversed range is a contract violation.
func FromRange[T any](first, last *T) View[T, Dynamic] {
	f := uintptr(unsafe.Pointer(first))
	l := uintptr(unsafe.Pointer(last))
	common.Assert(f <= l, "reversed range")
	count := 0
	if size := unsafe.Sizeof(*first); size != 0 {
		count = int((l - f) / size)
	}
	return View[T, Dynamic]{ext: Dynamic{count: count}, data: first}
}

// Cast rebinds v to another extent over the same storage. Fixed targets
// contract-check that v's length matches the constant, so narrowing a
// runtime length into a fixed extent is visible at the call site:
// Cast[Fixed[quad]](v). Casting a fixed extent to Dynamic always succeeds.
func Cast[E2 Extent[E2], T any, E Extent[E]](v View[T, E]) View[T, E2] {
	var e2 E2
	return View[T, E2]{ext: e2.forCount(v.Size()), data: v.data}
}

// Data returns the pointer to the first element; nil for empty views.
func (v View[T, E]) Data() *T { return v.data }

// Size returns the element count.
func (v View[T, E]) Size() int { return v.ext.Size() }

// SizeBytes returns the total size of the viewed elements in bytes.
func (v View[T, E]) SizeBytes() int {
	var zero T
	return v.Size() * int(unsafe.Sizeof(zero))
}

// Empty reports whether the view has no elements.
func (v View[T, E]) Empty() bool { return v.Size() == 0 }

// At returns a pointer to the i-th element. The index is contract-checked.
func (v View[T, E]) At(i int) *T {
	common.Assert(i >= 0 && i < v.Size(), "index out of range")
	return v.index(i)
}

// Front returns a pointer to the first element. Undefined on an empty view.
func (v View[T, E]) Front() *T { return v.data }

// Back returns a pointer to the last element. Undefined on an empty view.
func (v View[T, E]) Back() *T { return v.index(v.Size() - 1) }

// Slice reconstructs a Go slice sharing the view's storage, the iteration
// surface of the view. Mutations through the slice are visible through the
// view and vice versa.
func (v View[T, E]) Slice() []T {
	return unsafe.Slice(v.data, v.Size())
}

// Format implements fmt.Formatter by formatting the viewed elements.
func (v View[T, E]) Format(state fmt.State, verb rune) {
	fmt.Fprintf(state, fmt.FormatString(state, verb), v.Slice())
}

// index computes data+i. i == Size() is allowed: it yields the one-past-
// the-end pointer that anchors empty tails (Last(0), Subview(n, ...)), the
// end-pointer convention.
func (v View[T, E]) index(i int) *T {
	var zero T
	return (*T)(unsafe.Add(unsafe.Pointer(v.data), uintptr(i)*unsafe.Sizeof(zero)))
}
