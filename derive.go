package view

import (
	"github.com/awwaw/contiguous-view/internal/common"
)

// Derived-view operations. Each one computes a new pointer and a new extent
// over the source's storage; none copies elements and none allocates.

// Subview returns the count elements starting at offset as a dynamic view.
// A count of DynamicExtent selects everything through the end. The result is
// always dynamic, even on a fixed-extent source: its length is decided by
// this call's arguments.
func (v View[T, E]) Subview(offset, count int) View[T, Dynamic] {
	n := v.Size()
	common.Assert(offset >= 0 && offset <= n, "subview offset out of range")
	if count == DynamicExtent {
		count = n - offset
	}
	common.Assert(count >= 0 && count <= n-offset, "subview count out of range")
	return View[T, Dynamic]{ext: Dynamic{count: count}, data: v.index(offset)}
}

// First returns the leading count elements.
func (v View[T, E]) First(count int) View[T, Dynamic] {
	common.Assert(count >= 0 && count <= v.Size(), "first count out of range")
	return View[T, Dynamic]{ext: Dynamic{count: count}, data: v.data}
}

// Last returns the trailing count elements.
func (v View[T, E]) Last(count int) View[T, Dynamic] {
	n := v.Size()
	common.Assert(count >= 0 && count <= n, "last count out of range")
	return View[T, Dynamic]{ext: Dynamic{count: count}, data: v.index(n - count)}
}

// SubN is Subview with a fixed result length of L.Len() elements. Fixed
// result variants are free functions because Go methods cannot introduce
// type parameters.
func SubN[L Length, T any, E Extent[E]](v View[T, E], offset int) View[T, Fixed[L]] {
	var l L
	common.Assert(offset >= 0 && offset <= v.Size(), "subview offset out of range")
	common.Assert(l.Len() <= v.Size()-offset, "subview count out of range")
	return View[T, Fixed[L]]{data: v.index(offset)}
}

// FirstN returns the leading L.Len() elements as a fixed-extent view.
func FirstN[L Length, T any, E Extent[E]](v View[T, E]) View[T, Fixed[L]] {
	var l L
	common.Assert(l.Len() <= v.Size(), "first count out of range")
	return View[T, Fixed[L]]{data: v.data}
}

// LastN returns the trailing L.Len() elements as a fixed-extent view.
func LastN[L Length, T any, E Extent[E]](v View[T, E]) View[T, Fixed[L]] {
	var l L
	n := l.Len()
	common.Assert(n <= v.Size(), "last count out of range")
	return View[T, Fixed[L]]{data: v.index(v.Size() - n)}
}
