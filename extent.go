package view

import (
	"github.com/awwaw/contiguous-view/internal/common"
)

// DynamicExtent marks a length decided at runtime. Passed as the count to
// Subview it means "through the end of the view".
const DynamicExtent = -1

// Extent is the size-storage policy of a View. Dynamic carries the element
// count in one runtime field; Fixed[L] carries nothing and reports L's
// constant. The policy set is sealed: new fixed lengths are introduced by
// declaring Length markers, not by implementing Extent.
type Extent[E any] interface {
	// forCount returns the storage for a view of count elements.
	forCount(count int) E

	// Size returns the element count.
	Size() int
}

// Dynamic is the runtime-length extent.
type Dynamic struct {
	count int
}

func (Dynamic) forCount(count int) Dynamic { return Dynamic{count: count} }

// Size returns the stored element count.
func (d Dynamic) Size() int { return d.count }

// Length is implemented by zero-sized marker types naming a fixed element
// count:
//
//	type quad struct{}
//	func (quad) Len() int { return 4 }
//
// Such a marker turns Fixed[quad] into an extent of constant length 4.
type Length interface {
	Len() int
}

// Fixed is the fixed-length extent. It stores no fields, so a fixed-extent
// view is a single pointer wide.
type Fixed[L Length] struct{}

func (Fixed[L]) forCount(count int) Fixed[L] {
	var l L
	common.Assert(count == l.Len(), "count does not match fixed extent")
	return Fixed[L]{}
}

// Size returns L's constant.
func (Fixed[L]) Size() int {
	var l L
	return l.Len()
}
