package view

import (
	"unsafe"
)

// Bytes reinterprets the view's storage as raw bytes, Size()*sizeof(T) of
// them, sharing the same memory. Only meaningful for elements without
// pointers or other non-trivially-representable fields; that contract is the
// caller's and is not checked. The result is dynamic; recover a fixed byte
// extent with Cast when the source length is statically known.
func (v View[T, E]) Bytes() View[byte, Dynamic] {
	return Reinterpret[byte](v)
}

// Reinterpret aliases v's storage as elements of type U without copying. The
// resulting count is v.SizeBytes()/sizeof(U); a trailing remainder smaller
// than one U is dropped. The same trivial-representability and alignment
// caveats as Bytes apply, unchecked.
func Reinterpret[U, T any, E Extent[E]](v View[T, E]) View[U, Dynamic] {
	var zero U
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return View[U, Dynamic]{}
	}
	return View[U, Dynamic]{
		ext:  Dynamic{count: int(uintptr(v.SizeBytes()) / size)},
		data: (*U)(unsafe.Pointer(v.data)),
	}
}
