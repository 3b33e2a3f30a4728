//go:build contracts_off

package view

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// With contract checks compiled out, a fixed extent reports its constant
// whatever runtime count the constructor was handed; only a matching count
// is a valid call, and the mismatch goes undetected.
func TestFixedExtentSizeUnchecked(t *testing.T) {
	storage := [5]uint32{1, 2, 3, 4, 5}
	v := FromPtr[Fixed[five]](&storage[0], 3)
	require.Equal(t, 5, v.Size())
	require.Equal(t, &storage[0], v.Data())
}
