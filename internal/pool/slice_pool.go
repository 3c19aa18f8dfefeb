package pool

import "sync"

var float64SlicePool = sync.Pool{
	New: func() any { return &[]float64{} },
}

// GetFloat64Slice retrieves a float64 slice of length size from the pool.
//
// If the pooled slice has insufficient capacity, a new slice is allocated.
// The contents are unspecified. The caller must call the returned cleanup
// function once it no longer uses the slice.
//
// Example:
//
//	xs, cleanup := pool.GetFloat64Slice(set.Count())
//	defer cleanup()
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)

	slice := *ptr
	if cap(slice) < size {
		slice = make([]float64, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { float64SlicePool.Put(ptr) }
}
