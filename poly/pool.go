package poly

import (
	"sync"
	"unsafe"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Sets a maximum for the array size we keep in pool
const maxNForLargePool int = 1 << 22
const maxNForSmallPool int = 256

// Aliases because it is annoying to use arrays in all the places
type largeArr = [maxNForLargePool]fr.Element
type smallArr = [maxNForSmallPool]fr.Element

var rC sync.Map = sync.Map{}

var (
	largePool = sync.Pool{
		New: func() interface{} {
			var res largeArr
			return &res
		},
	}
	smallPool = sync.Pool{
		New: func() interface{} {
			var res smallArr
			return &res
		},
	}
)

// MakeLarge returns an n-element scratch table backed by the large pool.
// Above the pool bound it falls back to a plain allocation, which DumpLarge
// knows to ignore.
func MakeLarge(n int) []fr.Element {
	if n > maxNForLargePool {
		return make([]fr.Element, n)
	}

	ptr := largePool.Get().(*largeArr)
	rC.Store(ptr, struct{}{}) // remember we allocated the pointer is being used
	return (*ptr)[:n]
}

func DumpLarge(arrs ...[]fr.Element) {
	for _, arr := range arrs {
		// allocated outside of the pool, nothing to give back
		if cap(arr) != maxNForLargePool {
			continue
		}
		ptr := ptrLarge(arr)
		// If the rC did not registers, then
		// either the array was allocated somewhere else and its fine to ignore
		// otherwise a double put and we MUST ignore
		if _, ok := rC.Load(ptr); ok {
			largePool.Put(ptr)
		}
		// And deregisters the ptr
		rC.Delete(ptr)
	}
}

// MakeSmall returns an n-element scratch table backed by the small pool
func MakeSmall(n int) []fr.Element {
	if n > maxNForSmallPool {
		return make([]fr.Element, n)
	}

	ptr := smallPool.Get().(*smallArr)
	rC.Store(ptr, struct{}{}) // registers the pointer being used
	return (*ptr)[:n]
}

func DumpSmall(arrs ...[]fr.Element) {
	for _, arr := range arrs {
		if cap(arr) != maxNForSmallPool {
			continue
		}
		ptr := ptrSmall(arr)
		// If the rC did not registers, then
		// either the table was allocated somewhere else and its fine to ignore
		// otherwise a double put and we MUST ignore
		if _, ok := rC.Load(ptr); ok {
			smallPool.Put(ptr)
		}
		// And deregisters the ptr
		rC.Delete(ptr)
	}
}

// Get the pointer from the header of the slice
func ptrLarge(arr []fr.Element) *largeArr {
	return (*largeArr)(unsafe.Pointer(&arr[0]))
}

// Get the pointer from the header of the slice
func ptrSmall(arr []fr.Element) *smallArr {
	return (*smallArr)(unsafe.Pointer(&arr[0]))
}
