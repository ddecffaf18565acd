package bridge

import (
	"unsafe"
)

// This file holds every unsafe memory access of the package. Callers must
// have validated address, length and dtype through ArrayInterface.layout
// before reaching any function here.

// cacheLineSize is the alignment of host-allocated array storage.
const cacheLineSize = 64

// foreignBytes views n bytes starting at p. p must be valid for n bytes for
// the duration of the caller's use of the result.
func foreignBytes(p unsafe.Pointer, n int) []byte {
	if n == 0 || p == nil {
		return nil
	}

	return unsafe.Slice((*byte)(p), n)
}

// nativeBytes views the backing storage of a supported typed slice as bytes.
// It returns nil for empty slices and unsupported types.
func nativeBytes(data any) []byte {
	switch s := data.(type) {
	case []bool:
		return asBytes(s)
	case []int8:
		return asBytes(s)
	case []int16:
		return asBytes(s)
	case []int32:
		return asBytes(s)
	case []int64:
		return asBytes(s)
	case []uint8:
		return s
	case []uint16:
		return asBytes(s)
	case []uint32:
		return asBytes(s)
	case []uint64:
		return asBytes(s)
	case []float32:
		return asBytes(s)
	case []float64:
		return asBytes(s)
	default:
		return nil
	}
}

func asBytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}

	var zero T

	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*int(unsafe.Sizeof(zero)))
}

// bufferAddress returns the address of the first byte of buf, or nil when
// buf is empty.
func bufferAddress(buf []byte) unsafe.Pointer {
	if len(buf) == 0 {
		return nil
	}

	return unsafe.Pointer(unsafe.SliceData(buf))
}

// alignedBytes allocates a byte slice whose first element sits on a cache
// line boundary.
func alignedBytes(size int) []byte {
	if size == 0 {
		return []byte{}
	}

	buf := make([]byte, size+cacheLineSize-1)

	offset := 0
	if mod := uintptr(unsafe.Pointer(&buf[0])) % cacheLineSize; mod != 0 {
		offset = cacheLineSize - int(mod)
	}

	return buf[offset : offset+size : offset+size]
}
