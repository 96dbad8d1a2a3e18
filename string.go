// Copyright (c) Kitware, Inc.
// Licensed under the BSD 3-Clause License.

// Package vital provides Go mirrors of the vital C interface types.
//
// The types in this package are plain host-layout records. They never own,
// allocate or free the memory they point at: the lifetime of any buffer
// referenced through them is defined by the native library that produced it.
package vital

import (
	"runtime"
	"structs"
	"unsafe"
)

// String mirrors the C struct vital_string_t:
//
//	typedef struct {
//	  size_t length;
//	  char *str;
//	} vital_string_t;
//
// Str is a borrowed pointer and may be nil. Length is the byte count reported
// by the native library; nothing here checks it against the buffer.
type String struct {
	_ structs.HostLayout

	Length uintptr
	Str    *byte
}

// StringPtr is the address of one String, used where a native signature takes
// a vital_string_t* (out parameters, array elements).
type StringPtr = *String

// Layout of String as seen by the Go compiler. These must match the native
// sizeof/offsetof values for vital_string_t.
const (
	SizeofString   = unsafe.Sizeof(String{})
	AlignofString  = unsafe.Alignof(String{})
	OffsetofLength = unsafe.Offsetof(String{}.Length)
	OffsetofStr    = unsafe.Offsetof(String{}.Str)
)

// NewString builds a descriptor from raw parts. No validation is performed.
func NewString(length uintptr, str *byte) String {
	return String{Length: length, Str: str}
}

// MakeString returns a descriptor borrowing b.
// The descriptor is only valid while b is alive and unmodified. Passing it
// directly as a cgo argument is fine; storing it in memory handed to C needs
// MakeStringPinned.
func MakeString(b []byte) String {
	return String{
		Length: uintptr(len(b)),
		Str:    unsafe.SliceData(b),
	}
}

// MakeStringPinned is MakeString but pins the backing array with pinner, so
// the descriptor may be placed inside a struct or array that is passed to C.
// The pin is released by pinner.Unpin.
func MakeStringPinned(b []byte, pinner *runtime.Pinner) String {
	s := MakeString(b)
	// Pin even when empty: b[:0] still points into its heap array.
	if s.Str != nil {
		pinner.Pin(s.Str)
	}
	return s
}

// IsNull reports whether Str is nil.
func (s String) IsNull() bool {
	return s.Str == nil
}

// StringAt reinterprets a native address as a descriptor pointer.
func StringAt(p unsafe.Pointer) StringPtr {
	return (*String)(p)
}

// Strings returns a view of n contiguous descriptors starting at p, as laid
// out by a native vital_string_t array. The view aliases the native memory.
func Strings(p StringPtr, n int) []String {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice(p, n)
}
