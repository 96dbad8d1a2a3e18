// Copyright (c) Kitware, Inc.
// Licensed under the BSD 3-Clause License.

// Package native drives vital C types across a real cgo boundary.
// This package isn't intended for direct usage, it is the harness behind the layout and round-trip tests of the vital package.
package native

// #cgo CFLAGS: -I${SRCDIR}/../../include
/*
#include <stdlib.h>
#include <stddef.h>
#include <vital_string.h>

static size_t vital_string_sizeof(void) { return sizeof(vital_string_t); }
static size_t vital_string_alignof(void) { return _Alignof(vital_string_t); }
static size_t vital_string_offsetof_length(void) { return offsetof(vital_string_t, length); }
static size_t vital_string_offsetof_str(void) { return offsetof(vital_string_t, str); }

// No-op boundary crossings. Nothing here reads through str.
static vital_string_t vital_string_echo(vital_string_t s) { return s; }
static vital_string_t vital_string_deref(const vital_string_t* s) { return *s; }
static vital_string_t vital_string_at(const vital_string_t* arr, size_t i) { return arr[i]; }
static size_t vital_string_length(const vital_string_t* s) { return s->length; }
static char* vital_string_data(const vital_string_t* s) { return s->str; }
*/
import "C"

import (
	"bytes"
	"unsafe"

	"github.com/Kitware/kwiver/go/vital"
)

// StructLayout is the native view of a record's size, alignment and field offsets.
type StructLayout struct {
	Size         uintptr
	Align        uintptr
	LengthOffset uintptr
	StrOffset    uintptr
}

// Layout reports how the C compiler lays out vital_string_t.
func Layout() StructLayout {
	return StructLayout{
		Size:         uintptr(C.vital_string_sizeof()),
		Align:        uintptr(C.vital_string_alignof()),
		LengthOffset: uintptr(C.vital_string_offsetof_length()),
		StrOffset:    uintptr(C.vital_string_offsetof_str()),
	}
}

func toC(s *vital.String) *C.vital_string_t {
	return (*C.vital_string_t)(unsafe.Pointer(s))
}

func fromC(s C.vital_string_t) vital.String {
	return *(*vital.String)(unsafe.Pointer(&s))
}

// Echo passes s to C by value and returns what C hands back.
// Str should point at C memory (see CBytes), C may not return Go pointers.
func Echo(s vital.String) vital.String {
	return fromC(C.vital_string_echo(*toC(&s)))
}

// Deref passes p to C and returns the record C reads through it.
func Deref(p vital.StringPtr) vital.String {
	return fromC(C.vital_string_deref(toC(p)))
}

// At returns element i of strs as read by C through pointer arithmetic.
// It panics if i is out of range, like strs[i].
func At(strs []vital.String, i int) vital.String {
	_ = strs[i]
	return fromC(C.vital_string_at(toC(&strs[0]), C.size_t(i)))
}

// Length returns p->length as read by C.
func Length(p vital.StringPtr) uintptr {
	return uintptr(C.vital_string_length(toC(p)))
}

// Data returns p->str as read by C.
func Data(p vital.StringPtr) *byte {
	return (*byte)(unsafe.Pointer(C.vital_string_data(toC(p))))
}

// CBytes copies b into C memory. The returned func frees it.
func CBytes(b []byte) (*byte, func()) {
	ptr := C.CBytes(b)
	return (*byte)(ptr), func() {
		C.free(ptr)
	}
}

// GoBytes copies length bytes starting at str into Go memory.
func GoBytes(str *byte, length uintptr) []byte {
	if str == nil {
		return nil
	}
	return bytes.Clone(unsafe.Slice(str, length))
}
