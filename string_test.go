// Copyright (c) Kitware, Inc.
// Licensed under the BSD 3-Clause License.

package vital_test

import (
	"runtime"
	"testing"
	"unsafe"

	"github.com/Kitware/kwiver/go/vital"
	"github.com/Kitware/kwiver/go/vital/internal/native"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutMatchesNative(t *testing.T) {
	layout := native.Layout()

	assert.Equal(t, layout.Size, vital.SizeofString)
	assert.Equal(t, layout.Align, vital.AlignofString)
	assert.Equal(t, layout.LengthOffset, vital.OffsetofLength)
	assert.Equal(t, layout.StrOffset, vital.OffsetofStr)

	// Two native-width fields, no padding on any supported platform.
	assert.Equal(t, 2*unsafe.Sizeof(uintptr(0)), vital.SizeofString)
	assert.Equal(t, unsafe.Sizeof(uintptr(0)), vital.OffsetofStr)
}

func TestEchoRoundTrip(t *testing.T) {
	data, free := native.CBytes([]byte("hello"))
	defer free()

	s := vital.NewString(5, data)
	result := native.Echo(s)

	assert.Equal(t, uintptr(5), result.Length)
	assert.Same(t, data, result.Str)
	assert.Equal(t, []byte("hello"), native.GoBytes(result.Str, result.Length))
}

func TestNativeReadsFields(t *testing.T) {
	data, free := native.CBytes([]byte("hello"))
	defer free()

	s := vital.NewString(5, data)
	assert.Equal(t, uintptr(5), native.Length(&s))
	assert.Same(t, data, native.Data(&s))
}

func TestNullString(t *testing.T) {
	s := vital.NewString(0, nil)
	assert.True(t, s.IsNull())

	result := native.Echo(s)
	assert.True(t, result.IsNull())
	assert.Zero(t, result.Length)
	assert.Nil(t, native.Data(&s))
}

func TestNullStringKeepsLength(t *testing.T) {
	// Length is not checked against Str.
	s := vital.NewString(7, nil)
	assert.True(t, s.IsNull())
	assert.Equal(t, uintptr(7), native.Length(&s))
}

func TestPointerToRecord(t *testing.T) {
	data, free := native.CBytes([]byte("hello"))
	defer free()

	s := vital.NewString(5, data)
	var p vital.StringPtr = &s

	result := native.Deref(p)
	assert.Equal(t, s.Length, result.Length)
	assert.Same(t, s.Str, result.Str)
	assert.Equal(t, *p, result)
}

func TestZeroLengthConstructs(t *testing.T) {
	data, free := native.CBytes([]byte("x"))
	defer free()

	withPtr := vital.NewString(0, data)
	assert.False(t, withPtr.IsNull())
	assert.Zero(t, native.Echo(withPtr).Length)
	assert.Same(t, data, native.Echo(withPtr).Str)

	withoutPtr := vital.NewString(0, nil)
	assert.True(t, withoutPtr.IsNull())
	assert.Zero(t, native.Echo(withoutPtr).Length)
}

func TestMakeString(t *testing.T) {
	b := []byte("hello")
	s := vital.MakeString(b)
	assert.Equal(t, uintptr(5), s.Length)
	assert.Same(t, &b[0], s.Str)

	assert.True(t, vital.MakeString(nil).IsNull())

	empty := vital.MakeString([]byte{})
	assert.Zero(t, empty.Length)
	assert.False(t, empty.IsNull())
}

func TestMakeStringPinned(t *testing.T) {
	var pinner runtime.Pinner
	defer pinner.Unpin()

	// An empty re-slice of a heap array still carries a Go pointer.
	emptyHeap := make([]byte, 64)[:0]
	payloads := [][]byte{[]byte("alpha"), []byte("be"), nil, emptyHeap}
	strs := make([]vital.String, len(payloads))
	for i, payload := range payloads {
		strs[i] = vital.MakeStringPinned(payload, &pinner)
	}

	for i, payload := range payloads {
		result := native.At(strs, i)
		require.Equal(t, uintptr(len(payload)), result.Length)
		assert.Same(t, unsafe.SliceData(payload), result.Str)
	}
	assert.False(t, strs[3].IsNull())
	assert.Zero(t, strs[3].Length)
}

func TestStringsView(t *testing.T) {
	first, freeFirst := native.CBytes([]byte("one"))
	defer freeFirst()
	second, freeSecond := native.CBytes([]byte("three"))
	defer freeSecond()

	backing := []vital.String{
		vital.NewString(3, first),
		vital.NewString(5, second),
	}

	view := vital.Strings(vital.StringAt(unsafe.Pointer(&backing[0])), len(backing))
	require.Len(t, view, 2)
	assert.Equal(t, backing, view)
	assert.Equal(t, backing[1], native.At(view, 1))

	// The view aliases its source.
	view[0].Length = 1
	assert.Equal(t, uintptr(1), backing[0].Length)

	assert.Nil(t, vital.Strings(nil, 3))
	assert.Nil(t, vital.Strings(&backing[0], 0))
}
