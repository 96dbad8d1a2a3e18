// Copyright (c) Kitware, Inc.
// Licensed under the BSD 3-Clause License.

package vital_test

import (
	"testing"

	"github.com/Kitware/kwiver/go/vital"
	"github.com/Kitware/kwiver/go/vital/internal/native"
)

const payloadSize = 1024 // 1KB

func makePayload() []byte {
	data := make([]byte, payloadSize)
	for i := range data {
		data[i] = byte(i % 256)
	}
	return data
}

func BenchmarkMakeString(b *testing.B) {
	data := makePayload()

	b.SetBytes(payloadSize)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = vital.MakeString(data)
	}
}

func BenchmarkCGOEcho(b *testing.B) {
	data, free := native.CBytes(makePayload())
	defer free()
	s := vital.NewString(payloadSize, data)

	b.SetBytes(payloadSize)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = native.Echo(s)
	}
}

func BenchmarkCGODeref(b *testing.B) {
	data, free := native.CBytes(makePayload())
	defer free()
	s := vital.NewString(payloadSize, data)

	b.SetBytes(payloadSize)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = native.Deref(&s)
	}
}
