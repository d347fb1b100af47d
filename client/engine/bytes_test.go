package engine

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type uniformBlock struct {
	time       float32
	pad0       float32
	resolution [2]float32
}

func TestStructAsByteSlice(t *testing.T) {
	got := structAsByteSlice(uniformBlock{time: 1.5, resolution: [2]float32{640, 480}})
	if len(got) != 16 {
		t.Fatalf("len = %d, want 16", len(got))
	}
	floats := make([]float32, 4)
	for i := range floats {
		floats[i] = math.Float32frombits(binary.LittleEndian.Uint32(got[i*4:]))
	}
	if diff := cmp.Diff([]float32{1.5, 0, 640, 480}, floats); diff != "" {
		t.Errorf("bytes mismatch (-want +got):\n%s", diff)
	}
}

func TestSliceAsBytesSlice(t *testing.T) {
	if got := sliceAsBytesSlice([]float32{}); got != nil {
		t.Errorf("sliceAsBytesSlice(empty) = %v, want nil", got)
	}
	got := sliceAsBytesSlice([]uint32{1, 0x01020304})
	want := []byte{1, 0, 0, 0, 4, 3, 2, 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("bytes mismatch (-want +got):\n%s", diff)
	}
}
