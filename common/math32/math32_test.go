package math32

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLerp(t *testing.T) {
	tests := []struct {
		name    string
		a, b, f float32
		want    float32
	}{
		{name: "f=0", a: 10, b: 20, f: 0, want: 10},
		{name: "f=1", a: 10, b: 20, f: 1, want: 20},
		{name: "f=0.5", a: 10, b: 20, f: 0.5, want: 15},
		{name: "f=0.25", a: 0, b: 100, f: 0.25, want: 25},
		{name: "negative values", a: -10, b: 10, f: 0.5, want: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Lerp(tc.a, tc.b, tc.f)
			if got != tc.want {
				t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tc.a, tc.b, tc.f, got, tc.want)
			}
		})
	}
}

func TestRangeSample(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	ranges := []Range{
		{Min: 10, Max: 20},
		Symmetric(5),
		Symmetric(0.1),
		{Min: 0.5, Max: 1.5},
	}
	for _, v := range ranges {
		for i := 0; i < 1000; i++ {
			if got := v.Sample(r); !v.Contains(got) {
				t.Fatalf("%+v.Sample() = %v, out of range", v, got)
			}
		}
	}
}

func TestRangeSampleIsDeterministic(t *testing.T) {
	r1 := rand.New(rand.NewSource(99))
	r2 := rand.New(rand.NewSource(99))
	v := Range{Min: 0, Max: 100}

	results1 := make([]float32, 10)
	results2 := make([]float32, 10)
	for i := range results1 {
		results1[i] = v.Sample(r1)
		results2[i] = v.Sample(r2)
	}
	if diff := cmp.Diff(results1, results2); diff != "" {
		t.Errorf("Range.Sample not deterministic with seeded rand (-r1 +r2):\n%s", diff)
	}
}
