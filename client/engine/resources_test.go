package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResourcesReleaseOrder(t *testing.T) {
	var released []string
	var r Resources
	for _, name := range []string{"vertex", "uniform", "depth"} {
		name := name
		r.Track(name, func() { released = append(released, name) })
	}
	r.Track("nil", nil)
	if got := r.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}

	r.Release()
	want := []string{"depth", "uniform", "vertex"}
	if diff := cmp.Diff(want, released); diff != "" {
		t.Errorf("release order mismatch (-want +got):\n%s", diff)
	}
	if got := r.Len(); got != 0 {
		t.Errorf("Len() after Release() = %d, want 0", got)
	}
}

func TestResourcesReleaseIsIdempotent(t *testing.T) {
	count := 0
	var r Resources
	r.Track("buffer", func() { count++ })
	r.Release()
	r.Release()
	if count != 1 {
		t.Errorf("release called %d times, want 1", count)
	}
}

func TestResourcesReleaseEmpty(t *testing.T) {
	var r Resources
	r.Release()
	r.Release()
}
