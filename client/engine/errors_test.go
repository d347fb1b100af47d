package engine

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
)

func TestErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{name: "wrapped unsupported", err: errors.Wrap(ErrUnsupportedPlatform, "acquiring device"), target: ErrUnsupportedPlatform},
		{name: "wrapped no adapter", err: fmt.Errorf("requestDevice: %w", ErrNoAdapter), target: ErrNoAdapter},
		{name: "wrapped surface", err: errors.Wrapf(ErrSurfaceUnavailable, "canvas %q", "scene"), target: ErrSurfaceUnavailable},
		{name: "pipeline error", err: &PipelineError{Label: "cube", Message: "bad"}, target: ErrPipelineCompilation},
		{name: "wrapped pipeline error", err: errors.Wrap(&PipelineError{Label: "cube", Message: "bad"}, "init"), target: ErrPipelineCompilation},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !errors.Is(tc.err, tc.target) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tc.err, tc.target)
			}
		})
	}
}

func TestPipelineErrorAs(t *testing.T) {
	err := errors.Wrap(&PipelineError{Label: "spheres render", Message: "unknown entry point"}, "init")
	var pe *PipelineError
	if !errors.As(err, &pe) {
		t.Fatalf("errors.As(%v) = false, want true", err)
	}
	if pe.Label != "spheres render" {
		t.Errorf("Label = %q, want %q", pe.Label, "spheres render")
	}
	if errors.Is(err, ErrNoAdapter) {
		t.Errorf("errors.Is(%v, ErrNoAdapter) = true, want false", err)
	}
}
