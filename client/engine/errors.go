package engine

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrUnsupportedPlatform means the browser exposes no WebGPU at all.
	ErrUnsupportedPlatform = errors.New("WebGPU is not supported on this browser")
	// ErrNoAdapter means WebGPU exists but no usable adapter or device could be obtained.
	ErrNoAdapter = errors.New("no appropriate GPU adapter found")
	// ErrSurfaceUnavailable means the canvas could not provide a WebGPU context.
	ErrSurfaceUnavailable = errors.New("could not get WebGPU context from canvas")
	// ErrPipelineCompilation is the cause of every *PipelineError.
	ErrPipelineCompilation = errors.New("pipeline compilation failed")
)

// PipelineError reports a shader module or pipeline that the platform (or our
// own binding validation) rejected.
type PipelineError struct {
	Label   string
	Message string
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %v: %s", e.Label, ErrPipelineCompilation, e.Message)
}

func (e *PipelineError) Unwrap() error { return ErrPipelineCompilation }
