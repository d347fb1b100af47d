package engine

import (
	"fmt"
	"strings"
)

// Stage is a set of shader stages a binding is visible to.
type Stage uint8

const (
	StageVertex Stage = 1 << iota
	StageFragment
	StageCompute
)

func (s Stage) String() string {
	var names []string
	for _, st := range []struct {
		bit  Stage
		name string
	}{{StageVertex, "vertex"}, {StageFragment, "fragment"}, {StageCompute, "compute"}} {
		if s&st.bit != 0 {
			names = append(names, st.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// BufferAccess is how a shader is allowed to access a bound buffer.
type BufferAccess int

const (
	AccessUniform BufferAccess = iota
	AccessReadOnlyStorage
	AccessStorage
)

func (a BufferAccess) String() string {
	switch a {
	case AccessUniform:
		return "uniform"
	case AccessReadOnlyStorage:
		return "read-only-storage"
	case AccessStorage:
		return "storage"
	}
	return fmt.Sprintf("BufferAccess(%d)", int(a))
}

// BindingLayout declares one buffer slot of a bind group layout.
type BindingLayout struct {
	Binding    int
	Access     BufferAccess
	Visibility Stage
}

// ValidateBindings checks a bind group layout against the platform's access
// restrictions before any pipeline is created from it. Vertex shaders may not
// declare writable storage buffers.
func ValidateBindings(label string, entries []BindingLayout) error {
	seen := map[int]bool{}
	for _, e := range entries {
		if seen[e.Binding] {
			return &PipelineError{Label: label, Message: fmt.Sprintf("binding %d declared twice", e.Binding)}
		}
		seen[e.Binding] = true

		if e.Visibility == 0 {
			return &PipelineError{Label: label, Message: fmt.Sprintf("binding %d is not visible to any stage", e.Binding)}
		}
		if e.Access == AccessStorage && e.Visibility&StageVertex != 0 {
			return &PipelineError{
				Label:   label,
				Message: fmt.Sprintf("binding %d: %v access is not allowed in the vertex stage, use %v", e.Binding, e.Access, AccessReadOnlyStorage),
			}
		}
	}
	return nil
}

// WorkgroupCount returns the number of workgroups of workgroupSize invocations
// needed to cover n items.
func WorkgroupCount(n, workgroupSize int) int {
	if n <= 0 || workgroupSize <= 0 {
		return 0
	}
	return (n + workgroupSize - 1) / workgroupSize
}
