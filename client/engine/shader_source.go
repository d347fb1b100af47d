package engine

import (
	"strings"

	"github.com/subhrm/shaders-playground/common/wgsltypes"
)

// ShaderSource is WGSL code together with the Go structs it expects to be
// declared ahead of it.
type ShaderSource struct {
	Label   string
	Code    string
	Structs []wgsltypes.Struct
}

// WGSL returns the complete module source: struct definitions followed by the code.
func (s ShaderSource) WGSL() string {
	if len(s.Structs) == 0 {
		return s.Code
	}
	defs := make([]string, len(s.Structs))
	for i, st := range s.Structs {
		defs[i] = st.ToWGSL()
	}
	prologue := strings.Join(defs, "\n")
	return prologue + "\n" + s.Code
}
