// Package shadercheck compiles WGSL ahead of time so that shader errors are
// caught before the client reaches a browser.
package shadercheck

import (
	"encoding/binary"
	"strings"

	"github.com/gogpu/naga"
	"github.com/pkg/errors"
)

// spirvMagic is the first word of every SPIR-V module.
const spirvMagic = 0x07230203

// Compile translates WGSL to SPIR-V and checks the output header.
func Compile(label, wgsl string) ([]byte, error) {
	if strings.TrimSpace(wgsl) == "" {
		return nil, errors.Errorf("%s: empty shader source", label)
	}
	spirv, err := naga.Compile(wgsl)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", label)
	}
	if !IsSPIRV(spirv) {
		return nil, errors.Errorf("%s: compiler produced %d bytes without a SPIR-V header", label, len(spirv))
	}
	return spirv, nil
}

// IsSPIRV reports whether b starts with the SPIR-V magic number.
func IsSPIRV(b []byte) bool {
	return len(b) >= 4 && binary.LittleEndian.Uint32(b) == spirvMagic
}

var unsupportedMarkers = []string{
	"not yet implemented",
	"unimplemented",
	"not supported",
	"unsupported",
	"lowering error",
	"atomic",
}

// Unsupported reports whether err comes from a WGSL feature the compiler does
// not handle yet, as opposed to an error in the shader itself.
func Unsupported(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, m := range unsupportedMarkers {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}
