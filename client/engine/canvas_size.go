package engine

import "math"

// BackingSize returns the pixel size of a canvas drawn at clientWidth x
// clientHeight CSS pixels on a display with the given device pixel ratio.
// Both dimensions are at least 1.
func BackingSize(clientWidth, clientHeight int, devicePixelRatio float64) (width, height int) {
	if devicePixelRatio <= 0 || math.IsNaN(devicePixelRatio) {
		devicePixelRatio = 1
	}
	scale := func(n int) int {
		return max(int(math.Round(float64(n)*devicePixelRatio)), 1)
	}
	return scale(clientWidth), scale(clientHeight)
}
