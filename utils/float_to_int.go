// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 maps a float sample to 16-bit PCM. Values outside
// [-1, 1] are clamped and NaN becomes silence. Full scale is 32767 in
// both directions.
func Float32ToInt16(x float32) int16 {
	if math.IsNaN(float64(x)) {
		return 0
	}
	return int16(max(-1, min(x, 1)) * 32767)
}

// QuantizeInt16 converts src into dst as 16-bit sample values and
// returns the number converted, the shorter of the two lengths.
func QuantizeInt16(dst []int, src []float32) int {
	n := min(len(dst), len(src))
	for i, v := range src[:n] {
		dst[i] = int(Float32ToInt16(v))
	}
	return n
}
