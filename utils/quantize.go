// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// FullScale is the largest positive 16-bit sample. Negative full scale is
// -FullScale, so a waveform and its inversion quantize symmetrically.
const FullScale = 32767.0

// Quantize maps a normalized value onto a signed 16-bit sample using
// round(v * 32767). Values outside [-1, 1] are clamped first.
func Quantize(v float64) int16 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}

	return int16(math.Round(v * FullScale))
}

// Float32ToInt16 is Quantize for float32 stream samples.
func Float32ToInt16(x float32) int16 {
	return Quantize(float64(x))
}

// Int16ToFloat32 is the inverse of Float32ToInt16 within rounding.
func Int16ToFloat32(s int16) float32 {
	v := float32(s) / FullScale
	if v < -1 {
		return -1
	}

	return v
}
