// SPDX-License-Identifier: EPL-2.0

package sink

import "encoding/binary"

// putPCM16 encodes samples as little-endian bytes into dst, growing it when
// needed, and returns the encoded slice.
func putPCM16(dst []byte, samples []int16) []byte {
	n := len(samples) * 2
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]

	for i, v := range samples {
		binary.LittleEndian.PutUint16(dst[2*i:], uint16(v))
	}

	return dst
}
