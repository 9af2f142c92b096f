// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
	ErrInvalidRate    = errors.New("sample rate must be positive")
	ErrChannelCount   = errors.New("unsupported channel count")
	ErrInvalidBufSize = errors.New("buffer size must hold at least one frame")
)
