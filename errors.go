// SPDX-License-Identifier: EPL-2.0

package ctagsynth

import "errors"

var (
	ErrInvalidDuration = errors.New("bounce duration must be positive")
	ErrInvalidChannels = errors.New("bounce supports 1 or 2 channels")
)
