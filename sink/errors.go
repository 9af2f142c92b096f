// SPDX-License-Identifier: EPL-2.0

package sink

import "errors"

var (
	ErrClosed            = errors.New("sink is closed")
	ErrNotConfigured     = errors.New("sink is not configured")
	ErrNoAudioDevice     = errors.New("no audio device available")
	ErrUnsupportedFormat = errors.New("unsupported sample format")
)
