// SPDX-License-Identifier: EPL-2.0

//go:build headless

package sink

import (
	"log/slog"

	"github.com/ik5/ctagsynth/engine"
)

// Oto is unavailable in headless builds.
type Oto struct {
	closed bool
}

// NewOto returns a transport whose Configure always fails.
func NewOto(*slog.Logger) *Oto {
	return &Oto{}
}

// Configure implements engine.Transport.
func (o *Oto) Configure(engine.OutputDescriptor) error {
	if o.closed {
		return ErrClosed
	}

	return ErrNoAudioDevice
}

// WriteFrames implements engine.Transport.
func (o *Oto) WriteFrames([]int16) (int, error) {
	if o.closed {
		return 0, ErrClosed
	}

	return 0, ErrNotConfigured
}

// Close implements io.Closer.
func (o *Oto) Close() error {
	o.closed = true

	return nil
}
