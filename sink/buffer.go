// SPDX-License-Identifier: EPL-2.0

package sink

import (
	"sync"

	"github.com/ik5/ctagsynth/engine"
)

// Buffer is an in-memory transport that keeps every sample written to it.
type Buffer struct {
	mu         sync.Mutex
	desc       engine.OutputDescriptor
	configured bool
	samples    []int16
}

// Configure implements engine.Transport. Reconfiguring keeps captured samples.
func (b *Buffer) Configure(desc engine.OutputDescriptor) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.desc = desc
	b.configured = true

	return nil
}

// WriteFrames implements engine.Transport.
func (b *Buffer) WriteFrames(samples []int16) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.configured {
		return 0, ErrNotConfigured
	}
	b.samples = append(b.samples, samples...)

	return len(samples) * 2, nil
}

// Descriptor returns the descriptor passed to Configure.
func (b *Buffer) Descriptor() engine.OutputDescriptor {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.desc
}

// Samples returns a copy of the captured interleaved samples.
func (b *Buffer) Samples() []int16 {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]int16, len(b.samples))
	copy(out, b.samples)

	return out
}

// Len returns the number of captured samples.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.samples)
}

// Reset drops captured samples. The buffer stays configured.
func (b *Buffer) Reset() {
	b.mu.Lock()
	b.samples = b.samples[:0]
	b.mu.Unlock()
}
