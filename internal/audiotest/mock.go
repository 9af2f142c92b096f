// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds test doubles for sources and transports.
package audiotest

import (
	"sync"

	"github.com/ik5/ctagsynth/engine"
)

// RampSource counts up from Start by one per sample, wrapping at int16 bounds.
type RampSource struct {
	Start int16
	n     int16
}

func (r *RampSource) NextSample() int16 {
	v := r.Start + r.n
	r.n++
	return v
}

// ConstantSource always returns Value.
type ConstantSource struct {
	Value int16
	Calls int
}

func (c *ConstantSource) NextSample() int16 {
	c.Calls++
	return c.Value
}

// RecordingTransport accepts every write and keeps a copy of each block.
type RecordingTransport struct {
	mu         sync.Mutex
	Descriptor engine.OutputDescriptor
	Configured int
	ConfigErr  error
	blocks     [][]int16
}

func (r *RecordingTransport) Configure(desc engine.OutputDescriptor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ConfigErr != nil {
		return r.ConfigErr
	}
	r.Descriptor = desc
	r.Configured++
	return nil
}

func (r *RecordingTransport) WriteFrames(samples []int16) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.blocks = append(r.blocks, append([]int16(nil), samples...))
	return len(samples) * 2, nil
}

// Blocks returns every write received so far.
func (r *RecordingTransport) Blocks() [][]int16 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([][]int16(nil), r.blocks...)
}

// Last returns the most recent write, or nil.
func (r *RecordingTransport) Last() []int16 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.blocks) == 0 {
		return nil
	}
	return r.blocks[len(r.blocks)-1]
}

// Step scripts one WriteFrames outcome. Accept is the number of samples
// taken; a negative value accepts the whole write.
type Step struct {
	Accept int
	Err    error
}

// ScriptedTransport plays Steps in order, then accepts everything.
type ScriptedTransport struct {
	RecordingTransport
	Steps []Step
	Calls int
}

func (s *ScriptedTransport) WriteFrames(samples []int16) (int, error) {
	s.Calls++
	if len(s.Steps) == 0 {
		return s.RecordingTransport.WriteFrames(samples)
	}

	step := s.Steps[0]
	s.Steps = s.Steps[1:]

	take := step.Accept
	if take < 0 || take > len(samples) {
		take = len(samples)
	}
	if take > 0 {
		s.RecordingTransport.WriteFrames(samples[:take])
	}

	return take * 2, step.Err
}

// Temporary is an error that reports itself as temporary.
type Temporary struct{ Msg string }

func (t Temporary) Error() string   { return t.Msg }
func (t Temporary) Temporary() bool { return true }
