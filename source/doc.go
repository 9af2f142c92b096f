// SPDX-License-Identifier: EPL-2.0

// Package source defines the sample source contract every sound generator
// satisfies.
//
// A SampleSource produces one signed 16-bit sample per call:
//
//	type SampleSource interface {
//	    NextSample() int16
//	}
//
// The render engine calls NextSample once per output frame, at the full
// output rate, from its render loop. Implementations must therefore be
// allocation free, must not block and must not take locks. The only side
// effect of a call is advancing the implementation's own oscillator state.
//
// # Adapters
//
// Func turns a plain function into a SampleSource, and Silence is a source
// that always returns 0:
//
//	click := source.Func(func() int16 { return 1000 })
//	var quiet source.Silence
//
// Stream adapts a SampleSource into an audio.Stream so generated audio can
// flow through the float32 processing pipeline (resampling, mixing):
//
//	s := source.NewStream(sine, 44100, 44100) // one second
//	buf := make([]float32, 4096)
//	n, err := s.ReadSamples(buf)
//
// # Registry
//
// A Registry maps names to factories so callers can pick a voice by name:
//
//	reg := source.NewRegistry()
//	osc.RegisterAll(reg)
//	sine, err := reg.New("sine", 44100)
package source
