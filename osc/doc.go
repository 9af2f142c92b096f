// SPDX-License-Identifier: EPL-2.0

// Package osc provides the oscillator bank: four independent sample sources
// built on a phase accumulator.
//
// # Oscillators
//
//   - Sine: sine carrier with a vibrato LFO that modulates frequency
//   - Square: pulse wave with duty-cycle control in [0.05, 0.95]
//   - Saw: two-segment ramp whose peak position (skew) is in [0.01, 0.99]
//   - FM: two-operator voice where the modulator is added to the carrier phase
//
// Every oscillator advances its phase by 2π·frequency/sampleRate per sample,
// keeps the phase in [0, 2π), maps it to a value in [-1, 1], scales it by the
// amplitude and quantizes it with round(v * 32767).
//
// # Usage
//
//	sine := osc.NewSine(44100)
//	sine.SetFrequency(220)
//	sine.SetAmplitude(0.8)
//	sine.SetLFORate(6)
//	sine.SetLFODepth(3) // ±3 Hz vibrato
//
//	eng.SetSource(sine)
//
// # Concurrency
//
// NextSample belongs to the render loop; call it from one goroutine only.
// Setters may be called at any time from any goroutine. Parameters live in
// atomic words, so the render loop reads the latest written value without
// locking; a change lands on the next sample. Setters clamp on write and
// recompute cached phase increments immediately.
package osc
