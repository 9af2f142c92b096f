// SPDX-License-Identifier: EPL-2.0

package osc

import (
	"math"

	"github.com/ik5/ctagsynth/utils"
)

// Sine is a sine oscillator with a vibrato LFO.
//
// The LFO modulates frequency: each sample the carrier increment is
// recomputed as 2π·(frequency + sin(lfoPhase)·depth)/sampleRate.
type Sine struct {
	sampleRate float64

	frequency      param
	phaseIncrement param
	amplitude      param

	lfoRate      param
	lfoDepth     param
	lfoIncrement param

	// render loop only
	phase    float64
	lfoPhase float64
}

// NewSine returns a sine oscillator at sampleRate Hz (44100 when sampleRate <= 0).
func NewSine(sampleRate float64) *Sine {
	s := &Sine{sampleRate: sampleRateOrDefault(sampleRate)}
	s.SetFrequency(DefaultFrequency)
	s.SetAmplitude(DefaultAmplitude)
	s.SetLFORate(DefaultLFORate)
	s.SetLFODepth(DefaultLFODepth)

	return s
}

func (s *Sine) SampleRate() float64 { return s.sampleRate }

// SetFrequency sets the carrier frequency in Hz.
func (s *Sine) SetFrequency(freq float64) {
	s.frequency.Store(freq)
	s.phaseIncrement.Store(increment(freq, s.sampleRate))
}

func (s *Sine) Frequency() float64 { return s.frequency.Load() }

// PhaseIncrement is the nominal per-sample step without vibrato.
func (s *Sine) PhaseIncrement() float64 { return s.phaseIncrement.Load() }

// SetAmplitude sets the output level, clamped to [0, 1].
func (s *Sine) SetAmplitude(amp float64) { s.amplitude.Store(clamp(amp, 0, 1)) }

func (s *Sine) Amplitude() float64 { return s.amplitude.Load() }

// SetLFORate sets the vibrato rate in Hz.
func (s *Sine) SetLFORate(rate float64) {
	s.lfoRate.Store(rate)
	s.lfoIncrement.Store(increment(rate, s.sampleRate))
}

func (s *Sine) LFORate() float64 { return s.lfoRate.Load() }

// SetLFODepth sets the vibrato depth in Hz. Zero disables vibrato.
func (s *Sine) SetLFODepth(depth float64) { s.lfoDepth.Store(depth) }

func (s *Sine) LFODepth() float64 { return s.lfoDepth.Load() }

// Phase returns the carrier phase in [0, 2π).
func (s *Sine) Phase() float64 { return s.phase }

func (s *Sine) NextSample() int16 {
	s.lfoPhase = wrapPhase(s.lfoPhase + s.lfoIncrement.Load())
	vibrato := math.Sin(s.lfoPhase) * s.lfoDepth.Load()

	s.phase = wrapPhase(s.phase + increment(s.frequency.Load()+vibrato, s.sampleRate))

	return utils.Quantize(math.Sin(s.phase) * s.amplitude.Load())
}
