// SPDX-License-Identifier: EPL-2.0

package osc

import "github.com/ik5/ctagsynth/utils"

// Square is a pulse oscillator with duty-cycle control. Edges are hard;
// there is no band limiting.
type Square struct {
	sampleRate float64

	frequency      param
	phaseIncrement param
	amplitude      param
	dutyCycle      param

	phase float64
}

// NewSquare returns a square oscillator at sampleRate Hz (44100 when sampleRate <= 0).
func NewSquare(sampleRate float64) *Square {
	s := &Square{sampleRate: sampleRateOrDefault(sampleRate)}
	s.SetFrequency(DefaultFrequency)
	s.SetAmplitude(DefaultAmplitude)
	s.SetDutyCycle(DefaultDutyCycle)

	return s
}

func (s *Square) SampleRate() float64 { return s.sampleRate }

func (s *Square) SetFrequency(freq float64) {
	s.frequency.Store(freq)
	s.phaseIncrement.Store(increment(freq, s.sampleRate))
}

func (s *Square) Frequency() float64      { return s.frequency.Load() }
func (s *Square) PhaseIncrement() float64 { return s.phaseIncrement.Load() }

func (s *Square) SetAmplitude(amp float64) { s.amplitude.Store(clamp(amp, 0, 1)) }
func (s *Square) Amplitude() float64       { return s.amplitude.Load() }

// SetDutyCycle sets the fraction of the period spent high, clamped to
// [MinDutyCycle, MaxDutyCycle].
func (s *Square) SetDutyCycle(duty float64) {
	s.dutyCycle.Store(clamp(duty, MinDutyCycle, MaxDutyCycle))
}

func (s *Square) DutyCycle() float64 { return s.dutyCycle.Load() }

func (s *Square) Phase() float64 { return s.phase }

func (s *Square) NextSample() int16 {
	s.phase = wrapPhase(s.phase + s.phaseIncrement.Load())

	level := -1.0
	if s.phase < twoPi*s.dutyCycle.Load() {
		level = 1.0
	}

	return utils.Quantize(level * s.amplitude.Load())
}
