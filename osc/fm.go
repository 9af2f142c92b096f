// SPDX-License-Identifier: EPL-2.0

package osc

import (
	"math"

	"github.com/ik5/ctagsynth/utils"
)

// FM is a two-operator voice. The modulator output sin(modPhase)·index is
// added straight onto the carrier phase every sample (phase modulation), so
// an index of 0 sounds exactly like a plain sine at the carrier frequency.
type FM struct {
	sampleRate float64

	carrierFrequency param
	carrierIncrement param
	amplitude        param

	modFrequency param
	modIncrement param
	modIndex     param

	carrierPhase float64
	modPhase     float64
}

// NewFM returns an FM voice at sampleRate Hz (44100 when sampleRate <= 0).
func NewFM(sampleRate float64) *FM {
	f := &FM{sampleRate: sampleRateOrDefault(sampleRate)}
	f.SetFrequency(DefaultFrequency)
	f.SetAmplitude(DefaultAmplitude)
	f.SetModFrequency(DefaultModFrequency)
	f.SetModIndex(DefaultModIndex)

	return f
}

func (f *FM) SampleRate() float64 { return f.sampleRate }

// SetFrequency sets the carrier frequency in Hz.
func (f *FM) SetFrequency(freq float64) {
	f.carrierFrequency.Store(freq)
	f.carrierIncrement.Store(increment(freq, f.sampleRate))
}

func (f *FM) Frequency() float64      { return f.carrierFrequency.Load() }
func (f *FM) PhaseIncrement() float64 { return f.carrierIncrement.Load() }

func (f *FM) SetAmplitude(amp float64) { f.amplitude.Store(clamp(amp, 0, 1)) }
func (f *FM) Amplitude() float64       { return f.amplitude.Load() }

// SetModFrequency sets the modulator frequency in Hz.
func (f *FM) SetModFrequency(freq float64) {
	f.modFrequency.Store(freq)
	f.modIncrement.Store(increment(freq, f.sampleRate))
}

func (f *FM) ModFrequency() float64 { return f.modFrequency.Load() }

// SetModIndex sets the modulation depth in radians of carrier phase.
func (f *FM) SetModIndex(index float64) { f.modIndex.Store(index) }

func (f *FM) ModIndex() float64 { return f.modIndex.Load() }

// Phase returns the carrier phase in [0, 2π).
func (f *FM) Phase() float64 { return f.carrierPhase }

// ModPhase returns the modulator phase in [0, 2π).
func (f *FM) ModPhase() float64 { return f.modPhase }

func (f *FM) NextSample() int16 {
	f.modPhase = wrapPhase(f.modPhase + f.modIncrement.Load())
	mod := math.Sin(f.modPhase) * f.modIndex.Load()

	f.carrierPhase = wrapPhase(f.carrierPhase + f.carrierIncrement.Load() + mod)

	return utils.Quantize(math.Sin(f.carrierPhase) * f.amplitude.Load())
}
