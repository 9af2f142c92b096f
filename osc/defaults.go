// SPDX-License-Identifier: EPL-2.0

package osc

// Power-on parameter values shared by the oscillator constructors.
const (
	DefaultSampleRate   = 44100.0
	DefaultFrequency    = 440.0
	DefaultAmplitude    = 0.5
	DefaultLFORate      = 5.0
	DefaultLFODepth     = 0.0
	DefaultDutyCycle    = 0.5
	DefaultSkew         = 0.5
	DefaultModFrequency = 220.0
	DefaultModIndex     = 0.0
)

// Clamp ranges applied by the setters.
const (
	MinDutyCycle = 0.05
	MaxDutyCycle = 0.95
	MinSkew      = 0.01
	MaxSkew      = 0.99
)

func sampleRateOrDefault(sr float64) float64 {
	if sr <= 0 {
		return DefaultSampleRate
	}

	return sr
}
