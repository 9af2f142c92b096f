// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"

	"github.com/ik5/ctagsynth/cmd/ctagsynth/config"
	"github.com/ik5/ctagsynth/osc"
	"github.com/ik5/ctagsynth/source"
)

type (
	frequencySetter interface{ SetFrequency(float64) }
	amplitudeSetter interface{ SetAmplitude(float64) }
)

// buildVoice creates the configured voice from the oscillator bank and
// applies the settings it understands.
func buildVoice(cfg config.Config, sampleRate float64) (source.SampleSource, error) {
	reg := source.NewRegistry()
	osc.RegisterAll(reg)

	voice, err := reg.New(cfg.Voice, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("%w (known: %v)", err, reg.Names())
	}

	if v, ok := voice.(frequencySetter); ok {
		v.SetFrequency(cfg.Frequency)
	}
	if v, ok := voice.(amplitudeSetter); ok {
		v.SetAmplitude(cfg.Amplitude)
	}

	switch v := voice.(type) {
	case *osc.Sine:
		v.SetLFORate(cfg.LFORate)
		v.SetLFODepth(cfg.LFODepth)
	case *osc.Square:
		v.SetDutyCycle(cfg.Duty)
	case *osc.Saw:
		v.SetSkew(cfg.Skew)
	case *osc.FM:
		v.SetModFrequency(cfg.ModFrequency)
		v.SetModIndex(cfg.ModIndex)
	}

	return voice, nil
}
