// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"testing"

	"github.com/ik5/ctagsynth/cmd/ctagsynth/config"
	"github.com/ik5/ctagsynth/osc"
	"github.com/ik5/ctagsynth/source"
)

func baseConfig() config.Config {
	return config.Config{
		Voice:        osc.NameSine,
		Frequency:    330,
		Amplitude:    0.25,
		LFORate:      6,
		LFODepth:     3,
		Duty:         0.2,
		Skew:         0.8,
		ModFrequency: 110,
		ModIndex:     1.5,
	}
}

func TestBuildVoice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		voice string
		check func(t *testing.T, src source.SampleSource)
	}{
		{
			name:  "sine",
			voice: osc.NameSine,
			check: func(t *testing.T, src source.SampleSource) {
				s := src.(*osc.Sine)
				if s.Frequency() != 330 || s.Amplitude() != 0.25 || s.LFORate() != 6 || s.LFODepth() != 3 {
					t.Errorf("sine params = %v %v %v %v", s.Frequency(), s.Amplitude(), s.LFORate(), s.LFODepth())
				}
			},
		},
		{
			name:  "square",
			voice: osc.NameSquare,
			check: func(t *testing.T, src source.SampleSource) {
				if d := src.(*osc.Square).DutyCycle(); d != 0.2 {
					t.Errorf("duty = %v, want 0.2", d)
				}
			},
		},
		{
			name:  "saw",
			voice: osc.NameSaw,
			check: func(t *testing.T, src source.SampleSource) {
				if s := src.(*osc.Saw).Skew(); s != 0.8 {
					t.Errorf("skew = %v, want 0.8", s)
				}
			},
		},
		{
			name:  "fm",
			voice: osc.NameFM,
			check: func(t *testing.T, src source.SampleSource) {
				f := src.(*osc.FM)
				if f.ModFrequency() != 110 || f.ModIndex() != 1.5 || f.Frequency() != 330 {
					t.Errorf("fm params = %v %v %v", f.ModFrequency(), f.ModIndex(), f.Frequency())
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := baseConfig()
			cfg.Voice = tt.voice

			src, err := buildVoice(cfg, 44100)
			if err != nil {
				t.Fatalf("buildVoice: %v", err)
			}
			tt.check(t, src)
		})
	}
}

func TestBuildVoice_Unknown(t *testing.T) {
	t.Parallel()

	cfg := baseConfig()
	cfg.Voice = "theremin"

	if _, err := buildVoice(cfg, 44100); !errors.Is(err, source.ErrUnknownSource) {
		t.Errorf("err = %v, want ErrUnknownSource", err)
	}
}
