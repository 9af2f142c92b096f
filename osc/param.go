// SPDX-License-Identifier: EPL-2.0

package osc

import (
	"math"
	"sync/atomic"
)

const twoPi = 2 * math.Pi

// param is a float64 shared between a controller and the render loop.
type param struct {
	bits atomic.Uint64
}

func (p *param) Load() float64 { return math.Float64frombits(p.bits.Load()) }

func (p *param) Store(v float64) { p.bits.Store(math.Float64bits(v)) }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// increment is the per-sample phase step of a freq Hz oscillator.
func increment(freq, sampleRate float64) float64 {
	return twoPi * freq / sampleRate
}

// wrapPhase folds p back into [0, 2π).
func wrapPhase(p float64) float64 {
	if p >= twoPi {
		p -= twoPi
		if p >= twoPi {
			p = math.Mod(p, twoPi)
		}
	} else if p < 0 {
		p += twoPi
		if p < 0 {
			p = math.Mod(p, twoPi) + twoPi
		}
	}

	// p+2π can round up to exactly 2π for tiny negative p.
	if p >= twoPi || math.IsNaN(p) {
		return 0
	}

	return p
}
