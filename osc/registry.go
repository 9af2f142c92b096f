// SPDX-License-Identifier: EPL-2.0

package osc

import "github.com/ik5/ctagsynth/source"

// Registry names for the oscillator bank.
const (
	NameSine   = "sine"
	NameSquare = "square"
	NameSaw    = "saw"
	NameFM     = "fm"
)

// RegisterAll adds every oscillator of the bank to reg.
func RegisterAll(reg *source.Registry) {
	reg.Register(NameSine, func(sr float64) source.SampleSource { return NewSine(sr) })
	reg.Register(NameSquare, func(sr float64) source.SampleSource { return NewSquare(sr) })
	reg.Register(NameSaw, func(sr float64) source.SampleSource { return NewSaw(sr) })
	reg.Register(NameFM, func(sr float64) source.SampleSource { return NewFM(sr) })
}
