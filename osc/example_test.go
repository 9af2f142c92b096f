// SPDX-License-Identifier: EPL-2.0

package osc_test

import (
	"fmt"

	"github.com/ik5/ctagsynth/osc"
	"github.com/ik5/ctagsynth/source"
)

// Setters clamp shape parameters on write.
func ExampleSquare_SetDutyCycle() {
	sq := osc.NewSquare(44100)

	sq.SetDutyCycle(2)
	fmt.Println(sq.DutyCycle())

	sq.SetDutyCycle(0)
	fmt.Println(sq.DutyCycle())
	// Output:
	// 0.95
	// 0.05
}

// Voices are looked up by name once the bank is registered.
func ExampleRegisterAll() {
	reg := source.NewRegistry()
	osc.RegisterAll(reg)

	fmt.Println(reg.Names())

	voice, err := reg.New(osc.NameSaw, 48000)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(voice.(*osc.Saw).SampleRate())
	// Output:
	// [fm saw sine square]
	// 48000
}
