// SPDX-License-Identifier: EPL-2.0

// Package codec drives a TLV320AIC3254 stereo audio codec over a two-wire
// (I2C) bus.
//
// The driver is write-only. Init opens the bus and applies a fixed power-up
// sequence (soft reset, clock and PLL setup, analog routing, output stage
// enable). After that only the headphone and line-out volume registers are
// written, on demand. Nothing is read back or cached.
//
// # Register access
//
// The chip exposes a paged register map. Every write is two transactions to
// the device address: [0x00, page] selects the page, then [register, value]
// writes on it.
//
// # Bus
//
// Any type with the Bus methods can carry the traffic. Its Tx method has the
// same shape as TinyGo's machine.I2C, so on a board the peripheral can be
// wrapped directly. TraceBus logs and records transactions for host runs
// and tests.
//
//	c := codec.New(bus)
//	if err := c.Init(codec.DefaultBusConfig()); err != nil {
//	    return err
//	}
//	c.SetHeadphoneVolume(80)
//	c.SetLineOutVolume(60)
package codec
