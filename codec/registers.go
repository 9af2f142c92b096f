// SPDX-License-Identifier: EPL-2.0

package codec

import "time"

// DefaultAddress is the 7-bit bus address of the codec.
const DefaultAddress = 0x18

// SettleDelay is the pause after soft reset and after the final routing write.
const SettleDelay = 10 * time.Millisecond

const pageSelect = 0x00

// Volume registers, all on page 1.
const (
	volumePage = 1

	regHeadphoneLeft  = 16
	regHeadphoneRight = 17
	regLineOutLeft    = 18
	regLineOutRight   = 19
)

// Volume register ranges. A higher level maps closer to the loud end, which
// is the smaller register value.
const (
	headphoneQuiet = 0x3B
	headphoneLoud  = 0x14
	lineOutQuiet   = 0x3A
	lineOutLoud    = 0x1D
)

// Write is one page/register/value entry of the codec register map.
type Write struct {
	Page     uint8
	Register uint8
	Value    uint8
}

// powerUp is the power sequencing, clock, routing and output-stage
// configuration applied by Init, in order.
var powerUp = []Write{
	{0, 1, 0x01}, // soft reset
	{1, 1, 0x08}, {1, 2, 0x01}, {1, 10, 0x08},
	{0, 27, 0x10}, {0, 28, 0x00}, {0, 4, 0x00},
	{0, 5, 0x00}, {0, 13, 0x00}, {0, 14, 0x80},
	{0, 20, 0x80}, {0, 11, 0x81}, {0, 12, 0x82},
	{0, 18, 0x81}, {0, 19, 0x82}, {1, 14, 0x08},
	{1, 15, 0x08}, {1, 12, 0x08}, {1, 13, 0x08},
	{0, 64, 0x00}, {0, 65, 0x00}, {0, 66, 0x00},
	{0, 63, 0xD4}, {1, 9, 0x3C}, {1, 16, 0x00},
	{1, 17, 0x00}, {1, 18, 0x06}, {1, 19, 0x06},
	{1, 52, 0x40}, {1, 55, 0x40}, {1, 54, 0x40},
	{1, 57, 0x40}, {1, 59, 0x00}, {1, 60, 0x00},
	{0, 81, 0xC0}, {0, 82, 0x00},
}

// PowerUpSequence returns a copy of the writes Init applies.
func PowerUpSequence() []Write {
	return append([]Write(nil), powerUp...)
}

// mapRange is Arduino's integer map(): linear, truncating toward zero.
func mapRange(x, inMin, inMax, outMin, outMax int) int {
	return (x-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}

func clampLevel(level int) int {
	return min(max(level, 0), 100)
}

// HeadphoneVolumeRegister maps a 0-100 level onto the headphone volume register.
func HeadphoneVolumeRegister(level int) uint8 {
	return uint8(mapRange(clampLevel(level), 0, 100, headphoneQuiet, headphoneLoud))
}

// LineOutVolumeRegister maps a 0-100 level onto the line-out volume register.
func LineOutVolumeRegister(level int) uint8 {
	return uint8(mapRange(clampLevel(level), 0, 100, lineOutQuiet, lineOutLoud))
}
