// SPDX-License-Identifier: EPL-2.0

package codec

// BusConfig selects the bus pins and clock.
type BusConfig struct {
	SDA       int
	SCL       int
	Frequency uint32
}

// DefaultBusConfig is the codec bus of the reference board.
func DefaultBusConfig() BusConfig {
	return BusConfig{
		SDA:       41,
		SCL:       40,
		Frequency: 400_000,
	}
}

// Bus is a register-oriented two-wire bus.
type Bus interface {
	// Open claims the pins in cfg.
	Open(cfg BusConfig) error

	// Tx writes w to the device at addr, then reads len(r) bytes into r.
	Tx(addr uint16, w, r []byte) error
}
