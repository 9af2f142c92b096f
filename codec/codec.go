// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"
)

// Codec is a write-only TLV320AIC3254 driver. It is not safe for concurrent
// use; serialize calls from controllers.
type Codec struct {
	bus      Bus
	addr     uint16
	logger   *slog.Logger
	sleep    func(time.Duration)
	failures atomic.Uint64
	buf      [2]byte
}

// Option configures a Codec.
type Option func(*Codec)

// WithAddress overrides the device address.
func WithAddress(addr uint16) Option {
	return func(c *Codec) {
		c.addr = addr
	}
}

// WithLogger sets the logger used for write failures and progress.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Codec) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSleep replaces time.Sleep for the settle delays.
func WithSleep(sleep func(time.Duration)) Option {
	return func(c *Codec) {
		if sleep != nil {
			c.sleep = sleep
		}
	}
}

// New returns a driver for the codec on bus. The bus is not touched until Init.
func New(bus Bus, opts ...Option) *Codec {
	c := &Codec{
		bus:    bus,
		addr:   DefaultAddress,
		logger: slog.Default(),
		sleep:  time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("component", "codec", "address", c.addr)

	return c
}

// Init opens the bus and applies the power-up sequence.
//
// Only a bus that cannot be opened is reported. Register writes are best
// effort: a failed write is logged and counted, and the sequence continues.
func (c *Codec) Init(cfg BusConfig) error {
	if c.bus == nil {
		return fmt.Errorf("%w: no bus", ErrBusOpen)
	}
	if err := c.bus.Open(cfg); err != nil {
		return fmt.Errorf("%w: sda %d scl %d: %w", ErrBusOpen, cfg.SDA, cfg.SCL, err)
	}

	for i, w := range powerUp {
		c.write(w.Page, w.Register, w.Value)
		if i == 0 {
			c.sleep(SettleDelay)
		}
	}
	c.sleep(SettleDelay)

	c.logger.Info("codec configured",
		"writes", len(powerUp),
		"write failures", c.failures.Load(),
	)

	return nil
}

// SetHeadphoneVolume sets both headphone channels. level is clamped to [0,100].
func (c *Codec) SetHeadphoneVolume(level int) {
	v := HeadphoneVolumeRegister(level)
	c.write(volumePage, regHeadphoneLeft, v)
	c.write(volumePage, regHeadphoneRight, v)
}

// SetLineOutVolume sets both line-out channels. level is clamped to [0,100].
func (c *Codec) SetLineOutVolume(level int) {
	v := LineOutVolumeRegister(level)
	c.write(volumePage, regLineOutLeft, v)
	c.write(volumePage, regLineOutRight, v)
}

// WriteFailures returns how many register writes the bus rejected.
func (c *Codec) WriteFailures() uint64 {
	return c.failures.Load()
}

func (c *Codec) write(page, reg, value uint8) {
	c.buf = [2]byte{pageSelect, page}
	if err := c.bus.Tx(c.addr, c.buf[:], nil); err != nil {
		c.fail(page, reg, value, err)
		return
	}

	c.buf = [2]byte{reg, value}
	if err := c.bus.Tx(c.addr, c.buf[:], nil); err != nil {
		c.fail(page, reg, value, err)
	}
}

func (c *Codec) fail(page, reg, value uint8, err error) {
	c.failures.Add(1)
	c.logger.Warn("codec register write failed",
		"page", page,
		"register", reg,
		"value", fmt.Sprintf("%#02x", value),
		"err", err,
	)
}
