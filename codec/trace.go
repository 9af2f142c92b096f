// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"fmt"
	"log/slog"
	"sync"
)

// Tx is one recorded bus transaction.
type Tx struct {
	Addr  uint16
	Write []byte
}

// TraceBus is a host-side Bus that logs every transaction and keeps a copy.
// Fail, when set, is consulted before a transaction is accepted.
type TraceBus struct {
	Logger  *slog.Logger
	OpenErr error
	Fail    func(tx Tx) error

	mu     sync.Mutex
	open   bool
	config BusConfig
	txs    []Tx
}

// NewTraceBus returns a TraceBus logging to logger, or slog.Default when nil.
func NewTraceBus(logger *slog.Logger) *TraceBus {
	if logger == nil {
		logger = slog.Default()
	}

	return &TraceBus{Logger: logger.With("component", "tracebus")}
}

func (b *TraceBus) log() *slog.Logger {
	if b.Logger == nil {
		return slog.Default()
	}

	return b.Logger
}

// Open implements Bus.
func (b *TraceBus) Open(cfg BusConfig) error {
	if b.OpenErr != nil {
		return b.OpenErr
	}

	b.mu.Lock()
	b.open = true
	b.config = cfg
	b.mu.Unlock()

	b.log().Debug("bus open", "sda", cfg.SDA, "scl", cfg.SCL, "frequency", cfg.Frequency)

	return nil
}

// Tx implements Bus. Reads are answered with zeros.
func (b *TraceBus) Tx(addr uint16, w, r []byte) error {
	tx := Tx{Addr: addr, Write: append([]byte(nil), w...)}

	b.mu.Lock()
	open := b.open
	b.mu.Unlock()
	if !open {
		return ErrBusClosed
	}

	if b.Fail != nil {
		if err := b.Fail(tx); err != nil {
			b.log().Debug("bus tx rejected", "addr", fmt.Sprintf("%#02x", addr), "err", err)
			return err
		}
	}

	clear(r)

	b.mu.Lock()
	b.txs = append(b.txs, tx)
	b.mu.Unlock()

	b.log().Debug("bus tx", "addr", fmt.Sprintf("%#02x", addr), "write", fmt.Sprintf("% x", w))

	return nil
}

// Config returns the configuration passed to Open.
func (b *TraceBus) Config() BusConfig {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.config
}

// Transactions returns a copy of the accepted transactions.
func (b *TraceBus) Transactions() []Tx {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]Tx(nil), b.txs...)
}

// Writes decodes the accepted transactions as page-select/register pairs.
// A register write without a preceding page select is reported on page 0.
func (b *TraceBus) Writes() []Write {
	txs := b.Transactions()

	var (
		page   uint8
		writes []Write
	)
	for _, tx := range txs {
		if len(tx.Write) != 2 {
			continue
		}
		if tx.Write[0] == pageSelect {
			page = tx.Write[1]
			continue
		}
		writes = append(writes, Write{Page: page, Register: tx.Write[0], Value: tx.Write[1]})
	}

	return writes
}

// Reset forgets recorded transactions.
func (b *TraceBus) Reset() {
	b.mu.Lock()
	b.txs = nil
	b.mu.Unlock()
}
