// SPDX-License-Identifier: EPL-2.0

package sink

import (
	"io"
	"sync"
)

// RingBuffer is a bounded byte FIFO between a producer and a player.
// Write blocks while the buffer is full and Read blocks while it is empty,
// so a slow reader pushes back on the writer instead of losing audio.
type RingBuffer struct {
	buf      []byte
	readPos  int
	writePos int
	count    int
	mu       sync.Mutex
	cond     *sync.Cond
	closed   bool
}

// NewRingBuffer returns a ring buffer holding up to capacity bytes.
func NewRingBuffer(capacity int) *RingBuffer {
	rb := &RingBuffer{buf: make([]byte, max(capacity, 1))}
	rb.cond = sync.NewCond(&rb.mu)

	return rb
}

// Write copies all of p into the buffer, waiting for space as needed.
// It returns early with ErrClosed if the buffer is closed.
func (rb *RingBuffer) Write(p []byte) (int, error) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	written := 0
	for written < len(p) {
		for rb.count == len(rb.buf) && !rb.closed {
			rb.cond.Wait()
		}
		if rb.closed {
			return written, ErrClosed
		}

		n := min(len(p)-written, len(rb.buf)-rb.count)
		first := min(n, len(rb.buf)-rb.writePos)
		copy(rb.buf[rb.writePos:], p[written:written+first])
		copy(rb.buf, p[written+first:written+n])

		rb.writePos = (rb.writePos + n) % len(rb.buf)
		rb.count += n
		written += n

		rb.cond.Broadcast()
	}

	return written, nil
}

// Read implements io.Reader. It blocks until data is available and returns
// io.EOF once the buffer is closed and drained.
func (rb *RingBuffer) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	rb.mu.Lock()
	defer rb.mu.Unlock()

	for rb.count == 0 {
		if rb.closed {
			return 0, io.EOF
		}
		rb.cond.Wait()
	}

	n := min(len(p), rb.count)
	first := min(n, len(rb.buf)-rb.readPos)
	copy(p, rb.buf[rb.readPos:rb.readPos+first])
	copy(p[first:n], rb.buf[:n-first])

	rb.readPos = (rb.readPos + n) % len(rb.buf)
	rb.count -= n

	rb.cond.Broadcast()

	return n, nil
}

// Buffered returns the number of bytes waiting to be read.
func (rb *RingBuffer) Buffered() int {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	return rb.count
}

// Cap returns the capacity in bytes.
func (rb *RingBuffer) Cap() int {
	return len(rb.buf)
}

// Close wakes all waiters. Pending data can still be read.
func (rb *RingBuffer) Close() error {
	rb.mu.Lock()
	rb.closed = true
	rb.mu.Unlock()

	rb.cond.Broadcast()

	return nil
}
