// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/ctagsynth/utils"
)

// lowPassAlpha is the one-pole coefficient used when downsampling.
const lowPassAlpha = 0.5

// Resampler converts a Stream to another sample rate, keeping its channel
// count. A source of n frames yields ceil(n * dstRate / srcRate) frames.
type Resampler struct {
	src      Stream
	dstRate  int
	channels int

	// Output frame k sits at source position k*num/den.
	num, den int64
	out      int64
	idx      int64

	// win holds frames idx-1, idx, idx+1 and idx+2.
	// real marks slots backed by source data rather than edge padding.
	win  [4][]float32
	real [4]bool

	frame  []float32
	primed bool
	eof    bool
	done   bool

	lowPass bool
	lpState []float32
	lpReady bool
}

// NewResampler returns a resampler producing dstRate Hz from src.
func NewResampler(src Stream, dstRate int) *Resampler {
	channels := max(src.Channels(), 1)
	num, den := int64(1), int64(1)
	if dstRate > 0 && src.SampleRate() > 0 {
		num, den = int64(src.SampleRate()), int64(dstRate)
	}

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		channels: channels,
		num:      num,
		den:      den,
		frame:    make([]float32, channels),
		lowPass:  num > den,
		lpState:  make([]float32, channels),
	}
	for i := range r.win {
		r.win[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }

// pull reads one source frame into dst. It reports false once the source
// is exhausted.
func (r *Resampler) pull(dst []float32) (bool, error) {
	if r.eof {
		return false, nil
	}

	got := 0
	for got < r.channels {
		n, err := r.src.ReadSamples(r.frame[got:])
		got += n
		if err == io.EOF {
			r.eof = true
			break
		}
		if err != nil {
			return false, fmt.Errorf("resampler source: %w", err)
		}
		if n == 0 {
			return false, io.ErrNoProgress
		}
	}
	if got < r.channels {
		return false, nil
	}

	if r.lowPass {
		if !r.lpReady {
			copy(r.lpState, r.frame)
			r.lpReady = true
		}
		for c, v := range r.frame {
			r.lpState[c] = lowPassAlpha*v + (1-lowPassAlpha)*r.lpState[c]
		}
		copy(dst, r.lpState)
	} else {
		copy(dst, r.frame)
	}

	return true, nil
}

func (r *Resampler) fill(slot int) error {
	ok, err := r.pull(r.win[slot])
	if err != nil {
		return err
	}
	r.real[slot] = ok
	if !ok {
		copy(r.win[slot], r.win[slot-1])
	}

	return nil
}

func (r *Resampler) prime() error {
	ok, err := r.pull(r.win[1])
	if err != nil {
		return err
	}
	if !ok {
		r.done = true
		return io.EOF
	}
	r.real[1] = true
	copy(r.win[0], r.win[1])

	if err := r.fill(2); err != nil {
		return err
	}

	return r.fill(3)
}

func (r *Resampler) shift() error {
	w0 := r.win[0]
	copy(r.win[:3], r.win[1:])
	copy(r.real[:3], r.real[1:])
	r.win[3] = w0

	return r.fill(3)
}

// ReadSamples implements Stream. len(dst) must be a multiple of Channels.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if r.done {
		return 0, io.EOF
	}
	if !r.primed {
		r.primed = true
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		pos := r.out * r.num
		for r.idx < pos/r.den {
			r.idx++
			if err := r.shift(); err != nil {
				return written * r.channels, err
			}
			if !r.real[1] {
				r.done = true
				return written * r.channels, io.EOF
			}
		}

		x := float32(pos%r.den) / float32(r.den)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = utils.CubicInterpolate(r.win[0][c], r.win[1][c], r.win[2][c], r.win[3][c], x)
		}

		written++
		r.out++
	}

	return written * r.channels, nil
}
