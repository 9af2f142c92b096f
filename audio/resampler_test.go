// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
	"testing"
)

func TestResampler_Metadata(t *testing.T) {
	t.Parallel()

	r := NewResampler(newSilentSource(44100, 2, 1000), 8000)

	if r.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", r.SampleRate())
	}
	if r.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", r.Channels())
	}
}

func TestResampler_SameRateIsIdentity(t *testing.T) {
	t.Parallel()

	src := newMockSource(8000, 2, 300, func(i, c int) float32 {
		return float32(i%50)/50 - float32(c)*0.25
	})
	ref := newMockSource(8000, 2, 300, src.waveform)

	got, err := drain(NewResampler(src, 8000), 64)
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
	want, _ := drain(ref, 64)

	if len(got) != len(want) {
		t.Fatalf("got %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestResampler_OutputLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		srcRate  int
		dstRate  int
		channels int
		frames   int
		want     int
	}{
		{"downsample 44.1k to 8k", 44100, 8000, 1, 44100, 8000},
		{"downsample 48k to 16k", 48000, 16000, 2, 4800, 1600},
		{"upsample 8k to 16k", 8000, 16000, 1, 800, 1600},
		{"upsample 22.05k to 44.1k stereo", 22050, 44100, 2, 2205, 4410},
		{"single frame", 44100, 22050, 1, 1, 1},
		{"odd length", 3, 2, 1, 5, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := newSineSource(tt.srcRate, tt.channels, tt.frames, 100)
			out, err := drain(NewResampler(src, tt.dstRate), 512*tt.channels)
			if err != nil {
				t.Fatalf("drain: %v", err)
			}
			if got := len(out) / tt.channels; got != tt.want {
				t.Errorf("frames = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestResampler_Upsampling(t *testing.T) {
	t.Parallel()

	// A linear ramp is reproduced exactly by Catmull-Rom away from the edges.
	src := newMockSource(1000, 1, 100, func(i, _ int) float32 { return float32(i) / 100 })
	out, err := drain(NewResampler(src, 2000), 256)
	if err != nil {
		t.Fatalf("drain: %v", err)
	}

	for i := 2; i < 190; i++ {
		want := float64(i) / 200
		if math.Abs(float64(out[i])-want) > 1e-5 {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], want)
		}
	}
}

func TestResampler_DownsamplingPreservesTone(t *testing.T) {
	t.Parallel()

	src := newSineSource(44100, 1, 44100, 440)
	out, err := drain(NewResampler(src, 8000), 1024)
	if err != nil {
		t.Fatalf("drain: %v", err)
	}

	var peak float64
	crossings := 0
	for i, v := range out {
		peak = math.Max(peak, math.Abs(float64(v)))
		if i > 0 && (out[i-1] < 0) != (v < 0) {
			crossings++
		}
	}

	if peak > 1.05 {
		t.Errorf("peak = %v, resampler overshoots", peak)
	}
	if peak < 0.5 {
		t.Errorf("peak = %v, tone lost", peak)
	}
	// 440 Hz for one second crosses zero about 880 times.
	if crossings < 860 || crossings > 900 {
		t.Errorf("zero crossings = %d, want about 880", crossings)
	}
}

func TestResampler_InvalidDstSize(t *testing.T) {
	t.Parallel()

	r := NewResampler(newSilentSource(8000, 2, 10), 4000)
	if _, err := r.ReadSamples(make([]float32, 3)); !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("err = %v, want ErrInvalidDstSize", err)
	}
}

func TestResampler_EmptySource(t *testing.T) {
	t.Parallel()

	r := NewResampler(newSilentSource(8000, 1, 0), 4000)
	buf := make([]float32, 16)

	for range 2 {
		n, err := r.ReadSamples(buf)
		if n != 0 || err != io.EOF {
			t.Errorf("ReadSamples = (%d, %v), want (0, io.EOF)", n, err)
		}
	}
}

func TestResampler_SourceError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	r := NewResampler(&failingSource{channels: 1, left: 10, err: boom}, 4000)

	_, err := drain(r, 4)
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped source error", err)
	}
}

func TestResampler_ZeroAllocs(t *testing.T) {
	src := newSineSource(44100, 2, 1<<30, 440)
	r := NewResampler(src, 48000)
	buf := make([]float32, 512)
	r.ReadSamples(buf)

	allocs := testing.AllocsPerRun(100, func() {
		r.ReadSamples(buf)
	})
	if allocs != 0 {
		t.Errorf("ReadSamples allocates %v times per call, want 0", allocs)
	}
}

func BenchmarkResampler(b *testing.B) {
	src := newSineSource(44100, 2, 1<<30, 440)
	r := NewResampler(src, 48000)
	buf := make([]float32, 4096)

	b.ReportAllocs()

	for b.Loop() {
		r.ReadSamples(buf)
	}
}
