// SPDX-License-Identifier: EPL-2.0

package sink

import (
	"errors"
	"slices"
	"testing"

	"github.com/ik5/ctagsynth/engine"
)

func TestBuffer_RequiresConfigure(t *testing.T) {
	t.Parallel()

	var b Buffer
	if _, err := b.WriteFrames([]int16{1, 2}); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("WriteFrames before Configure = %v, want ErrNotConfigured", err)
	}
}

func TestBuffer_Capture(t *testing.T) {
	t.Parallel()

	var b Buffer
	desc := engine.DefaultOutputDescriptor()
	if err := b.Configure(desc); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if b.Descriptor() != desc {
		t.Errorf("Descriptor = %+v, want %+v", b.Descriptor(), desc)
	}

	n, err := b.WriteFrames([]int16{1, 1, 2, 2})
	if err != nil || n != 8 {
		t.Fatalf("WriteFrames = (%d, %v), want (8, nil)", n, err)
	}
	if _, err := b.WriteFrames([]int16{3, 3}); err != nil {
		t.Fatalf("WriteFrames: %v", err)
	}

	want := []int16{1, 1, 2, 2, 3, 3}
	got := b.Samples()
	if !slices.Equal(got, want) {
		t.Errorf("Samples = %v, want %v", got, want)
	}
	got[0] = 99
	if b.Samples()[0] != 1 {
		t.Error("Samples exposes internal storage")
	}
	if b.Len() != len(want) {
		t.Errorf("Len = %d, want %d", b.Len(), len(want))
	}

	b.Reset()
	if b.Len() != 0 {
		t.Errorf("Len after Reset = %d, want 0", b.Len())
	}
	if _, err := b.WriteFrames([]int16{4, 4}); err != nil {
		t.Errorf("WriteFrames after Reset: %v", err)
	}
}

func TestBuffer_WithEngine(t *testing.T) {
	t.Parallel()

	var b Buffer
	eng := engine.New(&b)
	if err := eng.Configure(engine.DefaultOutputDescriptor()); err != nil {
		t.Fatalf("Configure: %v", err)
	}

	for range 3 {
		if err := eng.RenderOneBlock(); err != nil {
			t.Fatalf("RenderOneBlock: %v", err)
		}
	}

	want := 3 * engine.DefaultOutputDescriptor().BlockSamples()
	if b.Len() != want {
		t.Errorf("captured %d samples, want %d", b.Len(), want)
	}
	for i, v := range b.Samples() {
		if v != 0 {
			t.Fatalf("sample %d = %d, want silence", i, v)
		}
	}
}
