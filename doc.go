// SPDX-License-Identifier: EPL-2.0

// Package ctagsynth is a real-time synthesis and streaming engine for a
// TLV320AIC3254 based audio board.
//
// The pieces live in subpackages:
//   - source: the SampleSource contract and a name based registry
//   - osc: sine (with vibrato), square, saw and two-operator FM oscillators
//   - engine: the block renderer that streams stereo frames to a Transport
//   - codec: the register driver that powers up the codec
//   - sink: transports for memory, WAV files and the host sound device
//   - audio: float PCM plumbing (resampling, mono folding)
//
// # Quick Start
//
// Play a tone on the host sound device:
//
//	out := sink.NewOto(nil)
//	eng := engine.New(out)
//	if err := eng.Configure(engine.DefaultOutputDescriptor()); err != nil {
//	    return err
//	}
//	eng.SetSource(osc.NewSine(44100))
//	return eng.Run(ctx)
//
// Or render it offline into a WAV file:
//
//	f, _ := os.Create("tone.wav")
//	defer f.Close()
//	err := ctagsynth.Bounce(osc.NewSquare(44100), ctagsynth.BounceOptions{
//	    Duration:   2 * time.Second,
//	    SampleRate: 22050,
//	    Channels:   1,
//	}, f)
//
// # Real-time rules
//
// Sources are called once per frame from the render loop. They must not
// block, lock or allocate. Oscillator setters are safe to call from any
// goroutine while the engine runs.
package ctagsynth
