// SPDX-License-Identifier: EPL-2.0

// Package audio provides float PCM stream plumbing for offline rendering.
//
// A Stream yields interleaved float32 samples in [-1, 1]. Streams chain:
//
//	pcm := audio.NewPCM16Stream(samples, 44100, 2)
//	rs := audio.NewResampler(pcm, 22050)
//	mono := audio.NewMonoMixer(rs)
//
// Convert16 builds that chain for a target rate and channel count and
// quantizes the result back to 16-bit PCM.
//
// # Resampling
//
// The Resampler uses Catmull-Rom cubic interpolation over a four-frame
// window. When downsampling it runs a one-pole low-pass ahead of the
// interpolator to tame aliasing.
//
// # End of stream
//
// ReadSamples returns io.EOF when no more data is available, possibly
// together with the final samples:
//
//	for {
//	    n, err := s.ReadSamples(buf)
//	    consume(buf[:n])
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
