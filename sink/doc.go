// SPDX-License-Identifier: EPL-2.0

// Package sink provides engine transports.
//
// Buffer captures everything in memory. WAV streams 16-bit PCM into a file
// through github.com/go-audio/wav. Oto plays on the host sound device through
// github.com/ebitengine/oto/v3; builds tagged headless replace it with a
// stub that reports ErrNoAudioDevice.
//
// All transports accept interleaved int16 samples and report the number of
// bytes accepted, as engine.Transport requires.
package sink
