// SPDX-License-Identifier: EPL-2.0

// Package engine implements the streaming render engine.
//
// An Engine owns a Transport (the digital audio output), holds the active
// sample source and produces fixed-size blocks of interleaved stereo 16-bit
// frames. Both channels of a frame carry the same sample.
//
// # States
//
//	Uninitialized --Configure--> Configured --RenderOneBlock--> Streaming
//	                                                  |
//	                               fatal transport error
//	                                                  v
//	                                               Faulted
//
// # Driving the engine
//
// RenderOneBlock is the single driving primitive. It renders one block and
// hands it to the transport, blocking until the transport accepts it; the
// transport's consumption rate therefore paces the engine. Run loops
// RenderOneBlock until its context is cancelled:
//
//	eng := engine.New(transport)
//	if err := eng.Configure(engine.DefaultOutputDescriptor()); err != nil {
//	    return err
//	}
//	eng.SetSource(osc.NewSine(44100))
//	err := eng.Run(ctx)
//
// # Sources
//
// SetSource may be called from any goroutine at any time. The active source
// is an atomic pointer, read once per frame by the render loop; a nil source
// renders silence. The engine never frees a source. A caller that replaces a
// source must not reuse or tear down the old one until the render loop can no
// longer be inside its NextSample, e.g. after the next RenderOneBlock returns.
//
// # Transport errors
//
// Errors marked transient (wrapping ErrTransient, or implementing
// Temporary() bool returning true) are retried with a short backoff up to
// the configured budget. Any other error, or a spent budget, moves the
// engine to Faulted and is returned wrapped in ErrTransport. A faulted
// engine must be configured again before it streams.
package engine
