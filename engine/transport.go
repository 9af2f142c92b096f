// SPDX-License-Identifier: EPL-2.0

package engine

// Transport is the streaming audio output the engine renders into.
type Transport interface {
	// Configure prepares the output for the described format. It is called
	// once per Engine.Configure.
	Configure(desc OutputDescriptor) error

	// WriteFrames transmits interleaved stereo samples. It blocks until the
	// output accepts the data and returns the number of bytes accepted,
	// which must cover whole samples. A count that splits a sample faults
	// the engine.
	WriteFrames(samples []int16) (int, error)
}
