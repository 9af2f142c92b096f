// SPDX-License-Identifier: EPL-2.0

package engine

// State of an Engine.
type State int32

const (
	Uninitialized State = iota
	Configured
	Streaming
	Faulted
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Configured:
		return "configured"
	case Streaming:
		return "streaming"
	case Faulted:
		return "faulted"
	default:
		return "unknown"
	}
}
