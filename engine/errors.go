// SPDX-License-Identifier: EPL-2.0

package engine

import "errors"

var (
	ErrInvalidDescriptor = errors.New("invalid output descriptor")
	ErrConfigure         = errors.New("output transport configuration failed")
	ErrNotConfigured     = errors.New("engine is not configured")
	ErrTransport         = errors.New("output transport failed")
	ErrTransient         = errors.New("transient output transport error")
	ErrFaulted           = errors.New("engine is faulted")
	ErrPartialSample     = errors.New("transport accepted part of a sample")
)

// IsTransient reports whether a transport error is worth retrying.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTransient) {
		return true
	}

	var temp interface{ Temporary() bool }
	if errors.As(err, &temp) {
		return temp.Temporary()
	}

	return false
}
