// SPDX-License-Identifier: EPL-2.0

package codec

import "errors"

var (
	ErrBusOpen   = errors.New("codec bus could not be opened")
	ErrBusClosed = errors.New("codec bus is not open")
)
