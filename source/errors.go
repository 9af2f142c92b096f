// SPDX-License-Identifier: EPL-2.0

package source

import "errors"

var (
	ErrUnknownSource = errors.New("unknown sample source")
)
