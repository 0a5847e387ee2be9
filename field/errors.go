// SPDX-License-Identifier: MIT

package field

import "errors"

// ErrConfiguration indicates missing or conflicting construction inputs.
// Every error returned by New matches it via errors.Is.
var ErrConfiguration = errors.New("field: invalid configuration")
