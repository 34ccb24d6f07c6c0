// SPDX-License-Identifier: MIT
package deltastep

import "errors"

// ErrDeltaRange indicates delta < 1, which makes no edge light or
// progress impossible.
var ErrDeltaRange = errors.New("deltastep: delta must be >= 1")

// ErrEmptyResult indicates no node ever received a finite distance —
// root was never materialized, a bug rather than a user error.
var ErrEmptyResult = errors.New("deltastep: no node ever reached a finite distance")
