// SPDX-License-Identifier: MIT
package builder

import "strconv"

// IDFn generates a vertex identifier from its zero-based index. It must be
// a pure, deterministic function: given the same idx, it always returns
// the same string.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0->"0", 42->"42".
// It is the only ID scheme any fixture topology in this module actually
// uses; builderConfig keeps idFn as a swappable hook (WithIDScheme) rather
// than hard-coding DefaultIDFn, matching the functional-options shape used
// throughout this package.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}
