// SPDX-License-Identifier: MIT
package randcluster

import "errors"

// ErrRadiusRange indicates a negative target radius, which can never admit
// any edge relaxation.
var ErrRadiusRange = errors.New("randcluster: radius must be >= 0")

// ErrEmptyCluster indicates Contract was called with no covered nodes —
// a bug rather than a user error, since Run always covers every node
// known to the registry before returning.
var ErrEmptyCluster = errors.New("randcluster: no node carries a cluster assignment")
