// SPDX-License-Identifier: MIT
// Package: domfuzz/sampler
//
// errors.go — sentinel errors for parameter sampling.

package sampler

import "errors"

// ErrBoundsInfeasible indicates that even the smallest (branchiness,
// depthicity) corner predicts more nodes than MaxNodeCount allows.
var ErrBoundsInfeasible = errors.New("sampler: parameters too large; reduce min branchiness/depthicity or raise max node count")

// ErrInvalidBounds indicates inverted or out-of-domain bounds.
var ErrInvalidBounds = errors.New("sampler: invalid bounds")
