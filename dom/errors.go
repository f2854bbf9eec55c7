// SPDX-License-Identifier: MIT
// Package: domfuzz/dom
//
// errors.go — sentinel errors for tree generation.

package dom

import "errors"

// ErrBadBranchiness indicates branchiness < 1.
var ErrBadBranchiness = errors.New("dom: branchiness must be ≥ 1")

// ErrBadDepthicity indicates depthicity < 0.
var ErrBadDepthicity = errors.New("dom: depthicity must be ≥ 0")

// ErrNilTagMap indicates a nil *tagmap.TagMap.
var ErrNilTagMap = errors.New("dom: tag map is nil")
