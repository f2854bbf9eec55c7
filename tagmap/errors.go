package tagmap

import (
	"errors"

	"github.com/katalvlaran/domfuzz/random"
)

// ErrUnknownTagMap indicates that a named tag map is not registered.
var ErrUnknownTagMap = errors.New("tagmap: unknown tag map")

// ErrInvalidWeight is random.ErrInvalidWeight re-exported, so callers of Load
// need not import random to branch on it.
var ErrInvalidWeight = random.ErrInvalidWeight

// ErrInvalidTagMap indicates an asset that is not a {parent: {child: weight}}
// document, or a tag map without a name.
var ErrInvalidTagMap = errors.New("tagmap: invalid tag map")
