// SPDX-License-Identifier: MIT
// Package: domfuzz/metadata
//
// record.go — the per-fixture metadata record and its flat tag view.

package metadata

import (
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Count is one selector or combinator usage counter.
type Count struct {
	Kind string `json:"kind" msgpack:"kind"`
	N    int    `json:"n" msgpack:"n"`
}

// Record describes one fixture.
type Record struct {
	Branchiness   int64    `json:"branchiness" msgpack:"branchiness"`
	Depthicity    int64    `json:"depthicity" msgpack:"depthicity"`
	TagMap        string   `json:"tagMap" msgpack:"tagMap"`
	Seed          uint32   `json:"seed" msgpack:"seed"`
	Source        string   `json:"source,omitempty" msgpack:"source,omitempty"`
	NodeCount     int      `json:"nodeCount" msgpack:"nodeCount"`
	ElementCount  int      `json:"elementCount" msgpack:"elementCount"`
	RuleCount     int      `json:"ruleCount" msgpack:"ruleCount"`
	SelectorsUsed []Count  `json:"selectorsUsed,omitempty" msgpack:"selectorsUsed,omitempty"`
	IDs           []string `json:"ids" msgpack:"ids"`
}

// Tag names of the flat view. Selector usage is flattened to
// SelectorsUsedPrefix + kind.
const (
	TagBranchiness      = "branchiness"
	TagDepthicity       = "depthicity"
	TagTagMap           = "tagMap"
	TagSeed             = "seed"
	TagSource           = "source"
	TagNodeCount        = "nodeCount"
	TagElementCount     = "elementCount"
	TagRuleCount        = "ruleCount"
	TagIDs              = "ids"
	SelectorsUsedPrefix = "selectorsUsed."
)

// Tags flattens r into ordered name → value pairs. Values are int64, uint32,
// int, string or []string.
func (r Record) Tags() *orderedmap.OrderedMap[string, any] {
	tags := orderedmap.New[string, any]()
	tags.Set(TagBranchiness, r.Branchiness)
	tags.Set(TagDepthicity, r.Depthicity)
	tags.Set(TagTagMap, r.TagMap)
	tags.Set(TagSeed, r.Seed)
	if r.Source != "" {
		tags.Set(TagSource, r.Source)
	}
	tags.Set(TagNodeCount, r.NodeCount)
	tags.Set(TagElementCount, r.ElementCount)
	tags.Set(TagIDs, r.IDs)
	tags.Set(TagRuleCount, r.RuleCount)
	for _, c := range r.SelectorsUsed {
		tags.Set(SelectorsUsedPrefix+c.Kind, c.N)
	}

	return tags
}

// Used returns the usage count for kind, 0 when absent.
func (r Record) Used(kind string) int {
	for _, c := range r.SelectorsUsed {
		if c.Kind == kind {
			return c.N
		}
	}

	return 0
}

// formatTag renders a tag value as a single CSV cell.
func formatTag(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case []string:
		return strings.Join(v, " ")
	default:
		return ""
	}
}
