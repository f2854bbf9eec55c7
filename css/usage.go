package css

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Usage counts emitted selector and combinator kinds. Keys keep the order in
// which they were registered: tag, universal, the simple-selector keys, then
// the combinator keys.
type Usage struct {
	m *orderedmap.OrderedMap[string, int]
}

func newUsage(keys ...[]string) *Usage {
	u := &Usage{m: orderedmap.New[string, int]()}
	for _, group := range keys {
		for _, k := range group {
			if _, ok := u.m.Get(k); !ok {
				u.m.Set(k, 0)
			}
		}
	}

	return u
}

func (u *Usage) inc(kind string) {
	n, _ := u.m.Get(kind)
	u.m.Set(kind, n+1)
}

// Get returns the count for kind (0 when unregistered).
func (u *Usage) Get(kind string) int {
	if u == nil || u.m == nil {
		return 0
	}
	n, _ := u.m.Get(kind)

	return n
}

// Keys returns the registered kinds in order.
func (u *Usage) Keys() []string {
	var out []string
	for k := range u.All() {
		out = append(out, k)
	}

	return out
}

// All yields (kind, count) pairs in order.
func (u *Usage) All() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		if u == nil || u.m == nil {
			return
		}
		for p := u.m.Oldest(); p != nil; p = p.Next() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// MarshalJSON encodes the counters as an ordered JSON object.
func (u *Usage) MarshalJSON() ([]byte, error) {
	if u == nil || u.m == nil {
		return []byte("{}"), nil
	}

	return u.m.MarshalJSON()
}
