package css_test

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/domfuzz/css"
	"github.com/katalvlaran/domfuzz/dom"
	"github.com/katalvlaran/domfuzz/random"
	"github.com/katalvlaran/domfuzz/tagmap"
)

func defaultTables() (subjects, simple, combinators *random.Weights) {
	subjects = random.NewWeights(random.P("div", 2), random.P("*", 1), random.P("span", 1))
	simple = random.NewWeights(random.P("end", 3), random.P("id", 1), random.P("class", 1))
	combinators = random.NewWeights(
		random.P("end", 2), random.P("descendant", 1), random.P("child", 1),
		random.P("adjacentSibling", 1), random.P("generalSibling", 1))

	return subjects, simple, combinators
}

func usageMap(u *css.Usage) map[string]int {
	out := make(map[string]int)
	for k, v := range u.All() {
		out[k] = v
	}

	return out
}

// The rules continue the stream a DOM generation left off.
func TestGenerateRules_AfterDOMGolden(t *testing.T) {
	tm, err := tagmap.New("custom", map[string]*random.Weights{
		"body": random.NewWeights(random.P("div", 3), random.P("", 1), random.P("img", 1), random.P("a", 1)),
		"div":  random.NewWeights(random.P("div", 1), random.P("", 2), random.P("span", 1), random.P("a", 1)),
		"span": random.NewWeights(random.P("", 1)),
		"a":    random.NewWeights(random.P("", 3), random.P("span", 1)),
	})
	require.NoError(t, err)

	r := random.New(7)
	tree, err := dom.Generate(r, tm, 3, 2)
	require.NoError(t, err)

	subjects, simple, combinators := defaultTables()
	res, err := css.GenerateRules(r, css.Spec{
		Subjects: subjects, SimpleSelectors: simple, Combinators: combinators,
		IDs: tree.IDs, PropertyBody: "color: red", RuleCount: 4,
	})
	require.NoError(t, err)

	require.Equal(t, []string{
		"span#i3#i3 { color: red }",
		"span+* { color: red }",
		"div *+div#i0+div#i2#i3+span#i0~div { color: red }",
		"span#i1 { color: red }",
	}, res.Rules)
	require.Equal(t,
		[]string{"tag", "universal", "end", "id", "class", "descendant", "child", "adjacentSibling", "generalSibling"},
		res.SelectorsUsed.Keys())

	raw, err := json.Marshal(res.SelectorsUsed)
	require.NoError(t, err)
	require.Equal(t,
		`{"tag":8,"universal":2,"end":0,"id":7,"class":0,"descendant":1,"child":0,"adjacentSibling":4,"generalSibling":1}`,
		string(raw))
}

func TestGenerateRules_AlexaGolden(t *testing.T) {
	tm, err := tagmap.Lookup(tagmap.Alexa)
	require.NoError(t, err)

	r := random.New(5)
	tree, err := dom.Generate(r, tm, 3, 2)
	require.NoError(t, err)

	subjects, simple, combinators := defaultTables()
	res, err := css.GenerateRules(r, css.Spec{
		Subjects: subjects, SimpleSelectors: simple, Combinators: combinators,
		IDs: tree.IDs, PropertyBody: "color: red", RuleCount: 3,
	})
	require.NoError(t, err)
	require.Equal(t,
		"span { color: red }\nspan#i0~span#i7 *#i8>div>div { color: red }\nspan+div+div div { color: red }",
		res.Render())
	require.Equal(t, 9, res.SelectorsUsed.Get("tag"))
	require.Equal(t, 3, res.SelectorsUsed.Get("id"))
}

func TestGenerateRules_ClassesGolden(t *testing.T) {
	res, err := css.GenerateRules(random.New(11), css.Spec{
		Subjects:        random.NewWeights(random.P("p", 1), random.P("*", 1)),
		SimpleSelectors: random.NewWeights(random.P("class", 2), random.P("id", 1), random.P("end", 2)),
		Combinators:     random.NewWeights(random.P("child", 1), random.P("end", 1)),
		Classes:         []string{"c0", "c1"},
		IDs:             []string{"i0"},
		PropertyBody:    "margin: 0",
		RuleCount:       3,
	})
	require.NoError(t, err)
	require.Equal(t, []string{
		"*>*#i0.c1#i0>*.c1.c1.c0>*>*#i0 { margin: 0 }",
		"*>* { margin: 0 }",
		"*.c0#i0.c1>p { margin: 0 }",
	}, res.Rules)
	require.Equal(t, map[string]int{"tag": 1, "universal": 8, "class": 6, "id": 4, "end": 0, "child": 6}, usageMap(res.SelectorsUsed))
	require.Equal(t, []string{"tag", "universal", "class", "id", "end", "child"}, res.SelectorsUsed.Keys())
}

var ruleShape = regexp.MustCompile(`^[a-z0-9*]+((#i[0-9a-z]+)|(\.[a-z0-9]+))*([ >+~][a-z0-9*]+((#i[0-9a-z]+)|(\.[a-z0-9]+))*)* \{ [^{}]* \}$`)

func TestGenerateRules_WellFormed(t *testing.T) {
	subjects, simple, combinators := defaultTables()
	for seed := uint32(1); seed <= 50; seed++ {
		res, err := css.GenerateRules(random.New(seed), css.Spec{
			Subjects: subjects, SimpleSelectors: simple, Combinators: combinators,
			Classes: []string{"a", "b"}, IDs: []string{"i0", "i1", "iz"},
			PropertyBody: "display: none", RuleCount: 10,
		})
		require.NoError(t, err)
		require.Len(t, res.Rules, 10)
		for _, rule := range res.Rules {
			require.Regexp(t, ruleShape, rule)
			require.True(t, strings.HasSuffix(rule, " { display: none }"))
		}
		require.Zero(t, res.SelectorsUsed.Get("end"))
	}
}

func TestGenerateRules_EmptyPoolsRedraw(t *testing.T) {
	subjects, simple, combinators := defaultTables()
	res, err := css.GenerateRules(random.New(3), css.Spec{
		Subjects: subjects, SimpleSelectors: simple, Combinators: combinators,
		PropertyBody: "color: red", RuleCount: 20,
	})
	require.NoError(t, err)
	for _, rule := range res.Rules {
		require.NotContains(t, rule, "#")
		require.NotContains(t, rule, ".")
	}
	require.Zero(t, res.SelectorsUsed.Get("id"))
	require.Zero(t, res.SelectorsUsed.Get("class"))
}

func TestGenerateRules_ZeroRules(t *testing.T) {
	subjects, simple, combinators := defaultTables()
	res, err := css.GenerateRules(random.New(3), css.Spec{
		Subjects: subjects, SimpleSelectors: simple, Combinators: combinators,
	})
	require.NoError(t, err)
	require.Empty(t, res.Rules)
	require.Equal(t, "", res.Render())
	require.Equal(t, 9, len(res.SelectorsUsed.Keys()))
}

func TestGenerateRules_Validation(t *testing.T) {
	subjects, simple, combinators := defaultTables()
	base := css.Spec{Subjects: subjects, SimpleSelectors: simple, Combinators: combinators, RuleCount: 1}

	cases := []struct {
		name   string
		mutate func(*css.Spec)
		want   error
	}{
		{"unknown kind", func(s *css.Spec) {
			s.SimpleSelectors = random.NewWeights(random.P("end", 1), random.P("attribute", 1))
		}, css.ErrUnknownSelectorKind},
		{"unknown combinator", func(s *css.Spec) {
			s.Combinators = random.NewWeights(random.P("end", 1), random.P("column", 1))
		}, css.ErrUnknownCombinator},
		{"simple without end", func(s *css.Spec) {
			s.SimpleSelectors = random.NewWeights(random.P("id", 1))
		}, css.ErrMissingEnd},
		{"combinators without end", func(s *css.Spec) {
			s.Combinators = random.NewWeights(random.P("child", 1))
		}, css.ErrMissingEnd},
		{"brace in body", func(s *css.Spec) { s.PropertyBody = "} body {" }, css.ErrInvalidPropertyBody},
		{"negative count", func(s *css.Spec) { s.RuleCount = -1 }, css.ErrInvalidRuleCount},
		{"no subjects", func(s *css.Spec) { s.Subjects = nil }, random.ErrEmptyInput},
		{"empty subject", func(s *css.Spec) {
			s.Subjects = random.NewWeights(random.P("div", 1), random.P("", 1))
		}, css.ErrInvalidSubject},
		{"brace in subject", func(s *css.Spec) {
			s.Subjects = random.NewWeights(random.P("a{", 1))
		}, css.ErrInvalidSubject},
		{"closing brace in subject", func(s *css.Spec) {
			s.Subjects = random.NewWeights(random.P("a}", 1))
		}, css.ErrInvalidSubject},
		{"space in subject", func(s *css.Spec) {
			s.Subjects = random.NewWeights(random.P("div p", 1))
		}, css.ErrInvalidSubject},
		{"child token in subject", func(s *css.Spec) {
			s.Subjects = random.NewWeights(random.P(">", 1))
		}, css.ErrInvalidSubject},
		{"adjacent token in subject", func(s *css.Spec) {
			s.Subjects = random.NewWeights(random.P("a+b", 1))
		}, css.ErrInvalidSubject},
		{"sibling token in subject", func(s *css.Spec) {
			s.Subjects = random.NewWeights(random.P("~", 1))
		}, css.ErrInvalidSubject},
		{"zero weight", func(s *css.Spec) {
			s.Subjects = random.NewWeights(random.P("div", 0))
		}, random.ErrInvalidWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec := base
			tc.mutate(&spec)
			_, err := css.GenerateRules(random.New(1), spec)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestUsage_NilSafe(t *testing.T) {
	var u *css.Usage
	require.Zero(t, u.Get("tag"))
	require.Empty(t, u.Keys())
	raw, err := u.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, "{}", string(raw))
}
