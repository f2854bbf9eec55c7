package tagmap_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/domfuzz/random"
	"github.com/katalvlaran/domfuzz/tagmap"
)

func TestLookup_Presets(t *testing.T) {
	require.Equal(t, []string{"alexa", "simple"}, tagmap.Names())

	simple, err := tagmap.Lookup(tagmap.Simple)
	require.NoError(t, err)
	require.Equal(t, "simple", simple.Name())
	require.Equal(t, []string{"div"}, simple.Children(tagmap.Root).Keys())
	require.Equal(t, []string{"div"}, simple.Children("div").Keys())

	alexa, err := tagmap.Lookup(tagmap.Alexa)
	require.NoError(t, err)
	require.True(t, alexa.HasChildren(tagmap.Root))
	// insertion order of the asset survives decoding
	require.Equal(t, "div", alexa.Children(tagmap.Root).Keys()[0])
	require.Equal(t, "li", alexa.Children("ul").Keys()[0])
}

func TestLookup_Unknown(t *testing.T) {
	_, err := tagmap.Lookup("marquee")
	require.ErrorIs(t, err, tagmap.ErrUnknownTagMap)
	require.Contains(t, err.Error(), `"marquee"`)
}

func TestAlexa_ChildrenResolve(t *testing.T) {
	alexa, err := tagmap.Lookup(tagmap.Alexa)
	require.NoError(t, err)

	for _, parent := range alexa.Parents() {
		for child := range alexa.Children(parent).All() {
			if child == tagmap.Text || tagmap.IsVoid(child) {
				continue
			}
			require.Truef(t, alexa.HasChildren(child), "%s → %s has no entry", parent, child)
		}
	}
}

func TestChildren_AbsentParent(t *testing.T) {
	simple, err := tagmap.Lookup(tagmap.Simple)
	require.NoError(t, err)

	w := simple.Children("span")
	require.NotNil(t, w)
	require.Zero(t, w.Len())
	require.False(t, simple.HasChildren("span"))
}

func TestLoad_JSONAndYAML(t *testing.T) {
	const js = `{"body": {"p": 2, "": 1}, "p": {"": 1}}`
	const ym = "body:\n  p: 2\n  \"\": 1\np:\n  \"\": 1\n"

	for name, src := range map[string]string{"json": js, "yaml": ym} {
		t.Run(name, func(t *testing.T) {
			tm, err := tagmap.Load("custom", strings.NewReader(src))
			require.NoError(t, err)
			require.Equal(t, "custom", tm.Name())
			require.Equal(t, []string{"p", ""}, tm.Children("body").Keys())
			require.Equal(t, []string{"body", "p"}, tm.Parents())
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := tagmap.Load("neg", strings.NewReader(`{"body": {"p": -1}}`))
	require.ErrorIs(t, err, tagmap.ErrInvalidWeight)
	require.True(t, errors.Is(err, random.ErrInvalidWeight))

	_, err = tagmap.Load("list", strings.NewReader("- body\n- p\n"))
	require.ErrorIs(t, err, tagmap.ErrInvalidTagMap)

	_, err = tagmap.Load("", strings.NewReader(`{}`))
	require.ErrorIs(t, err, tagmap.ErrInvalidTagMap)
}

func TestTagMap_MarshalJSON(t *testing.T) {
	tm, err := tagmap.New("m", map[string]*random.Weights{
		"body": random.NewWeights(random.P("b", 1), random.P("a", 2)),
	})
	require.NoError(t, err)

	raw, err := json.Marshal(tm)
	require.NoError(t, err)
	require.Equal(t, `{"body":{"b":1,"a":2}}`, string(raw))
}

func TestRegistry(t *testing.T) {
	custom, err := tagmap.New("custom", map[string]*random.Weights{
		tagmap.Root: random.NewWeights(random.P("p", 1)),
	})
	require.NoError(t, err)

	reg := tagmap.NewRegistry(custom)
	require.Equal(t, []string{"alexa", "custom", "simple"}, reg.Names())

	got, err := reg.Lookup("custom")
	require.NoError(t, err)
	require.Same(t, custom, got)

	_, err = reg.Lookup("nope")
	require.ErrorIs(t, err, tagmap.ErrUnknownTagMap)

	// built-ins are unaffected by registry mutations
	require.Equal(t, []string{"alexa", "simple"}, tagmap.Names())

	require.Panics(t, func() { reg.Register(nil) })
}

func TestMarkup(t *testing.T) {
	require.Equal(t, []tagmap.Attribute{{Name: "href", Value: "about:blank"}}, tagmap.Attributes("a"))
	require.Equal(t, []tagmap.Attribute{{Name: "src", Value: "about:blank"}}, tagmap.Attributes("iframe"))
	require.Equal(t, 2, strings.Count(tagmap.Attributes("img")[0].Value, "\n"))
	require.Nil(t, tagmap.Attributes("div"))

	require.True(t, tagmap.IsVoid("img"))
	require.True(t, tagmap.IsVoid("wbr"))
	require.False(t, tagmap.IsVoid("div"))
	require.Len(t, tagmap.VoidElements(), 16)
}
