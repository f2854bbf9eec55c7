package css_test

import (
	"fmt"

	"github.com/katalvlaran/domfuzz/css"
	"github.com/katalvlaran/domfuzz/random"
)

// ExampleGenerateRules draws two rules targeting a fixed id pool.
func ExampleGenerateRules() {
	res, err := css.GenerateRules(random.New(7), css.Spec{
		Subjects:        random.NewWeights(random.P("div", 1)),
		SimpleSelectors: random.NewWeights(random.P("end", 1)),
		Combinators:     random.NewWeights(random.P("end", 1)),
		IDs:             []string{"i0"},
		PropertyBody:    "color: red",
		RuleCount:       2,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Render())
	fmt.Println("tag selectors:", res.SelectorsUsed.Get(css.KindTag))
	// Output:
	// div { color: red }
	// div { color: red }
	// tag selectors: 2
}
