package dom_test

import (
	"fmt"

	"github.com/katalvlaran/domfuzz/dom"
	"github.com/katalvlaran/domfuzz/random"
	"github.com/katalvlaran/domfuzz/tagmap"
)

// ExampleGenerate builds a two-level <div> tree and prints it.
func ExampleGenerate() {
	tm, err := tagmap.Lookup(tagmap.Simple)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	tree, err := dom.Generate(random.New(42), tm, 2, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(tree.Render("  "))
	fmt.Println(tree.IDs, tree.CountNodes())
	// Output:
	// <div id="i0">
	//   divdiv
	// </div>
	// <div id="i1">
	//   divdiv
	// </div>
	// [i0 i1] 4
}
