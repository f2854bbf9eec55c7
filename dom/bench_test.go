package dom_test

import (
	"testing"

	"github.com/katalvlaran/domfuzz/dom"
	"github.com/katalvlaran/domfuzz/random"
	"github.com/katalvlaran/domfuzz/tagmap"
)

func BenchmarkGenerate_Alexa(b *testing.B) {
	tm := mustLookup(b, tagmap.Alexa)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := dom.Generate(random.New(uint32(i)+1), tm, 6, 4); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRender_Simple(b *testing.B) {
	tree, err := dom.Generate(random.New(1), mustLookup(b, tagmap.Simple), 4, 5)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tree.Render("  ")
	}
}
