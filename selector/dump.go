package selector

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Dump returns a tree representation of r, one branch per combinator and
// one node per fragment. Intended for tracing and test output.
func Dump(r Renderer) string {
	p := tp.New()
	p.SetValue(fmt.Sprintf("%q", render(r)))
	dump(p, r)
	return p.String()
}

func dump(p tp.Tree, r Renderer) {
	var sel *Selector
	var left, right Renderer
	var comb string
	switch m := Match(r); m {
	case m.Single(&sel):
		branch := p.AddBranch("selector")
		for _, f := range sel.fragments {
			branch.AddMetaNode(f.Kind.String(), f.Value)
		}
		if sel.err != nil {
			branch.AddMetaNode("error", sel.err.Error())
		}
	case m.Compound(&left, &comb, &right):
		branch := p.AddMetaBranch("combinator", fmt.Sprintf("%q", comb))
		dump(branch, left)
		dump(branch, right)
	default:
		if r != nil {
			p.AddNode(r.String())
		}
	}
}
