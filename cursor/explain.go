package cursor

import (
	"github.com/xlab/treeprint"
)

// Explain renders the adapter chain of c as a tree, outermost stage first.
// Cursors that do not implement Describer are shown as "source".
func Explain[T any](c Cursor[T]) string {
	name, inputs := describe(c)
	tree := treeprint.NewWithRoot(name)
	addInputs(tree, inputs)
	return tree.String()
}

func addInputs(tree treeprint.Tree, inputs []any) {
	for _, in := range inputs {
		name, next := describe(in)
		if len(next) == 0 {
			tree.AddNode(name)
			continue
		}
		addInputs(tree.AddBranch(name), next)
	}
}

func describe(c any) (string, []any) {
	if d, ok := c.(Describer); ok {
		return d.Describe()
	}
	return "source", nil
}
