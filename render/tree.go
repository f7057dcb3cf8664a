package render

import (
	"io"

	"cssb/recipe"
	"cssb/utils/debug"
)

// writeTree outputs structure of every compiled selector, one block per
// recipe entry.
func writeTree(w io.Writer, compiled []recipe.Compiled) error {
	tw := debug.NewTreeWriter()
	for _, c := range compiled {
		tw.Line(0, "%s", c.Name)
		tw.Node(1, c.Node)
	}
	_, err := io.WriteString(w, tw.String())
	return err
}
