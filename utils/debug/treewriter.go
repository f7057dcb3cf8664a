// Package debug has helpers producing human readable dumps of selector trees.
package debug

import (
	"fmt"
	"strconv"
	"strings"

	"cssb/selector"
)

// TreeWriter accumulates indented lines.
type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

func (tw TreeWriter) Line(depth int, format string, args ...any) {
	indent(tw.w, depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

func (tw TreeWriter) TextBlock(depth int, label, value string) {
	indent(tw.w, depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
}

// Node writes selector tree starting at depth: combined nodes with their
// combinator followed by operands, compound selectors with their fragments.
func (tw TreeWriter) Node(depth int, n selector.Node) {
	switch n := n.(type) {
	case *selector.Combined:
		tw.TextBlock(depth, "combine", n.Combinator())
		tw.Node(depth+1, n.Left())
		tw.Node(depth+1, n.Right())
	case *selector.Simple:
		tw.TextBlock(depth, "compound", n.Render())
		for _, f := range n.Fragments() {
			tw.TextBlock(depth+1, f.Category.String(), f.Value)
		}
	default:
		tw.TextBlock(depth, fmt.Sprintf("%T", n), n.Render())
	}
}

func indent(w *strings.Builder, depth int) {
	for range depth {
		w.WriteString("  ")
	}
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
