package debug

import (
	"testing"

	"cssb/selector"
)

func TestTreeWriter_Line(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{"no depth", 0, "root", nil, "root\n"},
		{"indented", 2, "%s = %d", []any{"count", 5}, "    count = 5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Line(tt.depth, tt.format, tt.args...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_TextBlock(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		label string
		value string
		want  string
	}{
		{"empty value", 0, "compound", "", "compound: \n"},
		{"plain", 1, "class", "note", "  class: \"note\"\n"},
		{"quotes are escaped", 0, "attribute", `href$=".png"`, "attribute: \"href$=\\\".png\\\"\"\n"},
		{"descendant combinator", 1, "combine", " ", "  combine: \" \"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.TextBlock(tt.depth, tt.label, tt.value)
			if got := tw.String(); got != tt.want {
				t.Errorf("TextBlock() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_Node(t *testing.T) {
	node := selector.Combine(
		selector.Element("div"), selector.NextSibling,
		selector.Combine(selector.Element("table").AddClass("wide"), selector.SubsequentSibling, selector.Element("tr")),
	)

	tw := NewTreeWriter()
	tw.Line(0, "rows")
	tw.Node(1, node)

	want := `rows
  combine: "+"
    compound: "div"
      element: "div"
    combine: "~"
      compound: "table.wide"
        element: "table"
        class: "wide"
      compound: "tr"
        element: "tr"
`
	if got := tw.String(); got != want {
		t.Errorf("Node():\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestTreeWriter_NodeEmptyCompound(t *testing.T) {
	tw := NewTreeWriter()
	tw.Node(0, new(selector.Simple))
	if got, want := tw.String(), "compound: \n"; got != want {
		t.Errorf("Node() = %q, want %q", got, want)
	}
}
