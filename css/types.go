// Package css produces stylesheets out of rendered selectors.
package css

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Rule represents a single CSS rule (selector + properties).
type Rule struct {
	Name       string            // Recipe entry name, emitted as a comment when not empty
	Selector   string            // Rendered selector
	Properties map[string]string // Property name -> raw value
}

// Stylesheet is an ordered list of rules.
type Stylesheet struct {
	Rules []Rule
}

// Add appends rule to the stylesheet.
func (s *Stylesheet) Add(name, selector string, props map[string]string) {
	s.Rules = append(s.Rules, Rule{Name: name, Selector: selector, Properties: props})
}

// WriteTo writes the stylesheet to w in rule order, implementing io.WriterTo.
// Property order within a rule is sorted alphabetically for deterministic output.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i := range s.Rules {
		n, err := writeRule(w, &s.Rules[i])
		total += int64(n)
		if err != nil {
			return total, err
		}

		// Add blank line between rules (except after last)
		if i < len(s.Rules)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// writeRule writes a single CSS rule to w.
func writeRule(w io.Writer, rule *Rule) (int, error) {
	var total int
	if rule.Name != "" {
		n, err := fmt.Fprintf(w, "/* %s */\n", commentSafe(rule.Name))
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err := fmt.Fprintf(w, "%s {\n", rule.Selector)
	total += n
	if err != nil {
		return total, err
	}
	n, err = writeProperties(w, rule.Properties)
	total += n
	if err != nil {
		return total, err
	}
	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}

// writeProperties writes property declarations sorted alphabetically.
func writeProperties(w io.Writer, props map[string]string) (int, error) {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	var total int
	for _, name := range names {
		n, err := fmt.Fprintf(w, "  %s: %s;\n", name, props[name])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// commentSafe makes sure text cannot terminate the comment it is placed in.
func commentSafe(s string) string {
	return strings.ReplaceAll(s, "*/", "* /")
}
