package recipe

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cssb/css"
	"cssb/selector"
)

// starters map fragment category to the function starting a new selector.
var starters = map[selector.Category]func(string) *selector.Simple{
	selector.CategoryElement:       selector.Element,
	selector.CategoryID:            selector.ID,
	selector.CategoryClass:         selector.Class,
	selector.CategoryAttribute:     selector.Attr,
	selector.CategoryPseudoClass:   selector.PseudoClass,
	selector.CategoryPseudoElement: selector.PseudoElement,
}

// Compiled is a recipe entry turned into selector tree.
type Compiled struct {
	Name       string
	Node       selector.Node
	Properties map[string]string
}

// Selector returns rendered selector text.
func (c Compiled) Selector() string {
	return c.Node.Render()
}

// Compiler turns recipes into selectors.
type Compiler struct {
	log *zap.Logger
}

// NewCompiler creates a new recipe compiler.
func NewCompiler(log *zap.Logger) *Compiler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Compiler{log: log.Named("recipe")}
}

// Compile builds every entry of the recipe. Entries with rejected fragments
// are skipped and their errors are combined into returned error, so the
// result may be non-empty even when error is not nil.
func (c *Compiler) Compile(r *Recipe) ([]Compiled, error) {
	var (
		out  = make([]Compiled, 0, len(r.Selectors))
		errs error
	)
	for _, e := range r.Selectors {
		node := c.Build(&e.Node)
		if err := node.Err(); err != nil {
			c.log.Debug("Rejected selector", zap.String("name", e.Name), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("selector '%s': %w", e.Name, err))
			continue
		}
		c.log.Debug("Compiled selector", zap.String("name", e.Name), zap.Stringer("selector", node))
		out = append(out, Compiled{Name: e.Name, Node: node, Properties: e.Properties})
	}
	return out, errs
}

// Build turns node into selector tree applying fragments in document order.
// Node must be valid (see Parse).
func (c *Compiler) Build(n *Node) selector.Node {
	if n.Combine != nil {
		return selector.Combine(c.Build(&n.Combine.Left), n.Combine.Combinator, c.Build(&n.Combine.Right))
	}

	first := n.Fragments[0]
	s := starters[first.Category](first.Value)
	for _, f := range n.Fragments[1:] {
		s.Add(f.Category, f.Value)
	}
	return s
}

// Stylesheet produces stylesheet with a rule per compiled entry.
func Stylesheet(compiled []Compiled) *css.Stylesheet {
	sheet := &css.Stylesheet{Rules: make([]css.Rule, 0, len(compiled))}
	for _, c := range compiled {
		sheet.Add(c.Name, c.Selector(), c.Properties)
	}
	return sheet
}
