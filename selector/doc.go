// Package selector assembles CSS selector strings from typed fragments.
//
// A compound selector is built by chaining fragment operations on a Simple
// builder, started by one of the package level functions:
//
//	sel := selector.Element("a").AddAttribute(`href$=".png"`).AddPseudoClass("focus")
//	if err := sel.Err(); err != nil {
//		// duplicate or out of order fragment
//	}
//	fmt.Println(sel.Render()) // a[href$=".png"]:focus
//
// Fragments must be added in the order element, id, class, attribute,
// pseudo-class, pseudo-element, and element, id and pseudo-element may each be
// set once. A rejected fragment leaves the builder untouched, the first failure
// is kept and reported by Err, and later fragment calls on the same builder are
// ignored.
//
// Complex selectors are trees of Combined nodes:
//
//	selector.Combine(selector.Element("div"), "+",
//		selector.Combine(selector.Element("table"), "~", selector.Element("tr")))
//
// renders "div + table ~ tr". Combinator tokens are reproduced verbatim.
package selector
