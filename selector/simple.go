package selector

import (
	"strings"
)

// Node is anything that can be rendered as a selector: either a Simple builder
// or a Combined pair.
type Node interface {
	// Render returns canonical selector text.
	Render() string
	// Err returns first fragment error recorded anywhere in the node.
	Err() error
	String() string
}

// Fragment is a single accepted selector fragment.
type Fragment struct {
	Category Category
	Value    string
}

// Simple accumulates fragments of a single compound selector. Use package
// level functions (Element, ID, Class, ...) to start a new one. Simple is not
// safe for concurrent use and must not be modified after it was rendered or
// combined.
type Simple struct {
	element       string
	id            string
	classes       []string
	attributes    []string
	pseudoClasses []string
	pseudoElement string

	err error
}

// SetElement sets element (type) selector, e.g. "div".
func (s *Simple) SetElement(value string) *Simple {
	if s.check(CategoryElement, value) {
		s.element = value
	}
	return s
}

// SetID sets id selector without leading '#'.
func (s *Simple) SetID(value string) *Simple {
	if s.check(CategoryID, value) {
		s.id = value
	}
	return s
}

// AddClass appends class selector without leading '.'.
func (s *Simple) AddClass(value string) *Simple {
	if s.check(CategoryClass, value) {
		s.classes = append(s.classes, value)
	}
	return s
}

// AddAttribute appends attribute selector content without brackets, e.g.
// `href$=".png"`.
func (s *Simple) AddAttribute(value string) *Simple {
	if s.check(CategoryAttribute, value) {
		s.attributes = append(s.attributes, value)
	}
	return s
}

// AddPseudoClass appends pseudo-class without leading ':'.
func (s *Simple) AddPseudoClass(value string) *Simple {
	if s.check(CategoryPseudoClass, value) {
		s.pseudoClasses = append(s.pseudoClasses, value)
	}
	return s
}

// SetPseudoElement sets pseudo-element without leading "::".
func (s *Simple) SetPseudoElement(value string) *Simple {
	if s.check(CategoryPseudoElement, value) {
		s.pseudoElement = value
	}
	return s
}

// Add applies fragment of arbitrary category. It is what the typed methods
// above do and is handy when fragments come from data rather than code.
func (s *Simple) Add(cat Category, value string) *Simple {
	switch cat {
	case CategoryElement:
		return s.SetElement(value)
	case CategoryID:
		return s.SetID(value)
	case CategoryClass:
		return s.AddClass(value)
	case CategoryAttribute:
		return s.AddAttribute(value)
	case CategoryPseudoClass:
		return s.AddPseudoClass(value)
	case CategoryPseudoElement:
		return s.SetPseudoElement(value)
	default:
		// this should never happen
		panic("unknown selector fragment category")
	}
}

// Err returns the first rejected fragment, if any.
func (s *Simple) Err() error {
	return s.err
}

// Has reports whether any fragment of the category is present.
func (s *Simple) Has(cat Category) bool {
	switch cat {
	case CategoryElement:
		return s.element != ""
	case CategoryID:
		return s.id != ""
	case CategoryClass:
		return len(s.classes) > 0
	case CategoryAttribute:
		return len(s.attributes) > 0
	case CategoryPseudoClass:
		return len(s.pseudoClasses) > 0
	case CategoryPseudoElement:
		return s.pseudoElement != ""
	default:
		return false
	}
}

// IsEmpty reports whether no fragments were added.
func (s *Simple) IsEmpty() bool {
	for cat := CategoryElement; cat <= CategoryPseudoElement; cat++ {
		if s.Has(cat) {
			return false
		}
	}
	return true
}

// Fragments returns accepted fragments in rendering order.
func (s *Simple) Fragments() []Fragment {
	out := make([]Fragment, 0, 3+len(s.classes)+len(s.attributes)+len(s.pseudoClasses))
	if s.element != "" {
		out = append(out, Fragment{CategoryElement, s.element})
	}
	if s.id != "" {
		out = append(out, Fragment{CategoryID, s.id})
	}
	for _, v := range s.classes {
		out = append(out, Fragment{CategoryClass, v})
	}
	for _, v := range s.attributes {
		out = append(out, Fragment{CategoryAttribute, v})
	}
	for _, v := range s.pseudoClasses {
		out = append(out, Fragment{CategoryPseudoClass, v})
	}
	if s.pseudoElement != "" {
		out = append(out, Fragment{CategoryPseudoElement, s.pseudoElement})
	}
	return out
}

// check validates the fragment against the current state and records an error
// if it has to be rejected. Returns true when mutation may proceed.
func (s *Simple) check(cat Category, value string) bool {
	if s.err != nil {
		return false
	}
	if cat.IsSingleton() && s.Has(cat) {
		s.err = &FragmentError{Kind: ErrDuplicateFragment, Category: cat, Value: value}
		return false
	}
	for later := cat + 1; later <= CategoryPseudoElement; later++ {
		if s.Has(later) {
			s.err = &FragmentError{Kind: ErrOutOfOrderFragment, Category: cat, Value: value, Blocking: later}
			return false
		}
	}
	return true
}

// Render returns selector text: element, #id, .classes, [attributes],
// :pseudo-classes and ::pseudo-element with no separators. Rejected fragments
// are not rendered, check Err before using the result.
func (s *Simple) Render() string {
	var sb strings.Builder
	sb.WriteString(s.element)
	if s.id != "" {
		sb.WriteByte('#')
		sb.WriteString(s.id)
	}
	for _, c := range s.classes {
		sb.WriteByte('.')
		sb.WriteString(c)
	}
	for _, a := range s.attributes {
		sb.WriteByte('[')
		sb.WriteString(a)
		sb.WriteByte(']')
	}
	for _, p := range s.pseudoClasses {
		sb.WriteByte(':')
		sb.WriteString(p)
	}
	if s.pseudoElement != "" {
		sb.WriteString("::")
		sb.WriteString(s.pseudoElement)
	}
	return sb.String()
}

func (s *Simple) String() string {
	return s.Render()
}
