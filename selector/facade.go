package selector

// Element starts new selector with element fragment.
func Element(value string) *Simple {
	return new(Simple).SetElement(value)
}

// ID starts new selector with id fragment.
func ID(value string) *Simple {
	return new(Simple).SetID(value)
}

// Class starts new selector with class fragment.
func Class(value string) *Simple {
	return new(Simple).AddClass(value)
}

// Attr starts new selector with attribute fragment.
func Attr(value string) *Simple {
	return new(Simple).AddAttribute(value)
}

// PseudoClass starts new selector with pseudo-class fragment.
func PseudoClass(value string) *Simple {
	return new(Simple).AddPseudoClass(value)
}

// PseudoElement starts new selector with pseudo-element fragment.
func PseudoElement(value string) *Simple {
	return new(Simple).SetPseudoElement(value)
}

// Combine joins left and right with combinator. Nothing is validated, operands
// are kept by reference and must not be modified afterwards.
func Combine(left Node, combinator string, right Node) *Combined {
	if left == nil || right == nil {
		// this should never happen
		panic("selector: combine with nil operand")
	}
	return &Combined{left: left, combinator: combinator, right: right}
}
