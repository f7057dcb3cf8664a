package selector

// Category identifies a kind of selector fragment. Categories are ordered the
// way fragments have to appear in a compound selector.
type Category int

const (
	CategoryElement Category = iota
	CategoryID
	CategoryClass
	CategoryAttribute
	CategoryPseudoClass
	CategoryPseudoElement
)

var categories = [...]Category{
	CategoryElement,
	CategoryID,
	CategoryClass,
	CategoryAttribute,
	CategoryPseudoClass,
	CategoryPseudoElement,
}

// Categories returns all categories in rendering order. Returned slice is a
// copy and may be modified freely.
func Categories() []Category {
	out := categories
	return out[:]
}

var categoryNames = [...]string{
	CategoryElement:       "element",
	CategoryID:            "id",
	CategoryClass:         "class",
	CategoryAttribute:     "attribute",
	CategoryPseudoClass:   "pseudo-class",
	CategoryPseudoElement: "pseudo-element",
}

// String returns human readable category name.
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// IsSingleton reports whether at most one fragment of this category is allowed.
func (c Category) IsSingleton() bool {
	return c == CategoryElement || c == CategoryID || c == CategoryPseudoElement
}

// ParseCategory maps a category name (as returned by String) back to its
// value.
func ParseCategory(name string) (Category, bool) {
	for i, n := range categoryNames {
		if n == name {
			return Category(i), true
		}
	}
	return 0, false
}
