package selector

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateFragment is reported when a singleton category is set twice.
	ErrDuplicateFragment = errors.New("element, id and pseudo-element may each occur at most once in a selector")
	// ErrOutOfOrderFragment is reported when a fragment is added after a fragment
	// of a later category.
	ErrOutOfOrderFragment = errors.New("selector fragments must be added in order: element, id, class, attribute, pseudo-class, pseudo-element")
)

// FragmentError describes rejected fragment.
type FragmentError struct {
	Kind     error    // ErrDuplicateFragment or ErrOutOfOrderFragment
	Category Category // category of the rejected fragment
	Value    string   // rejected fragment value
	Blocking Category // for out of order fragments - populated category which blocked it
}

func (e *FragmentError) Error() string {
	if errors.Is(e.Kind, ErrOutOfOrderFragment) {
		return fmt.Sprintf("%s %q after %s: %v", e.Category, e.Value, e.Blocking, e.Kind)
	}
	return fmt.Sprintf("%s %q: %v", e.Category, e.Value, e.Kind)
}

func (e *FragmentError) Unwrap() error {
	return e.Kind
}
