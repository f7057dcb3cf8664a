// Package recipe describes selectors declaratively in YAML and compiles them
// into selector trees.
package recipe

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"cssb/selector"
)

type (
	// Recipe is a list of named selectors.
	Recipe struct {
		Selectors []Entry `yaml:"selectors"`
	}

	// Entry is a single named selector with optional properties to be used
	// when stylesheet is produced.
	Entry struct {
		Name       string            `yaml:"name"`
		Node       `yaml:",inline"`
		Properties map[string]string `yaml:"properties,omitempty"`
	}

	// Node is either a list of fragments of compound selector or a
	// combination of two nodes, never both.
	Node struct {
		Fragments []Fragment   `yaml:"fragments,omitempty"`
		Combine   *Combination `yaml:"combine,omitempty"`
	}

	// Combination joins two nodes with combinator.
	Combination struct {
		Left       Node   `yaml:"left"`
		Combinator string `yaml:"combinator"`
		Right      Node   `yaml:"right"`
	}

	// Fragment is a single selector fragment, in YAML a single key map, for
	// example "class: editable".
	Fragment struct {
		Category selector.Category
		Value    string
	}
)

// fragment keys in recipe, "attribute" is accepted as well
const attrKey = "attr"

func fragmentKey(cat selector.Category) string {
	if cat == selector.CategoryAttribute {
		return attrKey
	}
	return cat.String()
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Fragment) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode || len(value.Content) != 2 {
		return fmt.Errorf("line %d: fragment must be a map with a single key", value.Line)
	}
	key, val := value.Content[0], value.Content[1]

	name := key.Value
	if name == attrKey {
		name = selector.CategoryAttribute.String()
	}
	cat, ok := selector.ParseCategory(name)
	if !ok {
		return fmt.Errorf("line %d: unknown fragment kind '%s'", key.Line, key.Value)
	}
	if val.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: fragment '%s' value must be a string", val.Line, key.Value)
	}
	f.Category, f.Value = cat, val.Value
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (f Fragment) MarshalYAML() (any, error) {
	return map[string]string{fragmentKey(f.Category): f.Value}, nil
}

// Parse decodes recipe and checks its structure. Only structure is checked
// here, fragment order and duplicates are reported by Compiler.
func Parse(data []byte) (*Recipe, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	r := &Recipe{}
	if err := dec.Decode(r); err != nil {
		return nil, fmt.Errorf("failed to decode recipe: %w", err)
	}
	if err := r.validate(); err != nil {
		return nil, fmt.Errorf("malformed recipe: %w", err)
	}
	return r, nil
}

// Load reads and parses recipe file.
func Load(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe file: %w", err)
	}
	return Parse(data)
}

// Dump serializes recipe back to YAML.
func Dump(r *Recipe) ([]byte, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal recipe to yaml: %w", err)
	}
	return data, nil
}

func (r *Recipe) validate() error {
	if len(r.Selectors) == 0 {
		return errors.New("no selectors defined")
	}
	seen := make(map[string]struct{}, len(r.Selectors))
	for i, e := range r.Selectors {
		if e.Name == "" {
			return fmt.Errorf("selector #%d has no name", i+1)
		}
		if _, exists := seen[e.Name]; exists {
			return fmt.Errorf("duplicate selector name '%s'", e.Name)
		}
		seen[e.Name] = struct{}{}
		if err := e.Node.validate(); err != nil {
			return fmt.Errorf("selector '%s': %w", e.Name, err)
		}
	}
	return nil
}

func (n *Node) validate() error {
	switch {
	case len(n.Fragments) > 0 && n.Combine != nil:
		return errors.New("both fragments and combine are specified")
	case len(n.Fragments) > 0:
		return nil
	case n.Combine != nil:
		if err := n.Combine.Left.validate(); err != nil {
			return fmt.Errorf("left: %w", err)
		}
		if err := n.Combine.Right.validate(); err != nil {
			return fmt.Errorf("right: %w", err)
		}
		return nil
	default:
		return errors.New("neither fragments nor combine are specified")
	}
}
