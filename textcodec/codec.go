// Package textcodec converts values to text and back. The type parameter of
// the decoding functions selects the type the text is decoded into, so the
// result comes back with all of its methods.
package textcodec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// Marshal returns compact JSON representation of v.
func Marshal(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("unable to marshal %T to json: %w", v, err)
	}
	return string(data), nil
}

// Unmarshal decodes JSON text into a new value of type T. Fields not known to
// T are rejected.
func Unmarshal[T any](text string) (T, error) {
	var v T
	dec := json.NewDecoder(strings.NewReader(text))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return v, fmt.Errorf("unable to unmarshal json into %T: %w", v, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return v, fmt.Errorf("unable to unmarshal json into %T: trailing data", v)
	}
	return v, nil
}

// MarshalYAML returns YAML representation of v.
func MarshalYAML(v any) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("unable to marshal %T to yaml: %w", v, err)
	}
	return string(data), nil
}

// UnmarshalYAML decodes YAML text into a new value of type T. Fields not
// known to T are rejected, text must hold a single document.
func UnmarshalYAML[T any](text string) (T, error) {
	var v T
	dec := yaml.NewDecoder(bytes.NewReader([]byte(text)))
	dec.KnownFields(true)
	if err := dec.Decode(&v); err != nil {
		return v, fmt.Errorf("unable to unmarshal yaml into %T: %w", v, err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return v, fmt.Errorf("unable to unmarshal yaml into %T: trailing documents", v)
	}
	return v, nil
}
