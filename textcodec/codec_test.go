package textcodec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cssb/geometry"
	"cssb/textcodec"
)

func TestJSON_RoundTrip(t *testing.T) {
	text, err := textcodec.Marshal(geometry.NewRectangle(4, 2.5))
	require.NoError(t, err)
	assert.Equal(t, `{"width":4,"height":2.5}`, text)

	r, err := textcodec.Unmarshal[geometry.Rectangle](text)
	require.NoError(t, err)
	// decoded value carries its type's behavior
	assert.Equal(t, 10.0, r.Area())
}

func TestJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"malformed", `{"width":`},
		{"unknown field", `{"width":1,"depth":2}`},
		{"wrong type", `{"width":"wide"}`},
		{"trailing data", `{"width":1} {"width":2}`},
		{"trailing brace", `{"width":1}}`},
		{"trailing bracket", `{"width":1}]`},
		{"trailing scalar", `{"width":1} 7`},
		{"empty", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := textcodec.Unmarshal[geometry.Rectangle](tt.text)
			assert.Error(t, err)
		})
	}
}

func TestJSON_TrailingWhitespace(t *testing.T) {
	r, err := textcodec.Unmarshal[geometry.Rectangle]("{\"width\":2,\"height\":3}\n\t ")
	require.NoError(t, err)
	assert.Equal(t, 6.0, r.Area())
}

func TestJSON_MarshalError(t *testing.T) {
	_, err := textcodec.Marshal(make(chan int))
	assert.Error(t, err)
}

func TestJSON_Generic(t *testing.T) {
	m, err := textcodec.Unmarshal[map[string][]int](`{"a":[1,2],"b":[]}`)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, m["a"])

	text, err := textcodec.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"a":[1,2],"b":[]}`, text)
}

func TestYAML_RoundTrip(t *testing.T) {
	text, err := textcodec.MarshalYAML(geometry.NewRectangle(3, 3))
	require.NoError(t, err)
	assert.Equal(t, "width: 3\nheight: 3\n", text)

	r, err := textcodec.UnmarshalYAML[geometry.Rectangle](text)
	require.NoError(t, err)
	assert.Equal(t, 9.0, r.Area())
}

func TestYAML_UnknownField(t *testing.T) {
	_, err := textcodec.UnmarshalYAML[geometry.Rectangle]("width: 1\ndepth: 2\n")
	assert.Error(t, err)
}

func TestYAML_TrailingDocuments(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"second document", "width: 1\n---\nheight: 2\n"},
		{"second document same fields", "width: 1\n---\nwidth: 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := textcodec.UnmarshalYAML[geometry.Rectangle](tt.text)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "trailing documents")
		})
	}

	r, err := textcodec.UnmarshalYAML[geometry.Rectangle]("---\nwidth: 2\nheight: 2\n")
	require.NoError(t, err)
	assert.Equal(t, 4.0, r.Area())
}
