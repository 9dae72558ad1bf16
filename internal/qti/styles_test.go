package qti

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSerializeStyles(t *testing.T) {
	tests := []struct {
		name     string
		styles   map[string]string
		expected string
	}{
		{
			name:     "nil map",
			styles:   nil,
			expected: "",
		},
		{
			name:     "empty map",
			styles:   map[string]string{},
			expected: "",
		},
		{
			name: "sentinel values are dropped",
			styles: map[string]string{
				"color":      "",
				"background": "transparent",
				"width":      "auto",
				"padding":    "4px",
			},
			expected: "padding: 4px",
		},
		{
			name: "all sentinels yields empty string",
			styles: map[string]string{
				"color": "",
				"width": "auto",
			},
			expected: "",
		},
		{
			name: "camelCase keys become kebab-case",
			styles: map[string]string{
				"backgroundColor": "red",
				"fontSize":        "14px",
			},
			expected: "background-color: red; font-size: 14px",
		},
		{
			name: "keys are sorted for deterministic output",
			styles: map[string]string{
				"zIndex": "2",
				"color":  "blue",
				"margin": "0",
			},
			expected: "color: blue; margin: 0; z-index: 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SerializeStyles(tt.styles))
		})
	}
}

func TestParseStyles(t *testing.T) {
	tests := []struct {
		name     string
		attr     string
		expected map[string]string
	}{
		{
			name:     "empty attribute",
			attr:     "",
			expected: map[string]string{},
		},
		{
			name: "basic declarations",
			attr: "color: red; font-size: 14px",
			expected: map[string]string{
				"color":     "red",
				"font-size": "14px",
			},
		},
		{
			name: "trailing semicolon and extra whitespace",
			attr: "  padding : 4px ; ",
			expected: map[string]string{
				"padding": "4px",
			},
		},
		{
			name: "declarations without a colon are skipped",
			attr: "color: red; nonsense; margin: 0",
			expected: map[string]string{
				"color":  "red",
				"margin": "0",
			},
		},
		{
			name: "only the first colon splits key from value",
			attr: "background: url(foo:bar)",
			expected: map[string]string{
				"background": "url(foo:bar)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseStyles(tt.attr))
		})
	}
}

func TestSerializeParseRoundTrip(t *testing.T) {
	in := map[string]string{
		"backgroundColor": "#fff",
		"fontWeight":      "bold",
	}
	out := ParseStyles(SerializeStyles(in))
	assert.Equal(t, map[string]string{
		"background-color": "#fff",
		"font-weight":      "bold",
	}, out)
}

func TestStyleAttr(t *testing.T) {
	assert.Equal(t, "", styleAttr(map[string]string{"color": ""}))
	assert.Equal(t, ` style="color: red"`, styleAttr(map[string]string{"color": "red"}))
}
