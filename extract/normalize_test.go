package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDigits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"arabic indic digits", "٠١٢", "012"},
		{"all ten digits", "٠١٢٣٤٥٦٧٨٩", "0123456789"},
		{"mixed with text", "اتصل ٠١٠ الآن", "اتصل 010 الآن"},
		{"ascii untouched", "01012345678", "01012345678"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDigits(tt.input))
		})
	}
}

func TestNormalizeDigitsIdempotent(t *testing.T) {
	inputs := []string{"٠١٢", "abc٥def", "already 123"}
	for _, in := range inputs {
		once := NormalizeDigits(in)
		assert.Equal(t, once, NormalizeDigits(once))
	}
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"runs and newlines", "  a   b\n c ", "a b c"},
		{"tabs", "a\t\tb", "a b"},
		{"only whitespace", " \n\t ", ""},
		{"already collapsed", "a b", "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CollapseWhitespace(tt.input))
		})
	}
}

func TestCollapseWhitespaceIdempotent(t *testing.T) {
	inputs := []string{"  a   b\n c ", "x", "", "a  b  c"}
	for _, in := range inputs {
		once := CollapseWhitespace(in)
		assert.Equal(t, once, CollapseWhitespace(once))
	}
}
