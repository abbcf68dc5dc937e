package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "clean text untouched",
			in:   "Reimbursements require a signed form.",
			want: "Reimbursements require a signed form.",
		},
		{
			name: "null byte becomes space",
			in:   "before\x00after",
			want: "before after",
		},
		{
			name: "low control range",
			in:   "a\x01b\x08c",
			want: "a b c",
		},
		{
			name: "vertical tab and form feed",
			in:   "a\x0Bb\x0Cc",
			want: "a b c",
		},
		{
			name: "tab newline and carriage return survive",
			in:   "a\tb\nc\rd",
			want: "a\tb\nc\rd",
		},
		{
			name: "upper control range",
			in:   "x\x0Ey\x1Fz",
			want: "x y z",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.in))
		})
	}
}

func TestTextReplacesOneForOne(t *testing.T) {
	in := "a\x00b\x01c\x1Fd"
	out := Text(in)

	assert.Len(t, out, len(in))
	for _, r := range out {
		assert.False(t, forbidden(r))
	}
}

func TestTextIdempotent(t *testing.T) {
	inputs := []string{
		"plain",
		"with\x00nul",
		"\x01\x02\x03",
		strings.Repeat("mixed \x0B content\n", 50),
	}
	for _, in := range inputs {
		once := Text(in)
		assert.Equal(t, once, Text(once))
	}
}

func TestValueCoercesNonStrings(t *testing.T) {
	assert.Equal(t, "12", Value(12))
	assert.Equal(t, "true", Value(true))
	assert.Equal(t, "dirty text", Value("dirty\x00text"))
}

func TestMetadata(t *testing.T) {
	in := map[string]any{
		"source": "Hand\x00book.pdf",
		"page":   3,
		"score":  0.91,
	}
	out := Metadata(in)

	assert.Equal(t, "Hand book.pdf", out["source"])
	assert.Equal(t, 3, out["page"])
	assert.Equal(t, 0.91, out["score"])

	// input map is not mutated
	assert.Equal(t, "Hand\x00book.pdf", in["source"])
}

func TestMetadataNil(t *testing.T) {
	out := Metadata(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
