package chunk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func longText(words int) string {
	var b strings.Builder
	for i := 0; i < words; i++ {
		b.WriteString("handbook policy ")
		if i%40 == 39 {
			b.WriteString("end of section.\n\n")
		}
	}
	return b.String()
}

func TestSplitTextEmpty(t *testing.T) {
	assert.Nil(t, SplitText("", DefaultSize, DefaultOverlap))
}

func TestSplitTextShortInputSingleChunk(t *testing.T) {
	text := "Reimbursements require a signed form."
	chunks := SplitText(text, DefaultSize, DefaultOverlap)
	require.Len(t, chunks, 1)
	assert.Equal(t, text, chunks[0])
}

func TestSplitTextChunkSizeBound(t *testing.T) {
	chunks := SplitText(longText(400), DefaultSize, DefaultOverlap)
	require.Greater(t, len(chunks), 1)
	for _, c := range chunks {
		assert.LessOrEqual(t, len([]rune(c)), DefaultSize)
	}
}

func TestSplitTextConsecutiveChunksShareOverlap(t *testing.T) {
	chunks := SplitText(longText(400), DefaultSize, DefaultOverlap)
	require.Greater(t, len(chunks), 1)

	for i := 0; i < len(chunks)-1; i++ {
		cur := []rune(chunks[i])
		next := []rune(chunks[i+1])
		require.GreaterOrEqual(t, len(cur), DefaultOverlap)
		require.GreaterOrEqual(t, len(next), DefaultOverlap)

		tail := string(cur[len(cur)-DefaultOverlap:])
		head := string(next[:DefaultOverlap])
		assert.Equal(t, tail, head, "chunks %d and %d do not overlap", i, i+1)
	}
}

func TestSplitTextLosslessReconstruction(t *testing.T) {
	original := longText(500)
	chunks := SplitText(original, DefaultSize, DefaultOverlap)
	require.Greater(t, len(chunks), 1)

	var b strings.Builder
	b.WriteString(chunks[0])
	for _, c := range chunks[1:] {
		b.WriteString(string([]rune(c)[DefaultOverlap:]))
	}
	assert.Equal(t, original, b.String())
}

func TestSplitTextPrefersWordBoundaries(t *testing.T) {
	chunks := SplitText(longText(400), DefaultSize, DefaultOverlap)
	require.Greater(t, len(chunks), 1)

	// every non-final chunk should end right after whitespace, not mid-word
	for _, c := range chunks[:len(chunks)-1] {
		r := []rune(c)
		last := r[len(r)-1]
		assert.True(t, last == ' ' || last == '\n', "chunk ends mid-word: %q", string(r[len(r)-10:]))
	}
}

func TestSplitTextHardCutWithoutBoundaries(t *testing.T) {
	// no spaces or newlines anywhere: must fall back to raw character cuts
	original := strings.Repeat("x", 2000)
	chunks := SplitText(original, DefaultSize, DefaultOverlap)
	require.Greater(t, len(chunks), 1)

	var b strings.Builder
	b.WriteString(chunks[0])
	for _, c := range chunks[1:] {
		b.WriteString(string([]rune(c)[DefaultOverlap:]))
	}
	assert.Equal(t, original, b.String())
}

func TestSplitTextRuneSafety(t *testing.T) {
	original := strings.Repeat("política de reembolso ", 100)
	chunks := SplitText(original, DefaultSize, DefaultOverlap)
	for _, c := range chunks {
		assert.True(t, strings.Contains(original, c))
	}
}

func TestSplitPreservesMetadataPerPassage(t *testing.T) {
	docs := []Document{
		{Text: longText(300), Metadata: map[string]any{"source": "Handbook", "page": 1}},
		{Text: "short second page", Metadata: map[string]any{"source": "Handbook", "page": 2}},
	}
	passages := Split(docs, DefaultSize, DefaultOverlap)
	require.Greater(t, len(passages), 2)

	for _, p := range passages[:len(passages)-1] {
		assert.Equal(t, "Handbook", p.Metadata["source"])
	}
	last := passages[len(passages)-1]
	assert.Equal(t, 2, last.Metadata["page"])

	// metadata maps are independent copies
	passages[0].Metadata["page"] = 99
	assert.Equal(t, 1, docs[0].Metadata["page"])
}

func TestSplitEmptyInput(t *testing.T) {
	assert.Empty(t, Split(nil, DefaultSize, DefaultOverlap))
	assert.Empty(t, Split([]Document{}, DefaultSize, DefaultOverlap))
}
