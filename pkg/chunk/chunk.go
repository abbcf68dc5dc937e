// Package chunk splits extracted documents into overlapping passages sized
// for the embedding model. The size/overlap contract (800/80 by default) is
// what ties index-time passages to query-time retrieval, so both numbers are
// fixed in config rather than per call site.
package chunk

// Defaults match the handbook indexing contract: 800-character passages with
// an 80-character overlap between consecutive passages of the same document.
const (
	DefaultSize    = 800
	DefaultOverlap = 80
)

// Document is one ordered source unit (typically a PDF page) with its
// provenance metadata.
type Document struct {
	Text     string
	Metadata map[string]any
}

// Passage is a bounded span of a document carrying the document's metadata.
type Passage struct {
	Text     string
	Metadata map[string]any
}

// Split chunks every document in order. Passages never span documents, and
// each passage gets its own copy of the source document's metadata.
func Split(docs []Document, size, overlap int) []Passage {
	var passages []Passage
	for _, doc := range docs {
		for _, text := range SplitText(doc.Text, size, overlap) {
			passages = append(passages, Passage{
				Text:     text,
				Metadata: copyMetadata(doc.Metadata),
			})
		}
	}
	return passages
}

// SplitText splits text into chunks of at most size runes. Consecutive chunks
// share exactly overlap runes: the next chunk always starts overlap runes
// before the previous cut, so concatenating chunks minus their overlap
// reconstructs the input losslessly. Cuts prefer natural boundaries
// (paragraph, newline, sentence end, word) inside the tail of the window and
// fall back to a hard cut when none is found.
func SplitText(text string, size, overlap int) []string {
	if size <= 0 {
		size = DefaultSize
	}
	if overlap < 0 || overlap >= size {
		overlap = 0
	}

	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	if len(runes) <= size {
		return []string{text}
	}

	var chunks []string
	start := 0
	for {
		end := start + size
		if end >= len(runes) {
			chunks = append(chunks, string(runes[start:]))
			break
		}
		cut := cutPoint(runes, start, end, overlap, size)
		chunks = append(chunks, string(runes[start:cut]))
		start = cut - overlap
	}
	return chunks
}

// Boundary classes in preference order. A lower class wins regardless of
// position inside the search window.
const (
	boundaryParagraph = iota
	boundaryNewline
	boundarySentence
	boundaryWord
	boundaryNone
)

// cutPoint picks where to end the chunk starting at start. Only the tail of
// the window is searched so chunks stay near the target size, and the cut is
// kept past start+overlap so every iteration makes progress.
func cutPoint(runes []rune, start, end, overlap, size int) int {
	floor := end - size/5
	if min := start + overlap + 1; floor < min {
		floor = min
	}

	best := boundaryNone
	cut := end
	for i := end - 1; i >= floor; i-- {
		class := boundaryNone
		switch {
		case runes[i] == '\n' && i > 0 && runes[i-1] == '\n':
			class = boundaryParagraph
		case runes[i] == '\n':
			class = boundaryNewline
		case runes[i] == ' ' && i > 0 && isSentenceEnd(runes[i-1]):
			class = boundarySentence
		case runes[i] == ' ':
			class = boundaryWord
		}
		// scanning right to left, so the first hit per class is the latest one
		if class < best {
			best = class
			cut = i + 1
			if best == boundaryParagraph {
				break
			}
		}
	}
	return cut
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func copyMetadata(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
