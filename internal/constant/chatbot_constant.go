package constant

const (
	// Priming exchange seeded into every new conversation. Sets tone without
	// spending a real user turn.
	ChatPrimingUserPromptV1  = "You are a helpful club assistant."
	ChatPrimingModelPromptV1 = "Hi! I'm your club assistant. Ask me about finance policies, action items, or type 'help' for options."

	// NoContextSentinel is returned instead of an empty context block when
	// retrieval finds nothing. The preface branches on context being present,
	// so this must never be the empty string.
	NoContextSentinel = "No matching context found."

	// Delimiters separating instructions from retrieved (untrusted,
	// document-sourced) content. This reduces prompt-injection risk from text
	// embedded in PDFs; it is not a hard security boundary.
	ContextStartDelimiter = "[KNOWLEDGE CONTEXT START]"
	ContextEndDelimiter   = "[KNOWLEDGE CONTEXT END]"

	// ContextBlockSeparator joins citation-tagged passages in the context
	// block, index-time and query-time agree on this format.
	ContextBlockSeparator = "\n\n---\n\n"
)
