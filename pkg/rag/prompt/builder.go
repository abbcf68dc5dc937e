package prompt

import (
	"strings"

	"rso-assistant-be/internal/constant"
)

// Builder assembles the full prompt sent to the model for one chat turn:
// behavioral preface, delimited knowledge context, then the user's question.
type Builder struct {
	preface string
}

func NewBuilder(preface string) *Builder {
	return &Builder{preface: preface}
}

// Build wraps the context block in delimiters so document-sourced text is
// visibly separated from the instructions around it. contextBlock is never
// empty; retrieval substitutes a sentinel when nothing matched.
func (b *Builder) Build(contextBlock, question string) string {
	var sb strings.Builder

	sb.WriteString(b.preface)
	sb.WriteString("\n\nContext:\n")
	sb.WriteString(constant.ContextStartDelimiter)
	sb.WriteString("\n")
	sb.WriteString(contextBlock)
	sb.WriteString("\n")
	sb.WriteString(constant.ContextEndDelimiter)
	sb.WriteString("\n\nQuestion:\n")
	sb.WriteString(question)
	sb.WriteString("\n\nAnswer:")

	return sb.String()
}
