// Package prompt assembles the LLM prompts used by the chat and
// document-analysis endpoints. Pure string building, no I/O.
package prompt

import (
	"fmt"
	"strings"

	"contentapi/internal/model"
)

const (
	docPreviewLimit     = 200
	analysisContentCap  = 3000
	assistantIntro      = "You are an intelligent assistant for a document management system."
	noDocumentsTemplate = assistantIntro + `

No documents are currently available in the system.

User message: %s

Please help the user with their query and suggest they upload documents if they need document-specific assistance.`
)

// Chat builds the conversational prompt: a one-line summary per known
// document plus the user's message.
func Chat(docs []model.Document, userMessage string) string {
	if len(docs) == 0 {
		return fmt.Sprintf(noDocumentsTemplate, userMessage)
	}

	lines := make([]string, 0, len(docs))
	for _, d := range docs {
		lines = append(lines, fmt.Sprintf(
			"Title: %s, Department: %s, Priority: %s, File Type: %s, Description: %s, Content Preview: %s",
			orDefault(d.Title, "Untitled"),
			orDefault(d.Department, "Unknown"),
			orDefault(d.Priority, "Normal"),
			orDefault(d.FileType, "Unknown"),
			orDefault(d.Description, "No description"),
			preview(d.Content, docPreviewLimit),
		))
	}

	var b strings.Builder
	b.WriteString(assistantIntro)
	b.WriteString("\n\nAvailable documents:\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\nUser message: ")
	b.WriteString(userMessage)
	b.WriteString("\n\nPlease provide helpful responses about these documents, help users find relevant information, and assist with document management tasks. Be specific about document titles, departments, and priorities when relevant.")
	return b.String()
}

// Analysis builds the single-document analysis prompt from a resolved
// content record. Extracted content is capped so the prompt stays inside
// a sane token budget.
func Analysis(rec *model.ContentRecord) string {
	var b strings.Builder
	b.WriteString("Analyze this document and provide insights:\n\n")
	fmt.Fprintf(&b, "Title: %s\n", rec.Title)
	fmt.Fprintf(&b, "Description: %s\n", orDefault(rec.Description, "No description"))
	fmt.Fprintf(&b, "Department: %s\n", orDefault(rec.Department, "Unknown"))
	fmt.Fprintf(&b, "Priority: %s\n", orDefault(rec.Priority, "Normal"))
	fmt.Fprintf(&b, "File Type: %s\n", rec.FileType)

	content := rec.Content
	if content == "" && rec.ExtractedContent != nil {
		content = *rec.ExtractedContent
	}
	if content != "" {
		fmt.Fprintf(&b, "\nDocument content:\n%s\n", preview(content, analysisContentCap))
	}

	b.WriteString("\nProvide a concise summary, key points, and any action items found in this document.")
	return b.String()
}

func preview(s string, limit int) string {
	if s == "" {
		return "No content available"
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "..."
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
