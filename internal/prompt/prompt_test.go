package prompt

import (
	"strings"
	"testing"

	"contentapi/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestChat(t *testing.T) {
	t.Run("includes one summary line per document", func(t *testing.T) {
		docs := []model.Document{
			{Title: "Safety Circular", Department: "Operations", Priority: "High", FileType: "application/pdf", Description: "Annual briefing"},
			{Title: "Budget", Content: strings.Repeat("x", 500)},
		}

		out := Chat(docs, "what's new?")

		assert.Contains(t, out, "Title: Safety Circular")
		assert.Contains(t, out, "Department: Operations")
		assert.Contains(t, out, "Title: Budget")
		assert.Contains(t, out, "User message: what's new?")
		// Long content is previewed, not inlined wholesale.
		assert.NotContains(t, out, strings.Repeat("x", 500))
		assert.Contains(t, out, strings.Repeat("x", 200)+"...")
	})

	t.Run("missing fields fall back to defaults", func(t *testing.T) {
		out := Chat([]model.Document{{}}, "hi")

		assert.Contains(t, out, "Title: Untitled")
		assert.Contains(t, out, "Priority: Normal")
		assert.Contains(t, out, "Content Preview: No content available")
	})

	t.Run("empty document list uses the fallback template", func(t *testing.T) {
		out := Chat(nil, "hello")

		assert.Contains(t, out, "No documents are currently available")
		assert.Contains(t, out, "User message: hello")
	})
}

func TestAnalysis(t *testing.T) {
	extracted := "extracted body text"
	rec := &model.ContentRecord{
		Title:            "Policy",
		FileType:         "application/pdf",
		ExtractedContent: &extracted,
	}

	out := Analysis(rec)

	assert.Contains(t, out, "Title: Policy")
	assert.Contains(t, out, "extracted body text")
	assert.Contains(t, out, "concise summary")
}

func TestAnalysis_PrefersInlineContent(t *testing.T) {
	extracted := "from file"
	rec := &model.ContentRecord{
		Title:            "Policy",
		Content:          "inline wins",
		ExtractedContent: &extracted,
	}

	out := Analysis(rec)

	assert.Contains(t, out, "inline wins")
	assert.NotContains(t, out, "from file")
}

func TestAnalysis_CapsContent(t *testing.T) {
	long := strings.Repeat("y", 5000)
	rec := &model.ContentRecord{Title: "Big", Content: long}

	out := Analysis(rec)

	assert.NotContains(t, out, long)
	assert.Contains(t, out, strings.Repeat("y", 3000)+"...")
}
