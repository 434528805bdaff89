package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatch(t *testing.T) {
	payload := []byte("hello world")

	t.Run("pdf routes to the pdf extractor", func(t *testing.T) {
		// Garbage bytes prove the PDF path ran: only it produces this message.
		out := Dispatch("application/pdf", payload)
		assert.Contains(t, out, "Error extracting PDF content")
	})

	t.Run("text prefix routes to the decoder", func(t *testing.T) {
		assert.Equal(t, DecodeText(payload), Dispatch("text/plain", payload))
		assert.Equal(t, "hello world", Dispatch("text/markdown", payload))
	})

	t.Run("json and xml route to the decoder", func(t *testing.T) {
		j := []byte(`{"k":"v"}`)
		assert.Equal(t, DecodeText(j), Dispatch("application/json", j))
		x := []byte(`<root/>`)
		assert.Equal(t, DecodeText(x), Dispatch("application/xml", x))
	})

	t.Run("unknown type yields unsupported message", func(t *testing.T) {
		out := Dispatch("image/png", payload)
		assert.Contains(t, out, "image/png")
		assert.Contains(t, out, "not supported")
	})
}
