package extract

import (
	"bytes"
	"fmt"
	"strings"

	dslipak "github.com/dslipak/pdf"
	ledongthuc "github.com/ledongthuc/pdf"
)

type pdfEngine struct {
	name    string
	extract func(data []byte) (string, error)
}

// pdfEngines is the ordered strategy list. The first engine that parses
// the document wins; a new engine is one entry here. Parser robustness
// varies a lot across malformed real-world PDFs, which is why there are
// two of them.
var pdfEngines = []pdfEngine{
	{"ledongthuc", extractLedongthuc},
	{"dslipak", extractDslipak},
}

// PDFText extracts per-page text from a PDF byte sequence, pages joined
// with newlines and the result trimmed. If every engine fails, the
// returned string describes the last failure; callers always receive a
// string, never an error.
func PDFText(data []byte) string {
	var lastErr error
	for _, eng := range pdfEngines {
		text, err := eng.extract(data)
		if err != nil {
			lastErr = err
			continue
		}
		return text
	}
	return fmt.Sprintf("Error extracting PDF content: %v", lastErr)
}

// Both parsers are rsc.io/pdf descendants and are known to panic on
// hostile input, so each engine converts panics into errors to keep the
// fallback chain moving.

func extractLedongthuc(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parse panic: %v", r)
		}
	}()

	r, err := ledongthuc.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		s, err := p.GetPlainText(nil)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String()), nil
}

func extractDslipak(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parse panic: %v", r)
		}
	}()

	r, err := dslipak.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	rd, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(rd); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}
