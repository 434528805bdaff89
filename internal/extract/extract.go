// Package extract converts raw document bytes into plain text. It holds
// the format dispatch, the multi-engine PDF fallback and the encoding
// detection for textual files. Every entry point returns a string; a
// failed extraction is reported inside the string, never as an error.
package extract

import (
	"fmt"
	"strings"
)

// Dispatch selects an extraction strategy from the declared MIME type
// and runs it over the bytes. Unknown types yield a descriptive
// unsupported-type message embedding the type.
func Dispatch(fileType string, data []byte) string {
	switch {
	case fileType == "application/pdf":
		return PDFText(data)
	case strings.HasPrefix(fileType, "text/"):
		return DecodeText(data)
	case fileType == "application/json", fileType == "application/xml":
		return DecodeText(data)
	default:
		return fmt.Sprintf("File type %s not supported for content extraction", fileType)
	}
}
