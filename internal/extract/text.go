package extract

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ErrCouldNotDecode is the sentinel returned when no candidate encoding
// accepts the input. Latin-1 maps every byte to a code point, so this
// branch is unreachable in practice; it is kept so the decoder can never
// return garbage silently if the candidate list is ever reordered.
const ErrCouldNotDecode = "Error: Could not decode text file"

type textEncoding struct {
	name   string
	decode func([]byte) (string, bool)
}

// Candidate encodings in priority order. Latin-1 accepts any byte
// sequence, so everything after it acts as documentation only.
var textEncodings = []textEncoding{
	{"utf-8", decodeUTF8},
	{"latin-1", decodeCharmap(charmap.ISO8859_1)},
	{"windows-1252", decodeCharmap(charmap.Windows1252)},
}

// DecodeText converts raw bytes of a textual file into a string, trying
// the candidate encodings in order and returning the first successful
// decode. It never fails past its boundary: the worst case is the
// ErrCouldNotDecode sentinel.
func DecodeText(data []byte) string {
	for _, enc := range textEncodings {
		if s, ok := enc.decode(data); ok {
			return s
		}
	}
	return ErrCouldNotDecode
}

func decodeUTF8(data []byte) (string, bool) {
	if !utf8.Valid(data) {
		return "", false
	}
	return string(data), true
}

func decodeCharmap(cm *charmap.Charmap) func([]byte) (string, bool) {
	return func(data []byte) (string, bool) {
		out, err := cm.NewDecoder().Bytes(data)
		if err != nil {
			return "", false
		}
		return string(out), true
	}
}
