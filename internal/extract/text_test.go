package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeText_UTF8(t *testing.T) {
	in := []byte("hello world — Kochi Metro 地下鉄")
	out := DecodeText(in)
	assert.Equal(t, string(in), out)
}

func TestDecodeText_Latin1Fallback(t *testing.T) {
	// 0xE9 is not valid UTF-8 on its own; Latin-1 maps it to é.
	in := []byte{'c', 'a', 'f', 0xE9}
	out := DecodeText(in)
	assert.Equal(t, "café", out)
}

func TestDecodeText_NeverFails(t *testing.T) {
	inputs := [][]byte{
		nil,
		{},
		{0x00},
		{0xFF, 0xFE, 0xFD},
		{0x93, 0x94, 0x85}, // windows-1252 quotes; swallowed by latin-1 first
	}
	for _, in := range inputs {
		out := DecodeText(in)
		// Latin-1 accepts every byte, so the sentinel should never appear.
		assert.NotEqual(t, ErrCouldNotDecode, out)
		assert.Len(t, []rune(out), len(in))
	}
}

func TestDecodeText_OrderingPutsUTF8First(t *testing.T) {
	// Valid UTF-8 must decode as UTF-8, not as Latin-1 byte soup.
	in := []byte("über") // 0xC3 0xBC is valid UTF-8 for ü
	assert.Equal(t, "über", DecodeText(in))
}
