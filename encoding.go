package mdhtml

import (
	"bytes"

	"golang.org/x/text/encoding/unicode"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// normalizeEncoding converts BOM-marked input to plain UTF-8. Input without
// a BOM is returned as is.
func normalizeEncoding(src []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(src, bomUTF8):
		return src[len(bomUTF8):], nil
	case bytes.HasPrefix(src, bomUTF16LE):
		return decodeUTF16(src, unicode.LittleEndian)
	case bytes.HasPrefix(src, bomUTF16BE):
		return decodeUTF16(src, unicode.BigEndian)
	default:
		return src, nil
	}
}

func decodeUTF16(src []byte, endian unicode.Endianness) ([]byte, error) {
	decoder := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	return decoder.Bytes(src)
}
