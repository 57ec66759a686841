// Package encoding detects the character encoding of uploaded statement
// files and rejects disguised spreadsheet binaries before any parsing
// happens.
package encoding

import (
	"bytes"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	apierrors "finlens/internal/errors"
)

var (
	zipSignature  = []byte{0x50, 0x4B, 0x03, 0x04} // xlsx/ods are zip containers
	ole2Signature = []byte{0xD0, 0xCF, 0x11, 0xE0} // legacy .xls compound files
	utf8BOM       = []byte{0xEF, 0xBB, 0xBF}
)

// candidate encodings, tried in order. First successful non-empty decode
// wins; there is no scoring beyond "decodes and is non-empty".
var candidates = []struct {
	name   string
	decode func([]byte) (string, bool)
}{
	{"utf-8-sig", decodeUTF8SIG},
	{"utf-8", decodeUTF8},
	{"windows-1258", decodeCharmap(charmap.Windows1258)},
	{"latin1", decodeCharmap(charmap.ISO8859_1)},
}

// Decode converts raw file bytes to text. It fails with a FormatError when
// the bytes carry a spreadsheet-binary signature or no candidate encoding
// yields visible characters.
func Decode(data []byte) (string, error) {
	if bytes.HasPrefix(data, zipSignature) {
		return "", apierrors.NewFormatError(
			"disguised spreadsheet binary",
			"file starts with a zip signature; export it as CSV before uploading")
	}
	if bytes.HasPrefix(data, ole2Signature) {
		return "", apierrors.NewFormatError(
			"disguised spreadsheet binary",
			"file starts with an OLE2 signature (.xls); export it as CSV before uploading")
	}

	tried := make([]string, 0, len(candidates))
	for _, c := range candidates {
		tried = append(tried, c.name)
		text, ok := c.decode(data)
		if !ok {
			continue
		}
		if !hasVisibleRune(text) {
			continue
		}
		return text, nil
	}
	return "", apierrors.NewFormatError(
		"empty or undecodable file",
		"no visible characters under attempted encodings: %s", strings.Join(tried, ", "))
}

func decodeUTF8SIG(data []byte) (string, bool) {
	if !bytes.HasPrefix(data, utf8BOM) {
		return "", false
	}
	return decodeUTF8(data[len(utf8BOM):])
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

func hasVisibleRune(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) && unicode.IsGraphic(r) {
			return true
		}
	}
	return false
}
