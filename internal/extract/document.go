package extract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

// Encode renders s as indented JSON with keys sorted at every level and a
// trailing newline. Non-ASCII characters are written as \u escapes, matching
// the summary files already published. The output is byte-identical for
// identical input.
func Encode(s Summary) ([]byte, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal summary: %w", err)
	}
	// Round-trip through generic maps: encoding/json writes map keys in
	// sorted order, struct fields in declaration order.
	var generic any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&generic); err != nil {
		return nil, fmt.Errorf("canonicalize summary: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(generic); err != nil {
		return nil, fmt.Errorf("encode summary: %w", err)
	}
	return asciiEscape(buf.Bytes()), nil
}

// asciiEscape replaces every non-ASCII rune with its \u escape, using a
// surrogate pair above the BMP. Non-ASCII only occurs inside JSON strings, so
// the document stays valid.
func asciiEscape(b []byte) []byte {
	var out bytes.Buffer
	out.Grow(len(b))
	for len(b) > 0 {
		if b[0] < utf8.RuneSelf {
			out.WriteByte(b[0])
			b = b[1:]
			continue
		}
		r, size := utf8.DecodeRune(b)
		b = b[size:]
		if r1, r2 := utf16.EncodeRune(r); r1 != utf8.RuneError {
			fmt.Fprintf(&out, `\u%04x\u%04x`, r1, r2)
			continue
		}
		fmt.Fprintf(&out, `\u%04x`, r)
	}
	return out.Bytes()
}
