package app

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// readCapture reads the whole capture at path as UTF-8 text. A leading byte
// order mark selects the matching Unicode decoding and is not part of the
// returned text. CRLF and lone CR line endings are returned as LF.
func readCapture(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	dec := transform.Chain(unicode.BOMOverride(unicode.UTF8.NewDecoder()), newlineNormalizer{})
	b, err := io.ReadAll(transform.NewReader(f, dec))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}

// newlineNormalizer rewrites "\r\n" and "\r" to "\n".
type newlineNormalizer struct{ transform.NopResetter }

func (newlineNormalizer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		if c == '\r' {
			// A CR at the end of the chunk may be the first half of CRLF.
			if nSrc+1 == len(src) && !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = '\n'
			nDst++
			nSrc++
			if nSrc < len(src) && src[nSrc] == '\n' {
				nSrc++
			}
			continue
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = c
		nDst++
		nSrc++
	}
	return nDst, nSrc, nil
}
