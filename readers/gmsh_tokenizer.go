package readers

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// tokenReader provides whitespace-delimited token reading over a stream,
// plus line-oriented scanning for section markers. It has no knowledge of
// the MSH format itself. The current line number is tracked for error
// reporting.
type tokenReader struct {
	r    *bufio.Reader
	line int
}

func newTokenReader(r io.Reader) *tokenReader {
	return &tokenReader{r: bufio.NewReader(r), line: 1}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// Token returns the next whitespace-delimited token. io.EOF is returned
// when no token remains.
func (t *tokenReader) Token() (string, error) {
	// Skip leading whitespace
	for {
		b, err := t.r.ReadByte()
		if err != nil {
			return "", err
		}
		if b == '\n' {
			t.line++
			continue
		}
		if !isSpace(b) {
			if err := t.r.UnreadByte(); err != nil {
				return "", err
			}
			break
		}
	}

	var sb strings.Builder
	for {
		b, err := t.r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if isSpace(b) {
			if err := t.r.UnreadByte(); err != nil {
				return "", err
			}
			break
		}
		sb.WriteByte(b)
	}
	return sb.String(), nil
}

// Int reads the next token and parses it as an integer.
func (t *tokenReader) Int() (int, error) {
	tok, err := t.Token()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(tok)
}

// Float reads the next token and parses it as a float64.
func (t *tokenReader) Float() (float64, error) {
	tok, err := t.Token()
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(tok, 64)
}

// Line reads up to and including the next newline and returns the
// trimmed content.
func (t *tokenReader) Line() (string, error) {
	s, err := t.r.ReadString('\n')
	if err != nil && (err != io.EOF || s == "") {
		return "", err
	}
	if strings.HasSuffix(s, "\n") {
		t.line++
	}
	return strings.TrimSpace(s), nil
}

// SkipToMarker scans forward line-by-line until a line equals marker.
// Lines before the marker are ignored, which lets unrelated optional
// sections precede the one being sought. io.EOF is returned if the
// marker never appears.
func (t *tokenReader) SkipToMarker(marker string) error {
	for {
		s, err := t.Line()
		if err != nil {
			return err
		}
		if s == marker {
			return nil
		}
	}
}

// LineNumber reports the 1-based line the reader is currently on.
func (t *tokenReader) LineNumber() int {
	return t.line
}
