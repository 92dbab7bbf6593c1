package request

import "bytes"

const (
	space = ' '
	tab   = '\t'
	cr    = '\r'
	lf    = '\n'
	colon = ':'
)

var crlf = []byte("\r\n")

// cursor is a shrinking view over the unconsumed suffix of the input buffer.
// It never rewinds and never copies: every span handed out aliases the
// caller's buffer.
type cursor struct {
	rest []byte
}

// skipSpaces advances past ASCII spaces only. Tabs and line breaks are not
// skipped here.
func (c *cursor) skipSpaces() {
	for len(c.rest) > 0 && c.rest[0] == space {
		c.rest = c.rest[1:]
	}
}

// skipCRLF consumes a leading CR LF pair if one is present, otherwise it
// leaves the cursor alone.
func (c *cursor) skipCRLF() {
	if bytes.HasPrefix(c.rest, crlf) {
		c.rest = c.rest[2:]
	}
}

// takeUntil returns the span up to (not including) the first occurrence of
// target and leaves the cursor positioned on the match. When target is
// absent the span runs to the end of the input and found is false.
func (c *cursor) takeUntil(target byte) (span []byte, found bool) {
	idx := bytes.IndexByte(c.rest, target)
	if idx == -1 {
		span = c.rest
		c.rest = c.rest[len(c.rest):]
		return span, false
	}

	span = c.rest[:idx]
	c.rest = c.rest[idx:]
	return span, true
}

// takeLine returns the span up to the next CR LF and consumes the
// terminator. A bare LF is not a line end.
func (c *cursor) takeLine() (span []byte, found bool) {
	idx := bytes.Index(c.rest, crlf)
	if idx == -1 {
		span = c.rest
		c.rest = c.rest[len(c.rest):]
		return span, false
	}

	span = c.rest[:idx]
	c.rest = c.rest[idx+2:]
	return span, true
}

func isWhitespace(b byte) bool {
	return b == space || b == tab || b == cr || b == lf
}
