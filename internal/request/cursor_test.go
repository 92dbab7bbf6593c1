package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTakeUntil(t *testing.T) {
	c := cursor{rest: []byte("GET /")}
	span, found := c.takeUntil(space)
	assert.True(t, found)
	assert.Equal(t, "GET", string(span))
	assert.Equal(t, " /", string(c.rest))

	// Absent target: span runs to end of input.
	c = cursor{rest: []byte("GET")}
	span, found = c.takeUntil(space)
	assert.False(t, found)
	assert.Equal(t, "GET", string(span))
	assert.Empty(t, c.rest)
}

func TestSkipSpaces(t *testing.T) {
	c := cursor{rest: []byte("   x")}
	c.skipSpaces()
	assert.Equal(t, "x", string(c.rest))

	// Tabs and line breaks are not spaces here.
	c = cursor{rest: []byte("\t x")}
	c.skipSpaces()
	assert.Equal(t, "\t x", string(c.rest))

	c = cursor{rest: nil}
	c.skipSpaces()
	assert.Empty(t, c.rest)
}

func TestSkipCRLF(t *testing.T) {
	c := cursor{rest: []byte("\r\nrest")}
	c.skipCRLF()
	assert.Equal(t, "rest", string(c.rest))

	// Bare LF is not a line terminator.
	c = cursor{rest: []byte("\nrest")}
	c.skipCRLF()
	assert.Equal(t, "\nrest", string(c.rest))

	c = cursor{rest: []byte("\r")}
	c.skipCRLF()
	assert.Equal(t, "\r", string(c.rest))
}

func TestTakeLine(t *testing.T) {
	c := cursor{rest: []byte("HTTP/1.1\r\nHost: x")}
	span, found := c.takeLine()
	assert.True(t, found)
	assert.Equal(t, "HTTP/1.1", string(span))
	assert.Equal(t, "Host: x", string(c.rest))

	c = cursor{rest: []byte("no terminator")}
	span, found = c.takeLine()
	assert.False(t, found)
	assert.Equal(t, "no terminator", string(span))
	assert.Empty(t, c.rest)
}
