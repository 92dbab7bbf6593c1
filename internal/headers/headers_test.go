package headers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaders(t *testing.T) {
	// Test: Set then Get with exact key
	h := New()
	h.Set("Host", "example.com")
	val, ok := h.Get("Host")
	assert.True(t, ok)
	assert.Equal(t, "example.com", val)

	// Test: Keys are verbatim, no case folding
	val, ok = h.Get("host")
	assert.False(t, ok)
	assert.Equal(t, "", val)

	// Test: Same name overwrites the prior value
	h.Set("Host", "other.com")
	val, _ = h.Get("Host")
	assert.Equal(t, "other.com", val)
	assert.Equal(t, 1, h.Len())

	// Test: Differently cased names are distinct entries
	h.Set("HOST", "shouty.com")
	assert.Equal(t, 2, h.Len())

	// Test: Empty value is stored, not dropped
	h.Set("X-Empty", "")
	val, ok = h.Get("X-Empty")
	assert.True(t, ok)
	assert.Equal(t, "", val)

	// Test: All exposes every entry
	all := New()
	all.Set("A", "1")
	all.Set("B", "2")
	assert.Equal(t, map[string]string{"A": "1", "B": "2"}, all.All())

	// Test: Get on a fresh container
	val, ok = New().Get("missing")
	assert.False(t, ok)
	assert.Equal(t, "", val)
}
