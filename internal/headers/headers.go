package headers

// Headers holds one value per header name. Keys and values are stored
// verbatim as they appeared on the wire: no case folding, no trimming
// beyond what the parser's separator rule already ate. Setting a name that
// is already present overwrites the earlier value.
type Headers struct {
	m map[string]string
}

func New() *Headers {
	return &Headers{
		m: make(map[string]string),
	}
}

// Get returns the value stored for an exact key.
func (h *Headers) Get(key string) (string, bool) {
	value, ok := h.m[key]
	return value, ok
}

// Set stores a value, replacing any prior value for the same key.
func (h *Headers) Set(key, value string) {
	h.m[key] = value
}

// Len reports the number of distinct header names.
func (h *Headers) Len() int {
	return len(h.m)
}

// All returns the internal map for iteration. Callers must treat it as
// read-only.
func (h *Headers) All() map[string]string {
	return h.m
}
