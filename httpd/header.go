package httpd

// Field is a single header name/value pair.
type Field struct {
	Name  string
	Value string
}

// Header is an ordered mapping of header names to values. Names are
// case-sensitive exactly as received and insertion order is preserved,
// so a Header renders back to the wire in the order it was built.
//
// The zero value is an empty header ready for use.
type Header struct {
	fields []Field
	index  map[string]int
}

// Get returns the value for name, or "" if absent.
func (h *Header) Get(name string) string {
	if i, ok := h.index[name]; ok {
		return h.fields[i].Value
	}
	return ""
}

// Has reports whether name is present.
func (h *Header) Has(name string) bool {
	_, ok := h.index[name]
	return ok
}

// Set replaces the value for name in place, or appends a new field.
func (h *Header) Set(name, value string) {
	if i, ok := h.index[name]; ok {
		h.fields[i].Value = value
		return
	}
	if h.index == nil {
		h.index = make(map[string]int)
	}
	h.index[name] = len(h.fields)
	h.fields = append(h.fields, Field{Name: name, Value: value})
}

// Len returns the number of distinct header names.
func (h *Header) Len() int { return len(h.fields) }

// Fields returns the fields in insertion order. The slice is a copy.
func (h *Header) Fields() []Field {
	out := make([]Field, len(h.fields))
	copy(out, h.fields)
	return out
}
