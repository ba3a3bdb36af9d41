package record

// Text is a zero-copy accessor over a fixed-capacity text field.
//
// The field stores raw bytes. Set zero-fills the whole range before
// writing, so Get can trim trailing zero bytes to recover the value.
// Values longer than the field silently truncate at the byte level; a
// multi-byte UTF-8 sequence may be cut mid-rune.
type Text struct {
	buf  []byte
	off  int
	size int
}

// Size returns the fixed byte capacity of the field.
func (t *Text) Size() int { return t.size }

// Get decodes the stored value, trimming trailing zero bytes.
func (t *Text) Get() string {
	b := t.buf[t.off : t.off+t.size]
	end := len(b)
	for end > 0 && b[end-1] == 0 {
		end--
	}
	return string(b[:end])
}

// Set zero-fills the field and writes s, truncating silently if it exceeds
// the capacity.
func (t *Text) Set(s string) {
	b := t.buf[t.off : t.off+t.size]
	clear(b)
	copy(b, s)
}
