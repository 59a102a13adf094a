package domain

// InputBuffer holds the text being typed and a cursor, both counted in
// runes so that multi-byte characters are never split.
// The cursor always satisfies 0 <= cursor <= len(text).
type InputBuffer struct {
	text   []rune
	cursor int
}

// NewInputBuffer creates an empty buffer
func NewInputBuffer() *InputBuffer {
	return &InputBuffer{}
}

// Text returns the current contents
func (b *InputBuffer) Text() string {
	return string(b.text)
}

// Cursor returns the cursor offset in runes
func (b *InputBuffer) Cursor() int {
	return b.cursor
}

// Len returns the number of runes in the buffer
func (b *InputBuffer) Len() int {
	return len(b.text)
}

// MoveLeft moves the cursor one rune to the left, stopping at 0
func (b *InputBuffer) MoveLeft() {
	b.cursor = b.Clamp(b.cursor - 1)
}

// MoveRight moves the cursor one rune to the right, stopping at the end
func (b *InputBuffer) MoveRight() {
	b.cursor = b.Clamp(b.cursor + 1)
}

// Insert puts c at the cursor and advances the cursor past it
func (b *InputBuffer) Insert(c rune) {
	text := make([]rune, 0, len(b.text)+1)
	text = append(text, b.text[:b.cursor]...)
	text = append(text, c)
	text = append(text, b.text[b.cursor:]...)
	b.text = text
	b.MoveRight()
}

// DeleteBeforeCursor removes the rune left of the cursor. It is a no-op
// when the cursor is at the start.
func (b *InputBuffer) DeleteBeforeCursor() {
	if b.cursor == 0 {
		return
	}
	target := b.cursor - 1

	text := make([]rune, 0, len(b.text)-1)
	text = append(text, b.text[:target]...)
	text = append(text, b.text[target+1:]...)
	b.text = text
	b.MoveLeft()
}

// Clear empties the buffer and resets the cursor
func (b *InputBuffer) Clear() {
	b.text = nil
	b.cursor = 0
}

// Clamp bounds pos to [0, Len()]
func (b *InputBuffer) Clamp(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(b.text) {
		return len(b.text)
	}
	return pos
}
