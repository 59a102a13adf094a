package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptQueueSubmitMatch(t *testing.T) {
	q := NewPromptQueue([]string{"cat", "dog"})
	b := NewInputBuffer()
	typeText(b, "cat")

	require.True(t, q.TrySubmit(b.Text()))
	b.Clear()

	assert.Equal(t, "dog", q.Current())
	assert.Equal(t, "", b.Text())
	assert.Equal(t, 0, b.Cursor())
	assert.Equal(t, []string{"cat"}, q.History())
}

func TestPromptQueueSubmitMismatch(t *testing.T) {
	q := NewPromptQueue([]string{"cat", "dog"})
	b := NewInputBuffer()
	typeText(b, "cot")

	assert.False(t, q.TrySubmit(b.Text()))
	assert.Equal(t, "cat", q.Current())
	assert.Equal(t, 2, q.Len())
	assert.Empty(t, q.History())
	assert.Equal(t, "cot", b.Text())
}

func TestPromptQueueSubmitExactness(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{"exact", "Straße", true},
		{"case", "straße", false},
		{"shorter", "Straß", false},
		{"longer", "Straßes", false},
		{"trailing space", "Straße ", false},
		{"one rune differs", "Strasse", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewPromptQueue([]string{"Straße", "next"})
			assert.Equal(t, tt.want, q.TrySubmit(tt.candidate))
			if !tt.want {
				assert.Equal(t, "Straße", q.Current())
				assert.Equal(t, 2, q.Len())
			}
		})
	}
}

func TestPromptQueuePeek(t *testing.T) {
	q := NewPromptQueue([]string{"a", "b", "c", "d"})

	assert.Equal(t, []string{"b", "c"}, q.Peek(2))
	assert.Equal(t, []string{"b", "c", "d"}, q.Peek(20))
	assert.Nil(t, q.Peek(0))

	single := NewPromptQueue([]string{"only"})
	assert.Empty(t, single.Peek(5))
}

func TestPromptQueueExhaustion(t *testing.T) {
	q := NewPromptQueue([]string{"last"})
	require.True(t, q.TrySubmit("last"))

	assert.True(t, q.Empty())
	assert.Equal(t, "", q.Current())
	assert.False(t, q.TrySubmit(""))
	assert.Equal(t, []string{"last"}, q.History())
}

func TestPromptQueueCopiesInput(t *testing.T) {
	prompts := []string{"one", "two"}
	q := NewPromptQueue(prompts)
	prompts[0] = "changed"

	assert.Equal(t, "one", q.Current())
}
