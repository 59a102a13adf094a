package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typetrainer/internal/keyboard"
)

func TestSubmit(t *testing.T) {
	s := NewAppState([]string{"cat", "dog"}, keyboard.Qwerty)
	for _, r := range "cat" {
		s.Buffer.Insert(r)
	}

	require.True(t, s.Submit())
	assert.Equal(t, "dog", s.Prompts.Current())
	assert.Equal(t, "", s.Buffer.Text())
	assert.Equal(t, 0, s.Buffer.Cursor())
	assert.False(t, s.Finished)
}

func TestSubmitRejected(t *testing.T) {
	s := NewAppState([]string{"cat", "dog"}, keyboard.Qwerty)
	for _, r := range "te" {
		s.Buffer.Insert(r)
	}

	assert.False(t, s.Submit())
	assert.Equal(t, "te", s.Buffer.Text())
	assert.Equal(t, 2, s.Buffer.Cursor())
	assert.Equal(t, "cat", s.Prompts.Current())
}

func TestSubmitLastPromptFinishes(t *testing.T) {
	s := NewAppState([]string{"go"}, keyboard.Qwerty)
	s.Buffer.Insert('g')
	s.Buffer.Insert('o')

	require.True(t, s.Submit())
	assert.True(t, s.Finished)
	assert.True(t, s.Prompts.Empty())
}

func TestCycleLayout(t *testing.T) {
	s := NewAppState([]string{"x"}, keyboard.Qwerty)

	assert.Equal(t, keyboard.Azerty, s.CycleLayout())
	assert.Equal(t, keyboard.Colemark, s.CycleLayout())
	assert.Equal(t, keyboard.Dvorak, s.CycleLayout())
	assert.Equal(t, keyboard.Qwerty, s.CycleLayout())
}
