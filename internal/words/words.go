// Package words provides the practice word list and builds the prompt queue from it.
package words

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
)

// PromptCount is the number of prompts drawn for a session
const PromptCount = 2000

//go:embed words.txt
var builtin string

// ErrNoWords is returned when a word source yields no usable entries
var ErrNoWords = errors.New("word list is empty")

// Load parses the built-in word list
func Load() ([]string, error) {
	return Parse(strings.NewReader(builtin))
}

// Parse reads one word per line, skipping blank lines and trimming
// surrounding whitespace.
func Parse(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	return words, nil
}

// Sample draws n words uniformly at random, with replacement
func Sample(words []string, n int, rng *rand.Rand) []string {
	if len(words) == 0 || n <= 0 {
		return nil
	}
	prompts := make([]string, n)
	for i := range prompts {
		prompts[i] = words[rng.IntN(len(words))]
	}
	return prompts
}
