package domain

// PromptQueue holds the prompts still to be typed. The first element is
// the current prompt; it only advances on an exact match.
type PromptQueue struct {
	prompts []string
	history []string // submitted prompts in completion order
}

// NewPromptQueue creates a queue over a copy of prompts
func NewPromptQueue(prompts []string) *PromptQueue {
	q := &PromptQueue{
		prompts: make([]string, len(prompts)),
		history: make([]string, 0),
	}
	copy(q.prompts, prompts)
	return q
}

// Current returns the prompt to type, or "" once the queue is exhausted
func (q *PromptQueue) Current() string {
	if len(q.prompts) == 0 {
		return ""
	}
	return q.prompts[0]
}

// Peek returns up to n prompts following the current one
func (q *PromptQueue) Peek(n int) []string {
	if n <= 0 || len(q.prompts) <= 1 {
		return nil
	}
	end := 1 + n
	if end > len(q.prompts) {
		end = len(q.prompts)
	}
	upcoming := make([]string, end-1)
	copy(upcoming, q.prompts[1:end])
	return upcoming
}

// TrySubmit advances the queue if candidate equals the current prompt
// exactly. It reports whether the submission was accepted; on false
// nothing changes.
func (q *PromptQueue) TrySubmit(candidate string) bool {
	if len(q.prompts) == 0 || candidate != q.prompts[0] {
		return false
	}
	q.prompts = q.prompts[1:]
	q.history = append(q.history, candidate)
	return true
}

// Len returns the number of prompts left, including the current one
func (q *PromptQueue) Len() int {
	return len(q.prompts)
}

// Empty reports whether every prompt has been submitted
func (q *PromptQueue) Empty() bool {
	return len(q.prompts) == 0
}

// History returns the submitted prompts in completion order
func (q *PromptQueue) History() []string {
	history := make([]string, len(q.history))
	copy(history, q.history)
	return history
}
