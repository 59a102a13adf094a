package logic

import (
	"iter"
	"slices"
)

// MaxPreview is the most upcoming prompts shown after the current one
const MaxPreview = 20

// SegmentKind classifies a rendered piece of the prompt line
type SegmentKind int

const (
	Correct SegmentKind = iota
	Incorrect
	Pending
	Preview
)

func (k SegmentKind) String() string {
	switch k {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	case Pending:
		return "pending"
	case Preview:
		return "preview"
	default:
		return "unknown"
	}
}

// Segment is one styled piece of the prompt line
type Segment struct {
	Kind SegmentKind
	Text string
}

// Segments compares input against target rune by rune and yields one
// segment per target position, followed by the upcoming prompts as
// preview segments. Typed runes are shown as typed; untyped positions
// show the target. Input beyond the target's length is not rendered.
func Segments(target, input string, upcoming []string) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		want := []rune(target)
		typed := []rune(input)

		for i, w := range want {
			var seg Segment
			switch {
			case i >= len(typed):
				seg = Segment{Kind: Pending, Text: string(w)}
			case typed[i] == w:
				seg = Segment{Kind: Correct, Text: string(typed[i])}
			default:
				seg = Segment{Kind: Incorrect, Text: string(typed[i])}
			}
			if !yield(seg) {
				return
			}
		}

		for i, p := range upcoming {
			if i >= MaxPreview {
				return
			}
			if !yield(Segment{Kind: Preview, Text: " " + p}) {
				return
			}
		}
	}
}

// CollectSegments materializes Segments into a slice
func CollectSegments(target, input string, upcoming []string) []Segment {
	return slices.Collect(Segments(target, input, upcoming))
}
