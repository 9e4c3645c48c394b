package core

import (
	"errors"
	"fmt"
)

// ErrInvalidTopic is returned when a topic input cannot be normalized into
// the canonical Topic shape.
var ErrInvalidTopic = errors.New("invalid topic")

// Topic is the canonical debate subject. Callers may hand the engine looser
// shapes (a bare string, a [2]string pair, a map); NormalizeTopic converts
// them once at the boundary so the orchestrator never inspects shapes.
type Topic struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// String returns a short human readable form used in logs and prompts.
func (t Topic) String() string {
	if t.Category == "" {
		return t.Text
	}
	return fmt.Sprintf("%s (%s)", t.Text, t.Category)
}

// NormalizeTopic converts a mixed-shape topic input into a canonical Topic.
// Accepted shapes:
//
//   - Topic / *Topic: returned as-is (pointer dereferenced)
//   - string: topic text with empty category
//   - [2]string / []string of length 2: (text, category) pair
//   - map[string]string with "text" and optional "category" keys
//
// Anything else, or an empty topic text, yields ErrInvalidTopic. Malformed
// input is surfaced here, at the call that received it, rather than deep in
// the debate pipeline.
func NormalizeTopic(v any) (Topic, error) {
	switch t := v.(type) {
	case Topic:
		return validated(t)
	case *Topic:
		if t == nil {
			return Topic{}, fmt.Errorf("%w: nil topic", ErrInvalidTopic)
		}
		return validated(*t)
	case string:
		return validated(Topic{Text: t})
	case [2]string:
		return validated(Topic{Text: t[0], Category: t[1]})
	case []string:
		if len(t) != 2 {
			return Topic{}, fmt.Errorf("%w: want a (text, category) pair, got %d elements", ErrInvalidTopic, len(t))
		}
		return validated(Topic{Text: t[0], Category: t[1]})
	case map[string]string:
		text, ok := t["text"]
		if !ok {
			return Topic{}, fmt.Errorf("%w: map input missing %q key", ErrInvalidTopic, "text")
		}
		return validated(Topic{Text: text, Category: t["category"]})
	default:
		return Topic{}, fmt.Errorf("%w: unsupported input type %T", ErrInvalidTopic, v)
	}
}

func validated(t Topic) (Topic, error) {
	if t.Text == "" {
		return Topic{}, fmt.Errorf("%w: empty topic text", ErrInvalidTopic)
	}
	return t, nil
}
