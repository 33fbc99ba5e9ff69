package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInputOrder is returned by CheckOrder when word start times are
// not non-decreasing.
var ErrInvalidInputOrder = errors.New("word start times out of order")

// FilterWords drops empty and whitespace-only words and trims the rest.
// The merger requires its input to be filtered this way.
func FilterWords(words []Word) []Word {
	filtered := make([]Word, 0, len(words))
	for _, w := range words {
		text := strings.TrimSpace(w.Text)
		if text == "" {
			continue
		}
		w.Text = text
		filtered = append(filtered, w)
	}
	return filtered
}

// CheckOrder verifies that word start times are non-decreasing and that
// each word has start <= end. The merger itself does not validate ordering;
// callers that want a hard guarantee run this first. Violations merge with
// negative gaps, which is accepted but produces inverted cue timing.
func CheckOrder(words []Word) error {
	prev := 0.0
	for i, w := range words {
		if w.End < w.Start {
			return fmt.Errorf("%w: word %d %q ends at %.3f before start %.3f",
				ErrInvalidInputOrder, i, w.Text, w.End, w.Start)
		}
		if w.Start < prev {
			return fmt.Errorf("%w: word %d %q starts at %.3f after %.3f",
				ErrInvalidInputOrder, i, w.Text, w.Start, prev)
		}
		prev = w.Start
	}
	return nil
}
