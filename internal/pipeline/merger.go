package pipeline

import (
	"strings"
	"unicode/utf8"
)

// Merger groups word-level tokens into sentence-level cues.
//
// Words are absorbed into the open cue as long as the silence gap before
// them stays under MaxGap and the joined text stays under MaxTextLen runes.
// Both thresholds are exclusive: a word that exactly meets either limit
// seals the open cue and starts a new one.
type Merger struct {
	MaxTextLen int
	MaxGap     float64
}

// NewMerger creates a merger with the given text length and gap limits.
func NewMerger(maxTextLen int, maxGap float64) *Merger {
	return &Merger{MaxTextLen: maxTextLen, MaxGap: maxGap}
}

// Merge runs a single greedy left-to-right pass over words and returns the
// sealed cues in input order. Words must be pre-filtered (no empty text,
// see FilterWords) and sorted by start time; ordering is not re-checked
// here. An empty input yields an empty output.
func (m *Merger) Merge(words []Word) []Cue {
	var cues []Cue
	var open *Cue

	for _, w := range words {
		text := strings.TrimSpace(w.Text)

		if open == nil {
			open = &Cue{Text: text, Start: w.Start, End: w.End, WordCount: 1}
			continue
		}

		gap := w.Start - open.End
		candidate := open.Text + " " + text
		if gap < m.MaxGap && utf8.RuneCountInString(candidate) < m.MaxTextLen {
			open.Text = strings.TrimSpace(candidate)
			open.End = w.End
			open.WordCount++
			continue
		}

		cues = append(cues, *open)
		open = &Cue{Text: text, Start: w.Start, End: w.End, WordCount: 1}
	}

	if open != nil {
		cues = append(cues, *open)
	}

	return cues
}
