// Package srt serializes sentence-level cues to the SubRip subtitle format
// and parses such documents back into cues.
package srt

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"radioscribe/internal/pipeline"
)

// ErrInvalidCue is returned by Compose for a cue that violates the cue
// invariants (end before start, or empty text). Well-formed pipeline output
// never trips this; it is a contract check.
var ErrInvalidCue = errors.New("invalid cue")

// formatTime converts seconds to the SRT time format HH:MM:SS,mmm,
// truncating below millisecond precision.
func formatTime(seconds float64) string {
	total := math.Abs(seconds)
	hours := int(total / 3600)
	remainder := math.Mod(total, 3600)
	minutes := int(remainder / 60)
	secs := math.Mod(remainder, 60)
	millis := int(math.Mod(secs, 1) * 1000)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, int(secs), millis)
}

// parseTime converts an SRT timestamp back to seconds.
func parseTime(s string) (float64, error) {
	var hours, minutes, secs, millis int
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%d:%d:%d,%d", &hours, &minutes, &secs, &millis); err != nil {
		return 0, fmt.Errorf("timestamp %q: %w", s, err)
	}
	return float64(hours)*3600 + float64(minutes)*60 + float64(secs) + float64(millis)/1000, nil
}

// Compose serializes cues into an SRT document. Indices are 1-based and
// contiguous, each block is followed by a blank line, and an empty cue
// sequence yields an empty document.
func Compose(cues []pipeline.Cue) (string, error) {
	var sb strings.Builder
	for i, cue := range cues {
		if cue.End < cue.Start {
			return "", fmt.Errorf("%w: cue %d ends at %.3f before start %.3f", ErrInvalidCue, i+1, cue.End, cue.Start)
		}
		text := strings.TrimSpace(cue.Text)
		if text == "" {
			return "", fmt.Errorf("%w: cue %d has empty text", ErrInvalidCue, i+1)
		}
		fmt.Fprintf(&sb, "%d\n%s --> %s\n%s\n\n", i+1, formatTime(cue.Start), formatTime(cue.End), text)
	}
	return sb.String(), nil
}

// Parse reconstructs the cue sequence from an SRT document produced by
// Compose. Word counts are not recoverable and are left zero.
func Parse(doc string) ([]pipeline.Cue, error) {
	doc = strings.ReplaceAll(doc, "\r\n", "\n")

	var cues []pipeline.Cue
	for _, block := range strings.Split(doc, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		lines := strings.Split(block, "\n")
		if len(lines) < 3 {
			return nil, fmt.Errorf("block %d: expected index, timing and text lines", len(cues)+1)
		}
		if _, err := strconv.Atoi(strings.TrimSpace(lines[0])); err != nil {
			return nil, fmt.Errorf("block %d: bad index line %q", len(cues)+1, lines[0])
		}

		startStr, endStr, ok := strings.Cut(lines[1], "-->")
		if !ok {
			return nil, fmt.Errorf("block %d: bad timing line %q", len(cues)+1, lines[1])
		}
		start, err := parseTime(startStr)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", len(cues)+1, err)
		}
		end, err := parseTime(endStr)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", len(cues)+1, err)
		}

		cues = append(cues, pipeline.Cue{
			Text:  strings.TrimSpace(strings.Join(lines[2:], "\n")),
			Start: start,
			End:   end,
		})
	}
	return cues, nil
}
