package srt

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"radioscribe/internal/pipeline"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00,000"},
		{0.5, "00:00:00,500"},
		{3.25, "00:00:03,250"},
		{83.5, "00:01:23,500"},
		{3600, "01:00:00,000"},
		{7325.75, "02:02:05,750"},
	}
	for _, tt := range tests {
		if got := formatTime(tt.seconds); got != tt.want {
			t.Errorf("formatTime(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestCompose(t *testing.T) {
	cues := []pipeline.Cue{
		{Text: "a b", Start: 0.0, End: 0.5},
		{Text: "c", Start: 3.0, End: 3.25},
	}
	doc, err := Compose(cues)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	want := "1\n00:00:00,000 --> 00:00:00,500\na b\n\n" +
		"2\n00:00:03,000 --> 00:00:03,250\nc\n\n"
	if doc != want {
		t.Errorf("Compose() = %q, want %q", doc, want)
	}
}

func TestCompose_Empty(t *testing.T) {
	doc, err := Compose(nil)
	if err != nil {
		t.Fatalf("Compose(nil) error = %v", err)
	}
	if doc != "" {
		t.Errorf("Compose(nil) = %q, want empty document", doc)
	}
}

func TestCompose_ContiguousIndices(t *testing.T) {
	cues := make([]pipeline.Cue, 5)
	for i := range cues {
		cues[i] = pipeline.Cue{Text: "cue", Start: float64(i), End: float64(i) + 0.5}
	}
	doc, err := Compose(cues)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	blocks := strings.Split(strings.TrimSuffix(doc, "\n\n"), "\n\n")
	if len(blocks) != len(cues) {
		t.Fatalf("got %d blocks, want %d", len(blocks), len(cues))
	}
	for i, block := range blocks {
		wantPrefix := fmt.Sprintf("%d\n", i+1)
		if !strings.HasPrefix(block, wantPrefix) {
			t.Errorf("block %d starts with %q, want index %d", i, block[:strings.Index(block, "\n")+1], i+1)
		}
	}
}

func TestCompose_InvalidCue(t *testing.T) {
	tests := []struct {
		name string
		cue  pipeline.Cue
	}{
		{"end before start", pipeline.Cue{Text: "x", Start: 2.0, End: 1.0}},
		{"empty text", pipeline.Cue{Text: "   ", Start: 0.0, End: 1.0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compose([]pipeline.Cue{tt.cue})
			if !errors.Is(err, ErrInvalidCue) {
				t.Errorf("Compose() error = %v, want ErrInvalidCue", err)
			}
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	cues := []pipeline.Cue{
		{Text: "cleared for takeoff", Start: 0.0, End: 2.5},
		{Text: "runway two seven", Start: 4.25, End: 6.75},
		{Text: "contact departure", Start: 10.0, End: 12.5},
	}
	doc, err := Compose(cues)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	parsed, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(parsed) != len(cues) {
		t.Fatalf("Parse() returned %d cues, want %d", len(parsed), len(cues))
	}
	for i := range cues {
		if parsed[i].Text != cues[i].Text {
			t.Errorf("cue %d text = %q, want %q", i, parsed[i].Text, cues[i].Text)
		}
		if parsed[i].Start != cues[i].Start || parsed[i].End != cues[i].End {
			t.Errorf("cue %d timing = [%v, %v], want [%v, %v]",
				i, parsed[i].Start, parsed[i].End, cues[i].Start, cues[i].End)
		}
	}
}

func TestParse_Empty(t *testing.T) {
	cues, err := Parse("")
	if err != nil {
		t.Fatalf("Parse(\"\") error = %v", err)
	}
	if len(cues) != 0 {
		t.Errorf("Parse(\"\") = %d cues, want 0", len(cues))
	}
}

func TestParse_MultilineText(t *testing.T) {
	doc := "1\n00:00:00,000 --> 00:00:02,000\nfirst line\nsecond line\n\n"
	cues, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(cues) != 1 || cues[0].Text != "first line\nsecond line" {
		t.Errorf("Parse() = %+v, want one cue with both lines", cues)
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing timing", "1\nonly text\n\n"},
		{"bad index", "x\n00:00:00,000 --> 00:00:01,000\ntext\n\n"},
		{"bad arrow", "1\n00:00:00,000 -- 00:00:01,000\ntext\n\n"},
		{"bad timestamp", "1\n00:00:00.000 --> 00:00:01,000\ntext\n\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.doc); err == nil {
				t.Error("Parse() succeeded on malformed input")
			}
		})
	}
}
