package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"radioscribe/internal/config"
	"radioscribe/internal/phonetic"
	"radioscribe/internal/pipeline"
	"radioscribe/internal/srt"

	"github.com/google/uuid"
)

// Options configures processing of a single transcript file.
type Options struct {
	InputPath  string
	OutputDir  string
	Merge      config.MergeSettings
	Transcript bool
}

// Result summarizes one processed transcript.
type Result struct {
	JobID   string
	Input   string
	Words   int
	Cues    int
	SRTPath string
	TxtPath string
}

// ProcessFile reads a word-level transcript JSON file, merges its words
// into sentence-level cues, and writes the SRT artifact plus, when enabled,
// the phonetic-normalized plain-text transcript.
func ProcessFile(ctx context.Context, opts Options) (*Result, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	jobID := uuid.NewString()
	log := slog.With("job", jobID[:8], "input", filepath.Base(opts.InputPath))

	transcript, err := readTranscript(opts.InputPath)
	if err != nil {
		return nil, err
	}

	words := pipeline.FilterWords(transcript.Words)
	if err := pipeline.CheckOrder(words); err != nil {
		// Best-effort: out-of-order words merge with negative gaps.
		log.Warn("transcript words out of order", "err", err)
	}
	if len(words) == 0 {
		log.Warn("transcript contains no words, writing empty subtitles")
	}

	merger := pipeline.NewMerger(opts.Merge.MaxTextLen, opts.Merge.MaxGap)
	cues := merger.Merge(words)
	log.Info("merged transcript", "words", len(words), "cues", len(cues))

	doc, err := srt.Compose(cues)
	if err != nil {
		return nil, fmt.Errorf("compose SRT: %w", err)
	}

	srtPath := outputPath(opts.InputPath, opts.OutputDir, ".srt")
	if err := os.WriteFile(srtPath, []byte(doc), 0644); err != nil {
		return nil, fmt.Errorf("write SRT file: %w", err)
	}
	log.Info("SRT file saved", "path", srtPath)

	result := &Result{
		JobID:   jobID,
		Input:   opts.InputPath,
		Words:   len(words),
		Cues:    len(cues),
		SRTPath: srtPath,
	}

	if opts.Transcript {
		txtPath := outputPath(opts.InputPath, opts.OutputDir, ".txt")
		if err := os.WriteFile(txtPath, []byte(phonetic.Translate(doc)), 0644); err != nil {
			return nil, fmt.Errorf("write transcript file: %w", err)
		}
		log.Info("phonetic transcript saved", "path", txtPath)
		result.TxtPath = txtPath
	}

	return result, nil
}

func readTranscript(path string) (*pipeline.Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}
	var transcript pipeline.Transcript
	if err := json.Unmarshal(data, &transcript); err != nil {
		return nil, fmt.Errorf("decode transcript %s: %w", filepath.Base(path), err)
	}
	return &transcript, nil
}

// outputPath derives an artifact path from the input path, swapping the
// extension and honoring the output directory override.
func outputPath(inputPath, outputDir, ext string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath)) + ext
	if outputDir != "" {
		return filepath.Join(outputDir, base)
	}
	return filepath.Join(filepath.Dir(inputPath), base)
}
