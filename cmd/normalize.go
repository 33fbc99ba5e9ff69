package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"radioscribe/internal/phonetic"
	"radioscribe/internal/srt"

	"github.com/spf13/cobra"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <file>",
	Short: "Collapse phonetic-alphabet words in an existing text or SRT file",
	Long: `Normalize runs the phonetic translator over an existing subtitle or plain
text file, replacing NATO phonetic-alphabet words (Alpha, Bravo, ...) with
their single letters. With --text-only an SRT input is parsed first and only
the cue text lines are emitted.`,
	Args: cobra.ExactArgs(1),
	RunE: runNormalize,
}

var (
	normalizeOutput string
	textOnly        bool
)

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeOutput, "output", "o", "", "output path (default: <input>.txt)")
	normalizeCmd.Flags().BoolVar(&textOnly, "text-only", false, "parse SRT input and emit cue text without timing")

	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	inputPath, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	content := string(data)

	if textOnly {
		cues, err := srt.Parse(content)
		if err != nil {
			return fmt.Errorf("parse SRT: %w", err)
		}
		var sb strings.Builder
		for _, cue := range cues {
			sb.WriteString(cue.Text)
			sb.WriteByte('\n')
		}
		content = sb.String()
	}

	outputPath := normalizeOutput
	if outputPath == "" {
		outputPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".txt"
		if outputPath == inputPath {
			outputPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".normalized.txt"
		}
	}

	if err := os.WriteFile(outputPath, []byte(phonetic.Translate(content)), 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if !quiet {
		slog.Info("normalized transcript saved", "path", outputPath)
	}
	return nil
}
