package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"radioscribe/internal/config"
	"radioscribe/internal/worker"

	"github.com/spf13/cobra"
)

var processCmd = &cobra.Command{
	Use:   "process <transcript.json>...",
	Short: "Merge word-level transcripts into SRT and phonetic text",
	Long: `Process one or more word-level transcript JSON files. Each input yields a
<name>.srt subtitle file with sentence-level timing and a <name>.txt plain
transcript with phonetic-alphabet words collapsed to single letters.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runProcess,
}

var (
	configPath string
	outputDir  string
	noTxt      bool
	noAsync    bool
	showStats  bool

	maxConcurrent int
	maxTextLen    int
	maxGap        float64
)

func init() {
	defaults := config.Default()

	processCmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	processCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "output directory (default: next to each input)")
	processCmd.Flags().BoolVar(&noTxt, "no-transcript", false, "skip the phonetic .txt artifact")
	processCmd.Flags().BoolVar(&noAsync, "no-async", false, "process files one at a time")
	processCmd.Flags().BoolVar(&showStats, "stats", false, "print a per-file summary table")
	processCmd.Flags().IntVarP(&maxConcurrent, "max-concurrent", "j", defaults.Worker.MaxConcurrent, "max files processed in parallel")
	processCmd.Flags().IntVar(&maxTextLen, "max-len", defaults.Merge.MaxTextLen, "cue text length limit in characters (exclusive)")
	processCmd.Flags().Float64Var(&maxGap, "max-gap", defaults.Merge.MaxGap, "silence gap in seconds that breaks a cue (exclusive)")

	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	inputs := make([]string, 0, len(args))
	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return fmt.Errorf("resolve path: %w", err)
		}
		if _, err := os.Stat(abs); os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", arg)
		}
		inputs = append(inputs, abs)
	}

	if cfg.Output.Dir != "" {
		if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	results, err := worker.RunBatch(ctx, worker.BatchOptions{
		Inputs:        inputs,
		OutputDir:     cfg.Output.Dir,
		Merge:         cfg.Merge,
		Transcript:    cfg.Output.Transcript,
		MaxConcurrent: cfg.Worker.MaxConcurrent,
		NoAsync:       noAsync,
	})
	if err != nil {
		return err
	}

	if showStats {
		fmt.Fprintln(cmd.OutOrStdout(), statsTable(results))
	}

	if !quiet {
		slog.Info("done", "files", len(results))
	}
	return nil
}

// loadConfig merges defaults, the optional config file, and explicit flags,
// flags winning.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("max-len") {
		cfg.Merge.MaxTextLen = maxTextLen
	}
	if cmd.Flags().Changed("max-gap") {
		cfg.Merge.MaxGap = maxGap
	}
	if cmd.Flags().Changed("max-concurrent") {
		cfg.Worker.MaxConcurrent = maxConcurrent
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.Output.Dir = outputDir
	}
	if noTxt {
		cfg.Output.Transcript = false
	}
	return cfg, nil
}

func statsTable(results []worker.Result) string {
	headers := []string{"File", "Words", "Cues", "SRT", "Transcript"}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		txt := r.TxtPath
		if txt == "" {
			txt = "-"
		}
		rows = append(rows, []string{
			filepath.Base(r.Input),
			strconv.Itoa(r.Words),
			strconv.Itoa(r.Cues),
			filepath.Base(r.SRTPath),
			filepath.Base(txt),
		})
	}
	return renderTable(headers, rows, []columnAlignment{alignLeft, alignRight, alignRight, alignLeft, alignLeft})
}
