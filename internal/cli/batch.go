package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/masashitakano917-maker/apt-explain-sub000/internal/pipeline"
	"github.com/masashitakano917-maker/apt-explain-sub000/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	batchTone    string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <csv>",
	Short: "Generate copy for many properties from a CSV file in parallel",
	Long: `Batch generates copy for many properties concurrently:
- Read rows from a CSV file (name,url[,tone[,min,max]])
- Process rows in parallel with a configurable worker count
- One row's failure never affects the others
- Write per-property text and JSON results to the output directory

Example:
  apt-explain batch mansions.csv
  apt-explain batch mansions.csv --concurrency 8 --output-dir ./copy
  apt-explain batch mansions.csv --llm-provider openai --tone 高級感`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", 0, "number of concurrent workers (0 = config default)")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./apt-explain-out", "output directory for results")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 30*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().StringVar(&batchTone, "tone", "", "tone for rows that do not set one")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh fetch)")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "", "LLM provider (openai, anthropic, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg := loadConfig()
	if noCache {
		cfg.Cache.Enabled = false
	}
	if concurrency > 0 {
		cfg.Concurrency.Workers = concurrency
	}
	if err := applyLLMFlags(cfg, llmProvider, llmModel); err != nil {
		return err
	}

	rowsFile, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	rows, err := worker.ReadRows(rowsFile)
	_ = rowsFile.Close()
	if err != nil {
		return fmt.Errorf("read rows: %w", err)
	}
	if batchTone != "" {
		for i := range rows {
			if rows[i].Tone == "" {
				rows[i].Tone = batchTone
			}
		}
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Input file: %s\n", file)
	fmt.Fprintf(os.Stderr, "Rows:       %d\n", len(rows))
	fmt.Fprintf(os.Stderr, "Workers:    %d\n", cfg.Concurrency.Workers)
	fmt.Fprintf(os.Stderr, "Output dir: %s\n", outputDir)
	fmt.Fprintln(os.Stderr)

	p := pipeline.NewPipeline(cfg)
	processor := worker.NewBatchProcessor(p, cfg.Concurrency.Workers)

	outcomes := processor.ProcessRows(ctx, rows)

	successCount := 0
	failureCount := 0
	issueCount := 0

	for _, outcome := range outcomes {
		if outcome.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", outcome.Row.URL, outcome.Error)
			continue
		}
		successCount++
		issueCount += len(outcome.Result.Issues)

		slug := sanitizeFilename(outcome.Row.Name)
		textPath := filepath.Join(outputDir, slug+".txt")
		jsonPath := filepath.Join(outputDir, slug+".json")

		if err := os.WriteFile(textPath, []byte(outcome.Result.Text+"\n"), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: write text: %v\n", outcome.Row.URL, err)
			continue
		}
		if err := writeJSON(jsonPath, outcome.Result); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: write JSON: %v\n", outcome.Row.URL, err)
			continue
		}

		fmt.Fprintf(os.Stderr, "✓ %s (%d issues)\n", outcome.Row.Name, len(outcome.Result.Issues))
	}

	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, "Total:    %d\n", len(outcomes))
	fmt.Fprintf(os.Stderr, "Success:  %d\n", successCount)
	fmt.Fprintf(os.Stderr, "Failures: %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "Issues:   %d\n", issueCount)
	fmt.Fprintf(os.Stderr, "Output:   %s\n", outputDir)

	return nil
}

// sanitizeFilename turns a property name into a safe file name.
func sanitizeFilename(s string) string {
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
		" ", "-",
		"　", "-",
	)
	s = replacer.Replace(strings.TrimSpace(s))

	if runes := []rune(s); len(runes) > 60 {
		s = string(runes[:60])
	}
	if s == "" {
		s = "untitled"
	}
	return s
}
