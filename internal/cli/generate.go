package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/masashitakano917-maker/apt-explain-sub000/internal/model"
	"github.com/masashitakano917-maker/apt-explain-sub000/internal/pipeline"
)

var (
	genName     string
	genTone     string
	genMin      int
	genMax      int
	genTimeout  time.Duration
	genOutJSON  string
	userAgent   string
	noCache     bool
	noRobots    bool
	httpProxy   string
	httpsProxy  string
	llmProvider string
	llmModel    string
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <url>",
	Short: "Generate building copy from a listing page",
	Long: `Generate fetches one listing page, extracts the building facts and
produces compliant building-level copy:
- Extracted facts override anything the draft asserts
- Sentences with prices, phone numbers, URLs, solicitation or
  unit-identifying details are deleted whole
- The final text is annotated with every rule the catalog still flags
- Character count is kept inside the requested range

Without --llm-provider the copy comes from a deterministic fact
template; with it, the provider drafts and the engine enforces.

Example:
  apt-explain generate https://example.com/mansion/123 --name "グランドパレス品川"
  apt-explain generate https://example.com/mansion/123 --name "グランドパレス品川" \
    --llm-provider openai --tone 高級感 --min 450 --max 550`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&genName, "name", "", "property name (required)")
	generateCmd.Flags().StringVar(&genTone, "tone", "標準", "copy tone (標準, 親しみやすい, フォーマル, 高級感)")
	generateCmd.Flags().IntVar(&genMin, "min", 0, "minimum characters (0 = config default)")
	generateCmd.Flags().IntVar(&genMax, "max", 0, "maximum characters (0 = config default)")
	generateCmd.Flags().DurationVar(&genTimeout, "timeout", 3*time.Minute, "overall generation timeout")
	generateCmd.Flags().StringVar(&genOutJSON, "json", "", "write the full result as JSON to this path")

	generateCmd.Flags().StringVar(&userAgent, "ua", "", "HTTP User-Agent override")
	generateCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh fetch)")
	generateCmd.Flags().BoolVar(&noRobots, "no-robots", false, "skip robots.txt checks")
	generateCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	generateCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")

	generateCmd.Flags().StringVar(&llmProvider, "llm-provider", "", "LLM provider (openai, anthropic, ollama)")
	generateCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")

	_ = generateCmd.MarkFlagRequired("name")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	url := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), genTimeout)
	defer cancel()

	cfg := loadConfig()
	if userAgent != "" {
		cfg.HTTP.UserAgent = userAgent
	}
	cfg.HTTP.HTTPProxy = httpProxy
	cfg.HTTP.HTTPSProxy = httpsProxy
	if noCache {
		cfg.Cache.Enabled = false
	}
	if noRobots {
		cfg.HTTP.RespectRobots = false
	}
	if err := applyLLMFlags(cfg, llmProvider, llmModel); err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Generating: %s\n", genName)
		fmt.Fprintf(os.Stderr, "Source:     %s\n", url)
		fmt.Fprintln(os.Stderr)
	}

	p := pipeline.NewPipeline(cfg)

	result, err := p.Generate(ctx, model.GenerateRequest{
		Name:     genName,
		URL:      url,
		Tone:     genTone,
		MinChars: genMin,
		MaxChars: genMax,
	})
	if err != nil {
		return fmt.Errorf("generate failed: %w", err)
	}

	printResultDiagnostics(result)

	fmt.Println(result.Text)

	if genOutJSON != "" {
		if err := writeJSON(genOutJSON, result); err != nil {
			return fmt.Errorf("write JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote %s\n", genOutJSON)
		}
	}

	return nil
}

// printResultDiagnostics reports warnings, deleted sentences and open issues
// on stderr, keeping stdout clean for the copy itself.
func printResultDiagnostics(result *model.GenerateResult) {
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "! %s\n", w)
	}
	for _, d := range result.Deleted {
		fmt.Fprintf(os.Stderr, "- 削除: %s", d.Text)
		for _, reason := range d.Reasons {
			fmt.Fprintf(os.Stderr, " [%s]", reason)
		}
		fmt.Fprintln(os.Stderr)
	}
	for _, issue := range result.Issues {
		fmt.Fprintf(os.Stderr, "%s %s (%s): %s\n", issue.Severity, issue.RuleID, issue.Excerpt, issue.Message)
	}
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
