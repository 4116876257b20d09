package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/masashitakano917-maker/apt-explain-sub000/internal/model"
	"github.com/masashitakano917-maker/apt-explain-sub000/internal/pipeline"
)

var (
	polishTone    string
	polishMin     int
	polishMax     int
	polishTimeout time.Duration
)

// polishCmd represents the polish command
var polishCmd = &cobra.Command{
	Use:   "polish [file]",
	Short: "Adjust the tone of existing copy without changing its facts",
	Long: `Polish rewrites existing copy into the requested tone. Facts found in
the text are locked through the rewrite and forced back afterwards, and
the result goes through the same sentence filter and length control as
generated copy. On any failure the input text is returned unchanged.

Requires an LLM provider.

Example:
  apt-explain polish draft.txt --tone 高級感 --llm-provider openai
  cat draft.txt | apt-explain polish --tone 親しみやすい --llm-provider ollama`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPolish,
}

func init() {
	rootCmd.AddCommand(polishCmd)

	polishCmd.Flags().StringVar(&polishTone, "tone", "標準", "copy tone (標準, 親しみやすい, フォーマル, 高級感)")
	polishCmd.Flags().IntVar(&polishMin, "min", 0, "minimum characters (0 = config default)")
	polishCmd.Flags().IntVar(&polishMax, "max", 0, "maximum characters (0 = config default)")
	polishCmd.Flags().DurationVar(&polishTimeout, "timeout", 2*time.Minute, "overall polish timeout")

	polishCmd.Flags().StringVar(&llmProvider, "llm-provider", "", "LLM provider (openai, anthropic, ollama)")
	polishCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func runPolish(cmd *cobra.Command, args []string) error {
	text, err := readTextInput(args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), polishTimeout)
	defer cancel()

	cfg := loadConfig()
	if err := applyLLMFlags(cfg, llmProvider, llmModel); err != nil {
		return err
	}

	p := pipeline.NewPipeline(cfg)
	result, err := p.Polish(ctx, model.PolishRequest{
		Text:     text,
		Tone:     polishTone,
		MinChars: polishMin,
		MaxChars: polishMax,
	})
	if err != nil {
		return fmt.Errorf("polish failed: %w", err)
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "! %s\n", w)
	}
	fmt.Println(result.Text)

	return nil
}
