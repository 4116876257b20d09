package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/masashitakano917-maker/apt-explain-sub000/internal/model"
	"github.com/masashitakano917-maker/apt-explain-sub000/internal/pipeline"
)

var (
	checkScope     string
	checkAnnotate  bool
	checkFactsJSON string
	checkOutJSON   string
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Check existing copy against the compliance rules",
	Long: `Check runs the compliance pass over existing copy, read from a file
or from stdin.

Default mode deletes every sentence that trips the NG catalog (prices,
phone numbers, URLs, solicitation, unit-identifying details in building
scope) and prints the surviving text. With --annotate nothing is
rewritten: every catalog hit is listed with its position and excerpt.

With --facts the supplied facts are forced into the text before
checking, overriding whatever the copy asserted about them.

Example:
  apt-explain check draft.txt
  cat draft.txt | apt-explain check --scope unit
  apt-explain check draft.txt --annotate
  apt-explain check draft.txt --facts facts.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkScope, "scope", "building", "checking scope (building, unit)")
	checkCmd.Flags().BoolVar(&checkAnnotate, "annotate", false, "annotate issues instead of deleting sentences")
	checkCmd.Flags().StringVar(&checkFactsJSON, "facts", "", "JSON file with authoritative facts to force")
	checkCmd.Flags().StringVar(&checkOutJSON, "json", "", "write the full result as JSON to this path")
}

func runCheck(cmd *cobra.Command, args []string) error {
	text, err := readTextInput(args)
	if err != nil {
		return err
	}

	var scope model.Scope
	switch checkScope {
	case "building":
		scope = model.ScopeBuilding
	case "unit":
		scope = model.ScopeUnit
	default:
		return fmt.Errorf("unknown scope: %s (want building or unit)", checkScope)
	}

	mode := model.ModeDelete
	if checkAnnotate {
		mode = model.ModeAnnotate
	}

	var facts *model.Facts
	if checkFactsJSON != "" {
		data, err := os.ReadFile(checkFactsJSON)
		if err != nil {
			return fmt.Errorf("read facts file: %w", err)
		}
		facts = &model.Facts{}
		if err := json.Unmarshal(data, facts); err != nil {
			return fmt.Errorf("parse facts file: %w", err)
		}
	}

	p := pipeline.NewPipeline(loadConfig())
	result := p.Check(model.CheckRequest{
		Text:  text,
		Scope: scope,
		Mode:  mode,
		Facts: facts,
	})

	if mode == model.ModeAnnotate {
		if len(result.Issues) == 0 {
			fmt.Fprintln(os.Stderr, "指摘事項はありません")
		}
		for _, issue := range result.Issues {
			fmt.Printf("%s %s [%d:%d] %s: %s\n",
				issue.Severity, issue.RuleID, issue.Start, issue.End, issue.Excerpt, issue.Message)
		}
	} else {
		for _, d := range result.Deleted {
			fmt.Fprintf(os.Stderr, "- 削除: %s", d.Text)
			for _, reason := range d.Reasons {
				fmt.Fprintf(os.Stderr, " [%s]", reason)
			}
			fmt.Fprintln(os.Stderr)
		}
		fmt.Println(result.KeptText)
	}

	if checkOutJSON != "" {
		if err := writeJSON(checkOutJSON, result); err != nil {
			return fmt.Errorf("write JSON: %w", err)
		}
	}

	return nil
}

// readTextInput reads the text operand from the file argument or stdin.
func readTextInput(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
