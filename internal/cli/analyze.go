package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/RyuKangIn/GPT-Killer-Killer/internal/api"
	"github.com/RyuKangIn/GPT-Killer-Killer/internal/config"
	"github.com/RyuKangIn/GPT-Killer-Killer/internal/detector"
)

var (
	analyzeJSON  bool
	analyzeForce bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Score a file or stdin",
	Long: `Scores one Korean text from a file (or stdin when no file is given)
and prints the feature breakdown, sub-scores and label.

Examples:
  gptkiller analyze essay.txt
  cat essay.txt | gptkiller analyze
  gptkiller analyze --json essay.txt
  gptkiller analyze --force short.txt   # skip the length/language gate`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		var data []byte
		if len(args) == 1 {
			data, err = os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
		} else {
			data, err = io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
		}

		text := string(data)
		if !analyzeForce {
			text, err = api.ValidateText(text, cfg.Gate)
			if err != nil {
				return fmt.Errorf("input rejected: %s (use --force to score anyway)", err)
			}
		}

		det, err := buildDetector(cfg)
		if err != nil {
			return err
		}
		result := det.Analyze(text)

		if analyzeJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		renderResult(result)
		return nil
	},
}

func renderResult(result detector.Result) {
	fmt.Printf("\n  ai_score: %.4f    label: %s\n\n", result.AIScore, result.Label)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Feature", "Raw", "Sub-score"})
	table.SetBorder(false)
	table.SetColumnSeparator("  ")
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)

	m := result.Meta
	s := result.FeatureScores
	table.Append([]string{"length_tokens", fmt.Sprintf("%.0f", m.LengthTokens), ""})
	table.Append([]string{"type_token_ratio", fmt.Sprintf("%.4f", m.TypeTokenRatio), fmt.Sprintf("%.4f", s.TTRScore)})
	table.Append([]string{"avg_sentence_len", fmt.Sprintf("%.2f", m.AvgSentenceLen), ""})
	table.Append([]string{"sentence_burstiness", fmt.Sprintf("%.4f", m.SentenceBurstiness), fmt.Sprintf("%.4f", s.BurstinessScore)})
	table.Append([]string{"formal_ending_ratio", fmt.Sprintf("%.4f", m.FormalEndingRatio), fmt.Sprintf("%.4f", s.FormalScore)})
	table.Append([]string{"connectives_per_sentence", fmt.Sprintf("%.4f", m.ConnectivesPerSentence), fmt.Sprintf("%.4f", s.ConnectivesScore)})
	table.Append([]string{"repetition_ratio", fmt.Sprintf("%.4f", m.RepetitionRatio), fmt.Sprintf("%.4f", s.RepetitionScore)})
	table.Append([]string{"ai_score_raw", "", fmt.Sprintf("%.4f", s.AIScoreRaw)})
	table.Render()
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the result as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeForce, "force", false, "skip input gating (short or non-Korean text)")
}
