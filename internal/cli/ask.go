package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/varuntyagi83/geo-tracker/internal/llm"
	"github.com/varuntyagi83/geo-tracker/internal/model"
	"github.com/varuntyagi83/geo-tracker/internal/pipeline"
	"github.com/varuntyagi83/geo-tracker/internal/worker"
)

var (
	askBrand       string
	askCompetitors []string
	askProviders   []string
	askCategory    string
	outJSON        string
	outMD          string
	askTimeout     time.Duration
	noCache        bool
	noFooter       bool
)

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask one question across providers and score brand visibility",
	Long: `Ask sends a single consumer question to every selected provider and
scores each answer: brand presence, placement among competitors,
citation grounding and sentiment.

The question must not name the tracked brand.

Example:
  geo-tracker ask "best vitamin d drops in germany" --brand "Sunday Natural"
  geo-tracker ask "best magnesium supplement" --brand "Sunday Natural" \
    --competitor "Nature Love" --competitor "Doppelherz" \
    --provider openai --provider perplexity --json report.json`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().StringVar(&askBrand, "brand", "", "target brand to track (required unless set in config)")
	askCmd.Flags().StringArrayVar(&askCompetitors, "competitor", nil, "competitor brand (repeatable; empty enables auto-discovery)")
	askCmd.Flags().StringSliceVar(&askProviders, "provider", nil, "providers to query (default: config, then openai)")
	askCmd.Flags().StringVar(&askCategory, "category", "", "question category for the report")

	askCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	askCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	askCmd.Flags().DurationVar(&askTimeout, "timeout", 2*time.Minute, "overall timeout")
	askCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the answer cache (force fresh calls)")
	askCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := strings.TrimSpace(args[0])

	ctx, cancel := context.WithTimeout(context.Background(), askTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyTrackingFlags(cfg)

	if err := guardQuestion(cfg, question); err != nil {
		return err
	}

	providers, err := llm.NewProviders(cfg)
	if err != nil {
		return err
	}

	pipe, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Question: %s\n", question)
		fmt.Fprintf(os.Stderr, "Brand: %s\n", cfg.Brand.Name)
		fmt.Fprintf(os.Stderr, "Providers: %s\n\n", strings.Join(cfg.Providers.Enabled, ", "))
	}

	runner := worker.NewRunner(cfg, providers, pipe, buildAnswerCache(cfg))
	results, failed := runner.Run(ctx, []model.Question{{Text: question, Category: askCategory}})
	if len(results) == 0 {
		return fmt.Errorf("no provider returned an answer (%d failed)", failed)
	}

	report := &model.RunReport{
		Summary: pipeline.Summarize(runID(), cfg.Brand.Name, time.Now().UTC(), results),
		Results: results,
	}

	return renderReport(cfg, report)
}

// applyTrackingFlags overlays the shared brand flags onto the loaded
// configuration.
func applyTrackingFlags(cfg *model.Config) {
	if askBrand != "" {
		cfg.Brand.Name = askBrand
	}
	if len(askCompetitors) > 0 {
		cfg.Brand.Competitors = askCompetitors
	}
	if len(askProviders) > 0 {
		cfg.Providers.Enabled = askProviders
	}
	if noCache {
		cfg.Cache.Enabled = false
	}
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter
}

// guardQuestion rejects questions that name the tracked brand; such a
// run would measure prompt echo, not visibility.
func guardQuestion(cfg *model.Config, question string) error {
	brand := strings.ToLower(strings.TrimSpace(cfg.Brand.Name))
	if brand == "" {
		return fmt.Errorf("brand name is required (use --brand or the config file)")
	}
	if strings.Contains(strings.ToLower(question), brand) {
		return fmt.Errorf("question must not mention the tracked brand %q", cfg.Brand.Name)
	}
	return nil
}

// runID derives a readable identifier for this invocation.
func runID() string {
	return time.Now().UTC().Format("20060102-150405")
}

// renderReport writes the requested outputs and prints the console
// summary.
func renderReport(cfg *model.Config, report *model.RunReport) error {
	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)

	if outJSON != "" {
		if err := renderer.RenderJSON(report, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", outJSON)
		}
	}

	if outMD != "" {
		if err := renderer.RenderMarkdown(report, outMD); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", outMD)
		}
	}

	renderer.RenderSummary(report)
	return nil
}
