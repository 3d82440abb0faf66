package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/varuntyagi83/geo-tracker/internal/llm"
	"github.com/varuntyagi83/geo-tracker/internal/model"
	"github.com/varuntyagi83/geo-tracker/internal/pipeline"
	"github.com/varuntyagi83/geo-tracker/internal/worker"
)

var (
	runWorkers   int
	runOutputDir string
	runTimeout   time.Duration
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <panel.yaml>",
	Short: "Run a full question panel across providers in parallel",
	Long: `Run executes every question in a YAML panel file against every
enabled provider, scores each answer, and writes a run report with
per-provider visibility, competitor visibility, placement, grounding
and sentiment.

Panel file format:
  questions:
    - text: "best vitamin d drops in germany"
      category: vitamins
    - text: "which magnesium supplement is best absorbed"
      category: minerals

Example:
  geo-tracker run panel.yaml --brand "Sunday Natural"
  geo-tracker run panel.yaml --workers 8 --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&askBrand, "brand", "", "target brand to track (required unless set in config)")
	runCmd.Flags().StringArrayVar(&askCompetitors, "competitor", nil, "competitor brand (repeatable; empty enables auto-discovery)")
	runCmd.Flags().StringSliceVar(&askProviders, "provider", nil, "providers to query (default: config, then openai)")

	runCmd.Flags().IntVar(&runWorkers, "workers", 0, "number of concurrent workers (default: config)")
	runCmd.Flags().StringVar(&runOutputDir, "output-dir", "./geo-reports", "output directory for reports")
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 15*time.Minute, "total timeout for the run")
	runCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the answer cache (force fresh calls)")
	runCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
}

func runRun(cmd *cobra.Command, args []string) error {
	panelPath := args[0]

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyTrackingFlags(cfg)
	if runWorkers > 0 {
		cfg.Concurrency.Workers = runWorkers
	}

	questions, err := worker.LoadPanel(panelPath)
	if err != nil {
		return err
	}
	for _, q := range questions {
		if err := guardQuestion(cfg, q.Text); err != nil {
			return err
		}
	}

	providers, err := llm.NewProviders(cfg)
	if err != nil {
		return err
	}

	pipe, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	id := runID()
	startedAt := time.Now().UTC()

	fmt.Fprintf(os.Stderr, "Run %s: %d questions x %d providers, %d workers\n",
		id, len(questions), len(providers), cfg.Concurrency.Workers)

	runner := worker.NewRunner(cfg, providers, pipe, buildAnswerCache(cfg))
	results, failed := runner.Run(ctx, questions)

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d of %d calls failed\n", failed, len(questions)*len(providers))
	}
	if len(results) == 0 {
		return fmt.Errorf("no answers collected (%d failed)", failed)
	}

	report := &model.RunReport{
		Summary: pipeline.Summarize(id, cfg.Brand.Name, startedAt, results),
		Results: results,
	}

	if err := os.MkdirAll(runOutputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	jsonPath := filepath.Join(runOutputDir, id+".json")
	mdPath := filepath.Join(runOutputDir, id+".md")

	if err := renderer.RenderJSON(report, jsonPath); err != nil {
		return fmt.Errorf("render JSON: %w", err)
	}
	if err := renderer.RenderMarkdown(report, mdPath); err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	fmt.Fprintf(os.Stderr, "✓ Wrote %s and %s\n", jsonPath, mdPath)
	renderer.RenderSummary(report)

	return nil
}
