package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/vdp-scanner/internal/analysis"
	"github.com/jonathan/vdp-scanner/internal/config"
	"github.com/jonathan/vdp-scanner/internal/fetch"
	"github.com/jonathan/vdp-scanner/internal/input"
	"github.com/jonathan/vdp-scanner/internal/llm"
	"github.com/jonathan/vdp-scanner/internal/observability"
	"github.com/jonathan/vdp-scanner/internal/output"
	"github.com/jonathan/vdp-scanner/internal/pipeline"
	"github.com/jonathan/vdp-scanner/internal/search"
	"github.com/jonathan/vdp-scanner/internal/securitytxt"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan companies for vulnerability disclosure policies",
	Long:  "Reads a CSV of Company Name,Base URL pairs, discovers each company's disclosure policy via security.txt and web search, and writes one analysis result per company to a JSON file.",
	RunE:  runScan,
}

var (
	scanInput       string
	scanOutput      string
	scanConfigPath  string
	scanAPIKey      string
	scanUseBrowser  bool
	scanVerbose     bool
	scanConcurrency int
	scanThreshold   float64
)

func init() {
	scanCmd.Flags().StringVarP(&scanInput, "input", "i", "", "Path to the input CSV file (required)")
	scanCmd.Flags().StringVarP(&scanOutput, "output", "o", "", "Path to the output JSON file (required)")
	scanCmd.Flags().StringVar(&scanConfigPath, "config", "", "Path to a JSON config file")
	scanCmd.Flags().StringVar(&scanAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	scanCmd.Flags().BoolVar(&scanUseBrowser, "use-browser", false, "Render JavaScript-heavy pages in a headless browser")
	scanCmd.Flags().BoolVarP(&scanVerbose, "verbose", "v", false, "Print detailed debug information")
	scanCmd.Flags().IntVar(&scanConcurrency, "concurrency", 0, "Max parallel candidate fetch/score operations (1 = sequential)")
	scanCmd.Flags().Float64Var(&scanThreshold, "threshold", 0, "Minimum confidence for a candidate to be selected")

	if err := scanCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}
	if err := scanCmd.MarkFlagRequired("output"); err != nil {
		panic(fmt.Sprintf("failed to mark output flag as required: %v", err))
	}

	rootCmd.AddCommand(scanCmd)
}

func runScan(_ *cobra.Command, _ []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	records, err := input.ReadCompanies(scanInput)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no usable records in %s", scanInput)
	}

	ctx := context.Background()

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	var searcher pipeline.SearchResolver
	if cfg.SearchEnabled() {
		resolver, err := search.NewResolver(ctx, cfg)
		if err != nil {
			log.Printf("[SCAN] search fallback disabled: %v", err)
		} else {
			searcher = resolver
		}
	} else {
		log.Printf("[SCAN] search fallback disabled: GOOGLE_SEARCH_API_KEY / GOOGLE_SEARCH_CX not set")
	}

	// The browser engine is expensive to start; one shared instance serves
	// every render call and is released at shutdown.
	var browser fetch.Renderer
	if cfg.UseBrowser {
		b := fetch.NewBrowser(ctx, cfg.BrowserTimeout, cfg.Verbose)
		defer b.Close()
		browser = b
	}

	p := pipeline.New(
		cfg,
		securitytxt.NewResolver(cfg),
		searcher,
		fetch.NewContentFetcher(cfg, browser),
		analysis.NewScorer(client, cfg.Verbose),
		analysis.NewExtractor(client, cfg.Verbose),
	)

	results := p.ProcessBatch(ctx, records)

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		for i := range results {
			printer.PrintResult(&results[i])
		}
	}

	if err := output.WriteResults(scanOutput, results); err != nil {
		return err
	}

	fmt.Printf("Done! %d results written to %s\n", len(results), scanOutput)
	return nil
}

// buildConfig assembles the explicit configuration object: config file,
// environment, then flags, in increasing precedence.
func buildConfig() (*config.Config, error) {
	var cfg *config.Config
	if scanConfigPath != "" {
		loaded, err := config.Load(scanConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.Default()
	}

	cfg.FromEnv()

	if scanAPIKey != "" {
		cfg.GeminiAPIKey = scanAPIKey
	}
	if scanUseBrowser {
		cfg.UseBrowser = true
	}
	if scanVerbose {
		cfg.Verbose = true
	}
	if scanConcurrency > 0 {
		cfg.Concurrency = scanConcurrency
	}
	if scanThreshold > 0 {
		cfg.Threshold = scanThreshold
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
