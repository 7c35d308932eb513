package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/jaundice"
	"github.com/fwojciec/jaundice/analyze"
	"github.com/fwojciec/jaundice/goquery"
	jaundicehttp "github.com/fwojciec/jaundice/http"
	"github.com/fwojciec/jaundice/morph"
	"github.com/fwojciec/jaundice/readability"
	jaundiceslog "github.com/fwojciec/jaundice/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config file path. Set before calling Run().
	ConfigPath string

	// Analyzer for end-to-end testing.
	Analyzer jaundice.BatchAnalyzer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: configPath(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("jaundice"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'jaundice --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := LoadConfig(m.ConfigPath)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Set JAUNDICE_CONFIG to use a different config path")
		return err
	}
	deps.Config = cfg
	deps.Logger = slog.New(slog.NewTextHandler(stderr, nil))

	if m.Analyzer == nil {
		analyzer, err := buildAnalyzer(cfg, deps.Logger)
		if err != nil {
			return err
		}
		m.Analyzer = analyzer
	}
	deps.Analyzer = m.Analyzer

	return kongCtx.Run(deps)
}

// buildAnalyzer wires the full analysis pipeline from configuration.
func buildAnalyzer(cfg Config, logger *slog.Logger) (*analyze.Analyzer, error) {
	normalizer, err := buildNormalizer(cfg)
	if err != nil {
		return nil, err
	}

	lexicon, err := loadLexicon(cfg.LexiconPaths, normalizer)
	if err != nil {
		return nil, err
	}

	registry := goquery.NewRegistry()
	registerSiteAdapters(registry)

	var limiter jaundice.DomainLimiter
	if cfg.RateLimitRPS > 0 {
		limiter = analyze.NewDomainLimiter(cfg.RateLimitRPS)
	}

	return &analyze.Analyzer{
		Fetcher: jaundiceslog.NewLoggingFetcher(
			jaundicehttp.NewFetcher(jaundicehttp.WithTimeout(cfg.FetchTimeout())),
			logger,
		),
		Extractors:  jaundiceslog.NewLoggingRegistry(registry, logger),
		Normalizer:  normalizer,
		Lexicon:     lexicon,
		RateLimiter: limiter,
		Concurrency: cfg.Concurrency,
	}, nil
}

// buildNormalizer creates the morphological normalizer, merging in any
// extra dictionaries named in the configuration.
func buildNormalizer(cfg Config) (*morph.Normalizer, error) {
	var opts []morph.Option
	for _, path := range cfg.DictionaryPaths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open dictionary file %q: %w", path, err)
		}
		defer f.Close()
		opts = append(opts, morph.WithDictionary(f))
	}
	return morph.NewNormalizer(opts...)
}

// loadLexicon reads charged words from the given files and normalizes
// them with the same normalizer used for article text, so lookups always
// compare values in the same lemma space.
func loadLexicon(paths []string, normalizer jaundice.Normalizer) (*jaundice.Lexicon, error) {
	var readers []io.Reader
	var closers []io.Closer
	defer func() {
		for _, c := range closers {
			c.Close()
		}
	}()

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open lexicon file %q: %w", path, err)
		}
		readers = append(readers, f)
		closers = append(closers, f)
		// Guard against a file that does not end in a newline.
		readers = append(readers, strings.NewReader("\n"))
	}

	lexicon, err := jaundice.LoadLexicon(io.MultiReader(readers...), normalizer)
	if err != nil {
		return nil, fmt.Errorf("failed to load lexicon: %w", err)
	}
	return lexicon, nil
}

// registerSiteAdapters registers all site-specific article extractors
// with the registry. Hosts without a dedicated adapter fall back to the
// generic readability extractor.
func registerSiteAdapters(registry jaundice.ExtractorRegistry) {
	registry.Register("inosmi.ru", goquery.NewInosmiExtractor())
	registry.Register("ria.ru", goquery.NewRiaExtractor())
	registry.Register("dvnovosti.ru", readability.NewExtractor())
	registry.Register("lenta.ru", readability.NewExtractor())
}
