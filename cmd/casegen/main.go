// Package main is the entry point for the casegen CLI. casegen analyzes a
// repository, selects the files that matter, and generates test case
// suggestions through a model with a deterministic fallback.
package main

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/tmc/langchaingo/llms/openai"
	"gopkg.in/yaml.v3"

	"github.com/caseforge/core/pkg/domain"
	"github.com/caseforge/core/pkg/model"
	"github.com/caseforge/core/pkg/pipeline"
	"github.com/caseforge/core/pkg/source"
)

var version = "0.1.0"

var (
	verbose    bool
	repoPath   string
	configPath string
	maxFiles   int
	outputPath string
	provider   string
)

// skipDirs are directory names never worth walking.
var skipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	".next":        true,
	"__pycache__":  true,
	"coverage":     true,
	".cache":       true,
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "casegen",
		Short: "casegen - test case generation from repository analysis",
		Long: `casegen inspects a repository, picks the most informative files,
and produces test case suggestions. A generative model does the heavy
lifting when one is configured; without one, or when the model fails,
casegen falls back to deterministic template cases built from extracted
function signatures.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("casegen v%s\n", version)
		},
	})

	rootCmd.AddCommand(generateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate test case suggestions for a repository",
		RunE:  runGenerate,
	}

	cmd.Flags().StringVar(&repoPath, "repo", ".", "repository root to analyze")
	cmd.Flags().StringVar(&configPath, "config", "", "generation config file (yaml)")
	cmd.Flags().IntVar(&maxFiles, "max-files", 0, "maximum files to analyze (default 10)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write result JSON to file instead of stdout")
	cmd.Flags().StringVar(&provider, "model", "", "model provider (openai); empty runs fallback-only")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := newLogger()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	root, err := filepath.Abs(repoPath)
	if err != nil {
		return fmt.Errorf("resolve repo path: %w", err)
	}

	files, err := listFiles(root)
	if err != nil {
		return fmt.Errorf("list repository files: %w", err)
	}
	log.Debug().Int("files", len(files)).Str("root", root).Msg("repository listed")

	opts := []pipeline.Option{
		pipeline.WithLogger(log),
		pipeline.WithMaxFiles(maxFiles),
	}
	invoker, err := newInvoker(provider)
	if err != nil {
		return err
	}
	if invoker != nil {
		opts = append(opts, pipeline.WithInvoker(invoker))
	}

	src := source.NewFS(root)
	defer func() { _ = src.Close() }()

	result, err := pipeline.Generate(cmd.Context(), src, files, cfg, opts...)
	if err != nil {
		return err
	}

	for _, fe := range result.Errors {
		log.Warn().Str("path", fe.Path).Str("phase", fe.Phase).Err(fe.Err).Msg("file skipped")
	}

	return writeResult(result, outputPath)
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func loadConfig(path string) (domain.GenerationConfig, error) {
	var cfg domain.GenerationConfig
	if path == "" {
		return cfg.Normalize(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg.Normalize(), nil
}

// listFiles walks the repository and builds the file inventory. Content is
// left empty; the pipeline fetches it only for selected files.
func listFiles(root string) ([]domain.FileRecord, error) {
	var files []domain.FileRecord

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if d.IsDir() {
			if path != root && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}

		rec := domain.FileRecord{
			Path: filepath.ToSlash(relPath),
			Name: d.Name(),
		}
		if info, err := d.Info(); err == nil {
			rec.Size = info.Size()
		}
		files = append(files, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func newInvoker(provider string) (model.Invoker, error) {
	switch provider {
	case "":
		return nil, nil
	case "openai":
		llm, err := openai.New()
		if err != nil {
			return nil, fmt.Errorf("init openai model: %w", err)
		}
		return model.NewLangChain(llm), nil
	default:
		return nil, fmt.Errorf("unknown model provider %q", provider)
	}
}

func writeResult(result *pipeline.Result, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
