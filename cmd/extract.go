package cmd

import (
	"fmt"
	"strings"

	"i18next-parser/core/config"
	"i18next-parser/core/logger"
	"i18next-parser/feature/merger"
	"i18next-parser/feature/plural"
	"i18next-parser/feature/scanner"
	"i18next-parser/feature/typegen"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the extract command
	workingDir    string
	generateTypes bool
)

// extractCmd runs a full extraction: scan sources, merge with the catalogs
// on disk, write the results.
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract translation keys and update the locale catalogs",
	Long: `Extract translation keys from the configured sources and reconcile
them with the locale catalogs on disk.

Translated values already on disk are kept, new keys are added with their
extracted defaults, and keys that vanished from the sources are moved to the
_old backup catalogs when createOldCatalogs is enabled.

Examples:
  # Extract with the configuration found in the current directory
  i18next-parser extract

  # Extract a different project
  i18next-parser extract --working-dir ./webapp

  # Also generate the TypeScript resource declarations
  i18next-parser extract --generate-types`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&workingDir, "working-dir", "d", ".", "Directory to scan and resolve output in")
	extractCmd.Flags().BoolVar(&generateTypes, "generate-types", false, "Generate a TypeScript declaration for the catalogs")

	RootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(workingDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()
	l = logger.WithRunID(l)
	zap.ReplaceGlobals(l)

	printConfigBanner(l, cfg)

	sc := scanner.New(cfg.NamespaceSeparator, cfg.ContextSeparator, l)
	entries, err := sc.ScanDir(cmd.Context(), cfg.WorkingDir, cfg.Input)
	if err != nil {
		return fmt.Errorf("failed to scan sources: %w", err)
	}
	l.Info("Extraction finished", zap.Int("entries", len(entries)))

	m := merger.New(cfg, plural.NewResolver(cfg.PluralSeparator), l)
	results, err := m.MergeAll(entries)
	if err != nil {
		return err
	}
	if err := m.WriteAll(results); err != nil {
		return err
	}
	l.Info("Catalogs written", zap.Int("count", len(results)))

	if generateTypes {
		if err := typegen.Generate(results, cfg, l); err != nil {
			return err
		}
	}

	if cfg.FailOnUpdate {
		for _, r := range results {
			if r.Changed() {
				return fmt.Errorf("catalog %s changed and failOnUpdate is set", r.Path)
			}
		}
	}
	return nil
}

// printConfigBanner logs the resolved configuration the run operates on.
func printConfigBanner(l *zap.Logger, cfg *config.Config) {
	fields := []zap.Field{
		zap.String("working_dir", cfg.WorkingDir),
		zap.String("input", strings.Join(cfg.Input, ", ")),
		zap.String("output", cfg.Output),
	}
	if cfg.Verbose {
		fields = append(fields,
			zap.Strings("locales", cfg.Locales),
			zap.String("default_namespace", cfg.DefaultNamespace),
			zap.String("key_separator", cfg.KeySeparator),
			zap.String("namespace_separator", cfg.NamespaceSeparator),
			zap.String("plural_separator", cfg.PluralSeparator),
			zap.String("context_separator", cfg.ContextSeparator),
		)
	}
	l.Info("Configuration loaded", fields...)
}
