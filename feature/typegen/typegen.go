// Package typegen emits a TypeScript declaration file wiring the generated
// catalogs into i18next's CustomTypeOptions, so keys are checked at compile
// time in the consuming application.
package typegen

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"i18next-parser/core/config"
	"i18next-parser/feature/merger"
)

var (
	reCamelBoundary = regexp.MustCompile(`[\s\-_](\w)`)
	reNonWord       = regexp.MustCompile(`\W`)
)

// camelize lowercases a leading capital and folds space, dash and underscore
// separated words into camel case.
func camelize(s string) string {
	if s == "" {
		return s
	}
	out := reCamelBoundary.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ToUpper(m[len(m)-1:])
	})
	return strings.ToLower(out[:1]) + out[1:]
}

// nameProperty quotes a namespace when it is not a valid identifier.
func nameProperty(name string) string {
	if reNonWord.MatchString(name) {
		return "'" + name + "'"
	}
	return name
}

type declEntry struct {
	name        string
	displayName string
	path        string
}

// Generate writes the declaration file for the default locale's catalogs.
// Catalog paths are imported relative to the working directory.
func Generate(results []*merger.NamespaceResult, cfg *config.Config, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	defaultLocale := cfg.DefaultLocale()

	var entries []declEntry
	for _, r := range results {
		if r.Locale != defaultLocale {
			continue
		}
		rel, err := filepath.Rel(cfg.WorkingDir, r.Path)
		if err != nil {
			return fmt.Errorf("catalog %s is outside the working directory: %w", r.Path, err)
		}
		entries = append(entries, declEntry{
			name:        r.Namespace,
			displayName: camelize(r.Namespace),
			path:        filepath.ToSlash(rel),
		})
	}

	imports := make([]string, 0, len(entries))
	resources := make([]string, 0, len(entries))
	types := make([]string, 0, len(entries))
	for _, e := range entries {
		imports = append(imports, fmt.Sprintf("import type %s from '%s';", e.displayName, e.path))
		resources = append(resources, fmt.Sprintf("%s: typeof %s;", nameProperty(e.name), e.displayName))
		types = append(types, "'"+e.name+"'")
	}

	content := fmt.Sprintf(`
// This file is generated automatically
// All changes will be lost
import 'i18next';

%s

declare module 'i18next' {
  interface CustomTypeOptions {
    defaultNS: '%s';
    returnNull: false;
    returnObjects: false;
    nsSeparator: '%s';
    keySeparator: '%s';
    contextSeparator: '%s';
    jsonFormat: 'v4';
    allowObjectInHTMLChildren: false;
    resources: {
      %s
    };
  }
}

declare global {
  type Ns = %s;
}
`,
		strings.Join(imports, "\n"),
		cfg.DefaultNamespace,
		cfg.NamespaceSeparator,
		cfg.KeySeparator,
		cfg.ContextSeparator,
		strings.Join(resources, "\n      "),
		strings.Join(types, " | "),
	)

	path := cfg.TypesPath()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write type declarations %s: %w", path, err)
	}
	log.Info("Generated type declarations", zap.String("path", path))
	return nil
}
