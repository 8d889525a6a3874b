package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/gobwas/glob"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Directories never worth descending into.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
}

// compileInput compiles one input pattern. Variants with the globstar
// collapsed are added so "src/**/*.ts" also matches files directly under
// src.
func compileInput(pattern string) ([]glob.Glob, error) {
	variants := []string{pattern}
	if collapsed := strings.ReplaceAll(pattern, "/**/", "/"); collapsed != pattern {
		variants = append(variants, collapsed)
	}
	if trimmed := strings.TrimPrefix(pattern, "**/"); trimmed != pattern {
		variants = append(variants, trimmed)
	}

	globs := make([]glob.Glob, 0, len(variants))
	for _, v := range variants {
		g, err := glob.Compile(v, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid input pattern %q: %w", pattern, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

// CollectFiles walks root and returns the slash-separated relative paths of
// every file matching at least one input pattern.
func CollectFiles(root string, patterns []string) ([]string, error) {
	var globs []glob.Glob
	for _, p := range patterns {
		gs, err := compileInput(p)
		if err != nil {
			return nil, err
		}
		globs = append(globs, gs...)
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		for _, g := range globs {
			if g.Match(rel) {
				files = append(files, rel)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return files, nil
}

// ScanDir scans every file under root matching the input patterns across a
// bounded worker pool and returns all extracted entries.
func (s *Scanner) ScanDir(ctx context.Context, root string, patterns []string) ([]Entry, error) {
	files, err := CollectFiles(root, patterns)
	if err != nil {
		return nil, err
	}
	s.log.Debug("Scanning source files",
		zap.String("root", root),
		zap.Int("files", len(files)))
	if len(files) == 0 {
		return nil, nil
	}

	workers := runtime.NumCPU()
	if workers > len(files) {
		workers = len(files)
	}

	results := make([][]Entry, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for i := w; i < len(files); i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				entries, err := s.ScanFile(filepath.Join(root, filepath.FromSlash(files[i])))
				if err != nil {
					return err
				}
				results[w] = append(results[w], entries...)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Entry
	for _, r := range results {
		all = append(all, r...)
	}
	return all, nil
}
