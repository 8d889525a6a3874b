package merger

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"i18next-parser/core/catalog"
	"i18next-parser/core/config"
	"i18next-parser/feature/plural"
	"i18next-parser/feature/scanner"
	"i18next-parser/feature/transform"
)

// NamespaceResult is the reconciled state of one locale/namespace pair,
// ready to be written to disk.
type NamespaceResult struct {
	Locale    string
	Namespace string
	Path      string

	// Catalog is the reconciled primary catalog.
	Catalog catalog.Object
	// OldCatalog holds orphaned keys destined for the backup file.
	OldCatalog catalog.Object

	UniqueCount       int
	UniquePluralCount int
	MergeCount        int
	PullCount         int
	OldCount          int
	ResetCount        int
	// RestoreCount counts keys the backup file holds a value for, reported
	// in the verbose summary. The backup never feeds the written catalog.
	RestoreCount int
}

// Changed reports whether this run added, removed, or reset any key.
func (r *NamespaceResult) Changed() bool {
	added := r.UniqueCount - r.MergeCount
	if added < 0 {
		added = 0
	}
	return added > 0 || r.OldCount > 0 || r.ResetCount > 0
}

// Merger reconciles extracted entries against the catalogs on disk.
type Merger struct {
	cfg      *config.Config
	resolver *plural.Resolver
	log      *zap.Logger
}

func New(cfg *config.Config, resolver *plural.Resolver, log *zap.Logger) *Merger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Merger{cfg: cfg, resolver: resolver, log: log}
}

// MergeAll materializes the entries for every configured locale and
// reconciles each namespace with its on-disk catalog pair. Results come
// back in locale order, namespaces sorted within each locale.
func (m *Merger) MergeAll(entries []scanner.Entry) ([]*NamespaceResult, error) {
	var results []*NamespaceResult
	for _, locale := range m.cfg.Locales {
		fresh, err := transform.Entries(entries, locale, m.resolver, m.cfg, m.log)
		if err != nil {
			return nil, err
		}

		namespaces := make([]string, 0, len(fresh.Value))
		for ns := range fresh.Value {
			namespaces = append(namespaces, ns)
		}
		sort.Strings(namespaces)

		for _, ns := range namespaces {
			nsCatalog, ok := fresh.Value[ns].(catalog.Object)
			if !ok {
				return nil, fmt.Errorf("namespace %q did not materialize as an object", ns)
			}
			result, err := m.mergeNamespace(locale, ns, nsCatalog)
			if err != nil {
				return nil, err
			}
			result.UniqueCount = fresh.UniqueCount[ns]
			result.UniquePluralCount = fresh.UniquePluralsCount[ns]
			if m.cfg.Verbose {
				m.report(result)
			}
			results = append(results, result)
		}
	}
	return results, nil
}

func (m *Merger) mergeNamespace(locale, ns string, nsCatalog catalog.Object) (*NamespaceResult, error) {
	path := m.cfg.OutputPath(locale, ns)
	backupPath := catalog.BackupPath(path)

	disk, err := catalog.ReadFile(path)
	if err != nil {
		m.log.Warn("could not read catalog, starting from an empty one",
			zap.String("path", path), zap.Error(err))
		disk = nil
	} else if disk == nil {
		m.log.Warn("catalog file not found, it will be created",
			zap.String("path", path))
	}
	backup, err := catalog.ReadFile(backupPath)
	if err != nil {
		m.log.Warn("could not read backup catalog, ignoring it",
			zap.String("path", backupPath), zap.Error(err))
		backup = nil
	}

	prefix := ns + m.cfg.KeySeparator
	resetAndFlag := locale == m.cfg.ResetLocale()

	merged := Merge(nsCatalog, disk, backup, prefix, resetAndFlag, m.cfg)

	// The backup pass only measures how many keys a restore would bring
	// back and collects the keys that stay orphaned. Its merged tree is
	// discarded: Pass A's result is what gets written.
	backupCfg := *m.cfg
	backupCfg.KeepRemoved = false
	restored := Merge(merged.New, backup, nil, prefix, false, &backupCfg)

	return &NamespaceResult{
		Locale:       locale,
		Namespace:    ns,
		Path:         path,
		Catalog:      merged.New,
		OldCatalog:   Transfer(merged.Old, restored.Old),
		MergeCount:   merged.MergeCount,
		PullCount:    merged.PullCount,
		OldCount:     merged.OldCount,
		ResetCount:   merged.ResetCount,
		RestoreCount: restored.MergeCount,
	}, nil
}

func (m *Merger) report(r *NamespaceResult) {
	added := r.UniqueCount - r.MergeCount
	if added < 0 {
		added = 0
	}
	fields := []zap.Field{
		zap.String("locale", r.Locale),
		zap.String("namespace", r.Namespace),
		zap.Int("unique_keys", r.UniqueCount),
		zap.Int("unique_plurals", r.UniquePluralCount),
		zap.Int("added", added),
		zap.Int("restored", r.RestoreCount),
	}
	if m.cfg.KeepRemoved {
		fields = append(fields, zap.Int("unreferenced", r.OldCount))
	} else {
		fields = append(fields, zap.Int("removed", r.OldCount))
	}
	if m.cfg.ResetDefaultValueLocale != "" {
		fields = append(fields, zap.Int("reset", r.ResetCount))
	}
	m.log.Info("namespace reconciled", fields...)
}

// WriteAll writes every reconciled catalog to disk. The primary catalog is
// always written; the backup only when backups are enabled and there is
// something to back up.
func (m *Merger) WriteAll(results []*NamespaceResult) error {
	for _, r := range results {
		if err := catalog.WriteFile(r.Path, r.Catalog, m.cfg.LineEnding); err != nil {
			return err
		}
		if m.cfg.CreateOldCatalogs && !r.OldCatalog.Empty() {
			if err := catalog.WriteFile(catalog.BackupPath(r.Path), r.OldCatalog, m.cfg.LineEnding); err != nil {
				return err
			}
		}
	}
	return nil
}
