package scanner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCollectFiles(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "src/app.ts", "")
	writeSource(t, root, "src/pages/home.tsx", "")
	writeSource(t, root, "src/styles.css", "")
	writeSource(t, root, "node_modules/lib/index.ts", "")
	writeSource(t, root, "README.md", "")

	files, err := CollectFiles(root, []string{"src/**/*.{ts,tsx}"})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"src/app.ts", "src/pages/home.tsx"}, files)
}

func TestCollectFilesInvalidPattern(t *testing.T) {
	_, err := CollectFiles(t.TempDir(), []string{"src/[*.ts"})
	assert.Error(t, err)
}

func TestScanDir(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "src/a.ts", `t("first.key")`)
	writeSource(t, root, "src/nested/b.tsx", `t("second.key", "Second")`)
	writeSource(t, root, "src/ignored.css", `t("not.me")`)

	entries, err := newTestScanner().ScanDir(context.Background(), root, []string{"src/**/*.{ts,tsx}"})
	require.NoError(t, err)

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	assert.ElementsMatch(t, []string{"first.key", "second.key"}, keys)
}

func TestScanDirEmpty(t *testing.T) {
	entries, err := newTestScanner().ScanDir(context.Background(), t.TempDir(), []string{"src/**/*.ts"})
	require.NoError(t, err)
	assert.Empty(t, entries)
}
