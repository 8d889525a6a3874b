package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sigs.k8s.io/yaml"
)

// Line-ending modes accepted by WriteFile.
const (
	LineEndingAuto = "auto"
	LineEndingCrlf = "crlf"
	LineEndingCr   = "cr"
	LineEndingLf   = "lf"
)

// BackupPath returns the backup file path for a catalog file: the same name
// with "_old" inserted before the extension.
func BackupPath(path string) string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)
	return filepath.Join(filepath.Dir(path), fmt.Sprintf("%s_old%s", stem, ext))
}

// IsBackupPath reports whether the path names a backup catalog file.
func IsBackupPath(path string) bool {
	return strings.Contains(filepath.Base(path), "_old")
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yml" || ext == ".yaml"
}

// ReadFile reads a catalog file into an Object tree. A missing file yields
// (nil, nil): an absent catalog is a legitimate empty starting point, not an
// error. Parse failures are reported so the caller can warn before treating
// the catalog as empty.
func ReadFile(path string) (Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	var raw any
	if isYAML(path) {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
		}
	} else {
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber()
		if err := decoder.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
		}
	}

	obj, ok := FromAny(raw).(Object)
	if !ok {
		return nil, fmt.Errorf("catalog %s is not an object at the top level", path)
	}
	return obj, nil
}

// WriteFile serializes the tree to the path, creating parent directories as
// needed. The format is selected by extension (YAML for .yml/.yaml, JSON
// otherwise) and the configured line-ending mode is applied afterwards.
func WriteFile(path string, root Node, lineEnding string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(root)
	} else {
		var buf bytes.Buffer
		encoder := json.NewEncoder(&buf)
		encoder.SetEscapeHTML(false)
		encoder.SetIndent("", "  ")
		err = encoder.Encode(root)
		data = buf.Bytes()
	}
	if err != nil {
		return fmt.Errorf("failed to serialize catalog %s: %w", path, err)
	}

	switch lineEnding {
	case LineEndingCrlf:
		data = bytes.ReplaceAll(data, []byte("\n"), []byte("\r\n"))
	case LineEndingCr:
		data = bytes.ReplaceAll(data, []byte("\n"), []byte("\r"))
	default:
		// auto and lf keep the generated \n endings
	}

	if parent := filepath.Dir(path); parent != "" {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", parent, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write catalog %s: %w", path, err)
	}
	return nil
}
