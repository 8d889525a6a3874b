package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"i18next-parser/core/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// defaultInput is applied when no input patterns are configured. It is not a
// struct tag default because the comma inside the brace set would be split
// by the slice decode hook.
const defaultInput = "src/**/*.{ts,tsx}"

// Config holds all configuration for the parser. Values come, in order of
// precedence, from environment variables, an i18next-parser config file in
// the working directory, and the struct tag defaults below.
type Config struct {
	// WorkingDir is the directory the parser scans and resolves output in.
	WorkingDir string `mapstructure:"working_dir" default:"."`
	// Locales are the locales to generate catalogs for. The first one is
	// the default locale.
	Locales []string `mapstructure:"locales" default:"en"`
	// Input holds the glob patterns selecting the source files to scan,
	// relative to the working directory.
	Input []string `mapstructure:"input"`
	// Output is the catalog path template. $LOCALE and $NAMESPACE are
	// substituted per catalog; the backup catalog adds _old before the
	// extension.
	Output string `mapstructure:"output" default:"locales/$LOCALE/$NAMESPACE.json"`
	// DefaultNamespace receives keys that carry no explicit namespace.
	DefaultNamespace string `mapstructure:"default_namespace" default:"translation"`
	// DefaultValue fills entries extracted without an inline default value.
	DefaultValue string `mapstructure:"default_value" default:""`
	// KeySeparator splits keys into nested object paths.
	KeySeparator string `mapstructure:"key_separator" default:"."`
	// NamespaceSeparator splits an explicit namespace off the front of a key.
	NamespaceSeparator string `mapstructure:"namespace_separator" default:":"`
	// PluralSeparator joins a key and its CLDR plural category suffix.
	PluralSeparator string `mapstructure:"plural_separator" default:"_"`
	// ContextSeparator joins a key and its context token.
	ContextSeparator string `mapstructure:"context_separator" default:"_"`
	// KeepRemoved retains keys that vanished from the source in the live
	// catalog instead of moving them to the backup catalog.
	KeepRemoved bool `mapstructure:"keep_removed" default:"false"`
	// CreateOldCatalogs enables writing the _old backup catalogs.
	CreateOldCatalogs bool `mapstructure:"create_old_catalogs" default:"false"`
	// LineEnding selects the output line endings: auto, crlf, cr or lf.
	LineEnding string `mapstructure:"line_ending" default:"auto"`
	// Verbose enables the per-namespace count report.
	Verbose bool `mapstructure:"verbose" default:"false"`
	// FailOnWarnings escalates extraction warnings to hard errors.
	FailOnWarnings bool `mapstructure:"fail_on_warnings" default:"false"`
	// FailOnUpdate makes the run exit non-zero when any catalog changed,
	// for CI guards.
	FailOnUpdate bool `mapstructure:"fail_on_update" default:"false"`
	// ResetDefaultValueLocale names the locale whose catalog values are
	// force-reset from the extracted defaults. Empty means the default
	// locale keeps that role.
	ResetDefaultValueLocale string `mapstructure:"reset_default_value_locale" default:""`
	// GeneratedTypes is the path of the generated TypeScript declaration
	// file, relative to the working directory.
	GeneratedTypes string `mapstructure:"generated_types" default:"react-i18next.resources.d.ts"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// configNames are the config file base names probed in the working directory,
// in priority order.
var configNames = []string{
	".i18next-parser",
	"i18next-parser",
}

// configExts are the config file extensions probed for each base name.
var configExts = []string{"json", "yaml", "yml", "toml"}

// Load loads configuration for the given working directory from struct tag
// defaults, an optional config file and environment variables.
func Load(workingDir string) (*Config, error) {
	// Ignore error if file doesn't exist (e.g. CI)
	_ = godotenv.Overload(filepath.Join(workingDir, ".env"))

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. LOG_LEVEL -> log.level)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file, ok := findConfigFile(workingDir); ok {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	config.WorkingDir = workingDir
	if len(config.Input) == 0 {
		config.Input = []string{defaultInput}
	}
	if len(config.Locales) == 0 {
		return nil, fmt.Errorf("at least one locale must be configured")
	}

	return &config, nil
}

// findConfigFile probes the working directory for a parser config file and
// returns the first match.
func findConfigFile(workingDir string) (string, bool) {
	for _, name := range configNames {
		for _, ext := range configExts {
			file := filepath.Join(workingDir, name+"."+ext)
			if fileExists(file) {
				return file, true
			}
		}
	}
	return "", false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// DefaultLocale returns the first configured locale.
func (c *Config) DefaultLocale() string {
	return c.Locales[0]
}

// ResetLocale returns the locale whose catalog values are force-reset from
// the extracted defaults: ResetDefaultValueLocale when set, otherwise the
// default locale.
func (c *Config) ResetLocale() string {
	if c.ResetDefaultValueLocale != "" {
		return c.ResetDefaultValueLocale
	}
	return c.DefaultLocale()
}

// OutputPath resolves the catalog file path for a locale and namespace by
// substituting the Output template under the working directory.
func (c *Config) OutputPath(locale, namespace string) string {
	path := strings.ReplaceAll(c.Output, "$LOCALE", locale)
	path = strings.ReplaceAll(path, "$NAMESPACE", namespace)
	return filepath.Join(c.WorkingDir, filepath.FromSlash(path))
}

// TypesPath resolves the generated TypeScript declaration file path under
// the working directory.
func (c *Config) TypesPath() string {
	return filepath.Join(c.WorkingDir, filepath.FromSlash(c.GeneratedTypes))
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
