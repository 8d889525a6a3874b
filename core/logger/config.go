package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum level to log: debug, info, warn or error.
	Level string `mapstructure:"level" default:"info"`
	// Format selects the output encoding: console or json.
	Format string `mapstructure:"format" default:"console"`
}
