// Package config provides configuration management for the parser.
//
// It utilizes Viper for loading configuration from struct tag defaults, an
// i18next-parser config file found in the working directory, environment
// variables and a .env file.
//
// # Configuration Sources
//
// Values are resolved in order of precedence:
//   - Environment variables (nested keys use underscores, e.g. LOG_LEVEL)
//   - A config file named i18next-parser or .i18next-parser with a
//     .json, .yaml, .yml or .toml extension in the working directory
//   - The `default` struct tags on Config
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.OutputPath("en", "translation"))
package config
