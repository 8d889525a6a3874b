package cmd

import (
	"encoding/json"
	"fmt"

	"i18next-parser/core/config"

	"github.com/spf13/cobra"
)

// configCmd prints the configuration a run would use, after defaults, config
// file and environment variables are resolved.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	Long: `Print the configuration an extract run would use, merged from the
struct defaults, the i18next-parser config file in the working directory
and the environment.`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVarP(&workingDir, "working-dir", "d", ".", "Directory to resolve the configuration in")

	RootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(workingDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
