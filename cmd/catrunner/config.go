package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/cat-runner/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after the search path and flag overrides
have been applied, as YAML. Use --defaults to print the built-in file,
which is a good starting point for ~/.catrunner/catrunner.yaml.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default file")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagDefaults {
		fmt.Print(string(config.DefaultYAML()))
		return nil
	}

	loaded, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	source := loaded.Path
	if source == "" {
		source = "built-in defaults"
	}
	out, err := yaml.Marshal(loaded.Config)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}

	fmt.Printf("# Loaded from %s\n", source)
	fmt.Print(string(out))
	return nil
}
