package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/reelcat/internal/catalog"
	"github.com/vmunix/reelcat/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configTestCmd = &cobra.Command{
	Use:   "test [path]",
	Short: "Validate configuration file",
	Long:  "Validates config.toml syntax, required fields, and environment variable substitution without starting the server.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigTest,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write an example configuration file",
	Long: `Writes a config.toml to path (default: $XDG_CONFIG_HOME/reelcat/config.toml).

Without flags the commented example is written, with environment references
for the dataset path and log level. With --dataset, --title or --sort the
defaults are written with those values filled in.

Examples:
  reelcat config init
  reelcat config init ./config.toml --dataset /srv/films/mcu.json --sort year`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configTestCmd)
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing file")
	configInitCmd.Flags().String("dataset", "", "Dataset path to write into the config")
	configInitCmd.Flags().String("title", "", "Catalog title to write into the config")
	configInitCmd.Flags().String("sort", "", "Default sort to write into the config: year or title")
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	path := "config.toml"
	if len(args) > 0 {
		path = args[0]
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Validating %s...\n\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		var configErr *config.ConfigError
		if errors.As(err, &configErr) {
			printConfigErrors(w, configErr)
			return fmt.Errorf("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	printConfigSummary(w, cfg)
	fmt.Fprintln(w, "\nConfiguration valid!")
	return nil
}

func printConfigErrors(w io.Writer, e *config.ConfigError) {
	if len(e.Missing) > 0 {
		fmt.Fprintln(w, "Missing environment variables:")
		for _, m := range e.Missing {
			fmt.Fprintf(w, "  - %s\n", m)
		}
		fmt.Fprintln(w)
	}

	if len(e.Errors) > 0 {
		fmt.Fprintln(w, "Validation errors:")
		for _, err := range e.Errors {
			fmt.Fprintf(w, "  - %s\n", err)
		}
		fmt.Fprintln(w)
	}
}

func printConfigSummary(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Configuration Summary:")
	fmt.Fprintf(w, "  Server:     %s (log: %s)\n", cfg.Addr(), cfg.Server.LogLevel)
	fmt.Fprintf(w, "  Dataset:    %s\n", cfg.Catalog.Path)
	fmt.Fprintf(w, "  Title:      %s\n", cfg.Catalog.Title)

	sortOnLoad := cfg.Catalog.SortOnLoad
	if sortOnLoad == "" {
		sortOnLoad = "source order"
	}
	fmt.Fprintf(w, "  Sort:       %s\n", sortOnLoad)

	if cfg.Metrics.Enabled {
		fmt.Fprintf(w, "  Metrics:    %s\n", cfg.Metrics.Path)
	} else {
		fmt.Fprintln(w, "  Metrics:    disabled")
	}
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultPath()
	if len(args) > 0 {
		path = args[0]
	}
	force, _ := cmd.Flags().GetBool("force")

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}

	cfg, err := initConfig(cmd)
	if err != nil {
		return err
	}

	if cfg == nil {
		err = config.WriteDefault(path)
	} else {
		err = cfg.Write(path)
	}
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

// initConfig builds the config for init from its flags. It returns nil when
// no flag was given, meaning the commented example should be written.
func initConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	if !flags.Changed("dataset") && !flags.Changed("title") && !flags.Changed("sort") {
		return nil, nil
	}

	cfg := config.Default()
	if dataset, _ := flags.GetString("dataset"); dataset != "" {
		cfg.Catalog.Path = dataset
	}
	if title, _ := flags.GetString("title"); title != "" {
		cfg.Catalog.Title = title
	}
	sortKey, _ := flags.GetString("sort")
	key, err := catalog.ParseSortKey(sortKey)
	if err != nil {
		return nil, err
	}
	cfg.Catalog.SortOnLoad = string(key)
	return cfg, nil
}
