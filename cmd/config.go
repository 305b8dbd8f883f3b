package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/paul-bokelman/csv-tags/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configLocal bool
	configForce bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the csv-tags config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Long: `Writes the defaults to $HOME/.csv-tags.yaml, or ./.csv-tags.yaml with --local.

Examples:
  csv-tags config init
  csv-tags config init --local --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.ConfigName + ".yaml"
		if !configLocal {
			var err error
			if path, err = config.GetConfigPath(); err != nil {
				return err
			}
		}

		if _, err := os.Stat(path); err == nil && !configForce {
			return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
		}

		if err := config.CreateDefaultConfig(path); err != nil {
			return err
		}
		logrus.Infof("Wrote default config to %s", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		source := viper.ConfigFileUsed()
		if source == "" {
			source = "(defaults)"
		}

		tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "Config file:\t%s\n", source)
		fmt.Fprintf(tw, "Tags file:\t%s\n", cfg.TagsFile)
		fmt.Fprintf(tw, "Data dir:\t%s\n", cfg.DataDir)
		fmt.Fprintf(tw, "Out dir:\t%s\n", cfg.OutDir)
		fmt.Fprintf(tw, "Text source:\t%s\n", cfg.TextSource)
		fmt.Fprintf(tw, "Log level:\t%s\n", cfg.LogLevel)
		fmt.Fprintf(tw, "Page size:\t%d\n", cfg.PageSize)
		tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	configInitCmd.Flags().BoolVar(&configLocal, "local", false, "Write ./.csv-tags.yaml instead of the home directory file")
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")
}
