package cmd

import (
	"github.com/paul-bokelman/csv-tags/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "csv-tags",
	Short: "Tag the rows of a CSV dataset from the terminal",
	Long: `csv-tags walks through the rows of a CSV file and asks for 1 to 3
category tags per row, writing a copy with an extra "tags" column.

Features:
- Editable tag vocabulary kept in a local JSON file
- Resumes where a previous run stopped
- Every tagged row is written to disk immediately

Examples:
  csv-tags
  csv-tags tag --file people.csv --no-edit
  csv-tags tags --json
  csv-tags config init`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runTag,

	PersistentPreRunE: initConfig,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./.csv-tags.yaml or $HOME/.csv-tags.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	flags.String("tags-file", "", "tag vocabulary file (default ./local-tags.json)")
	flags.String("data", "", "input directory (default ./data)")
	flags.String("out", "", "output directory (default ./out)")
	flags.String("source", "", `how to read header lines and count lines: "shell" or "native"`)
	flags.Int("page-size", 0, "max choices shown per prompt, 0 shows all")

	viper.BindPFlag("tags_file", flags.Lookup("tags-file"))
	viper.BindPFlag("data_dir", flags.Lookup("data"))
	viper.BindPFlag("out_dir", flags.Lookup("out"))
	viper.BindPFlag("text_source", flags.Lookup("source"))
	viper.BindPFlag("page_size", flags.Lookup("page-size"))

	addTagFlags(rootCmd)
}

// initConfig loads the settings before any command runs. A broken config file
// is an error, except for `config init`, which replaces it and only warns.
func initConfig(cmd *cobra.Command, args []string) error {
	c, err := loadConfig()
	if err != nil {
		if cmd != configInitCmd {
			return err
		}
		logrus.Warnf("Ignoring current config: %v", err)
		c = config.DefaultConfig()
	}
	cfg = c

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	if used := viper.ConfigFileUsed(); used != "" {
		logrus.Debugf("Using config file: %s", used)
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	c, err := config.Load(viper.GetViper(), cfgFile)
	if err != nil {
		return nil, err
	}
	if err := config.ValidateConfig(c); err != nil {
		return nil, err
	}
	return c, nil
}
