package cmd

import (
	"errors"

	"github.com/paul-bokelman/csv-tags/dataset"
	"github.com/paul-bokelman/csv-tags/session"
	"github.com/paul-bokelman/csv-tags/tui"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Exit code for a session the user interrupted at a prompt.
const exitInterrupted = 130

var (
	tagFile string
	noEdit  bool
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Tag the rows of a CSV file interactively",
	Long: `Pick a CSV file from the data directory and tag its rows one by one.

Tagged rows go to <out>/<name>-with-tags.csv. If that file already exists
you can overwrite it or continue after the last tagged row.

Examples:
  csv-tags tag
  csv-tags tag --file people.csv
  csv-tags tag --no-edit --data ./datasets --out ./tagged`,
	Args: cobra.NoArgs,
	RunE: runTag,
}

func init() {
	rootCmd.AddCommand(tagCmd)
	addTagFlags(tagCmd)
}

func addTagFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&tagFile, "file", "f", "", "CSV file in the data directory to tag (skips the file prompt)")
	cmd.Flags().BoolVar(&noEdit, "no-edit", false, "skip the tag vocabulary editor")
}

func runTag(cmd *cobra.Command, args []string) error {
	src, err := dataset.NewTextSource(cfg.TextSource)
	if err != nil {
		return err
	}

	opts := session.Options{
		TagsFile: cfg.TagsFile,
		DataDir:  cfg.DataDir,
		OutDir:   cfg.OutDir,
		File:     tagFile,
		SkipEdit: noEdit,
	}
	logrus.WithFields(logrus.Fields{
		"data":   opts.DataDir,
		"out":    opts.OutDir,
		"tags":   opts.TagsFile,
		"source": cfg.TextSource,
	}).Debug("Starting tagging session")

	res, err := session.Run(opts, tui.NewTerminal(cfg.PageSize), src)
	return sessionError(res, err)
}

// sessionError reports an interrupted session and turns it into exit code 130.
func sessionError(res *session.Result, err error) error {
	if !errors.Is(err, tui.ErrInterrupted) {
		return err
	}
	if res != nil && res.OutputPath != "" {
		logrus.Warnf("Interrupted, %d rows tagged this session are saved in %s", res.Tagged, res.OutputPath)
	} else {
		logrus.Warn("Interrupted")
	}
	return &ExitError{Code: exitInterrupted, Err: err}
}
