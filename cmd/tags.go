package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/paul-bokelman/csv-tags/vocab"

	"github.com/spf13/cobra"
)

var (
	tagsJSON  bool
	tagsReset bool
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Show the tag vocabulary",
	Long:  "Prints the tags offered when tagging rows. The tag file is created with the defaults if it does not exist.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := vocab.NewStore(cfg.TagsFile)

		var tags []string
		if tagsReset {
			tags = vocab.Defaults()
			if err := store.Save(tags); err != nil {
				return err
			}
		} else {
			var err error
			if tags, err = store.Load(); err != nil {
				return err
			}
		}

		if tagsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(tags)
		}

		tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "File:\t%s\n", store.Path())
		fmt.Fprintf(tw, "Count:\t%d\n", len(tags))
		for i, tag := range tags {
			fmt.Fprintf(tw, "%d.\t%s\n", i+1, tag)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)
	tagsCmd.Flags().BoolVar(&tagsJSON, "json", false, "Output as JSON")
	tagsCmd.Flags().BoolVar(&tagsReset, "reset", false, "Restore the default tags before printing")
}
