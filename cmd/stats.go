package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show seen-URL counts from the dedup database",
	RunE: func(cmd *cobra.Command, _ []string) error {
		st, err := initStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		stats, err := st.Stats(cmd.Context())
		if err != nil {
			return eris.Wrap(err, "stats")
		}

		var types []string
		for itemType := range stats {
			if itemType != "total" {
				types = append(types, itemType)
			}
		}
		sort.Strings(types)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, itemType := range types {
			_, _ = fmt.Fprintf(w, "%s:\t%d\n", itemType, stats[itemType])
		}
		_, _ = fmt.Fprintf(w, "total:\t%d\n", stats["total"])
		_ = w.Flush()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
