package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/Krithish69/Agriculture-Prediction/internal/crop"
)

var cropsCmd = &cobra.Command{
	Use:   "crops",
	Short: "List the known crop identifiers",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := crop.Load()
		if err != nil {
			return eris.Wrap(err, "load crop catalog")
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, c := range catalog.Crops {
			fmt.Fprintf(w, "%s\t%s\n", c.ID, c.Name)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(cropsCmd)
}
