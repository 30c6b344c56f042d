package samplecmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/affectlab/iaps"
)

// NewInspectCmd creates the inspect command
func NewInspectCmd() *cobra.Command {
	var flags catalogFlags
	var id string
	var limit int

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print catalog records",
		Long: `Print records from the scoring table, with every rating scale and the
resolved picture file. Useful for spot checking a parse or looking up a
single picture by number.`,
		Example: `  # First ten records
  iaps inspect

  # The whole catalog
  iaps inspect --limit 0

  # One picture, variants included
  iaps inspect --id 6570.1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeInspect(flags, id, limit)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&id, "id", "", "Print a single picture by number")
	cmd.Flags().IntVar(&limit, "limit", 10, "Number of records to print (0 for all)")

	return cmd
}

func executeInspect(flags catalogFlags, id string, limit int) error {
	c, err := flags.open()
	if err != nil {
		return err
	}

	if id != "" {
		r, ok := c.Get(id)
		if !ok {
			return fmt.Errorf("no record for picture %s", id)
		}
		printRecord(c, r)
		return nil
	}

	records := c.Records()
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	fmt.Printf("Loaded %d records from %s\n", c.Len(), c.Source())
	fmt.Println(strings.Repeat("=", 80))
	for _, r := range records {
		printRecord(c, r)
	}
	return nil
}

func printRecord(c *iaps.Catalog, r iaps.Record) {
	fmt.Printf("%-8s %s\n", r.ID, r.Description)
	fmt.Printf("  valence %s (sd %s)  arousal %s (sd %s)  set %d\n",
		formatRating(r.ValenceMean), formatRating(r.ValenceSD),
		formatRating(r.ArousalMean), formatRating(r.ArousalSD), r.Set)
	fmt.Printf("  dominance %s (sd %s)  dominance2 %s (sd %s)\n",
		formatRating(r.Dominance1Mean), formatRating(r.Dominance1SD),
		formatRating(r.Dominance2Mean), formatRating(r.Dominance2SD))
	fmt.Printf("  file %s\n", c.ImagePath(r))
	fmt.Println()
}
