package samplecmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/affectlab/iaps/internal/search"
)

// NewSearchCmd creates the search command
func NewSearchCmd() *cobra.Command {
	var flags catalogFlags
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find pictures by description",
		Long: `Rank catalog records against a description query. Exact matches come
first, then substring matches, then close spellings, so "snake" finds
Snake, Snake2 and their variants without knowing the picture numbers.`,
		Example: `  # All the snake pictures
  iaps search snake

  # More matches than the default ten
  iaps search erotic --limit 30`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeSearch(flags, args[0], limit)
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum matches to print (0 for all)")

	return cmd
}

func executeSearch(flags catalogFlags, query string, limit int) error {
	c, err := flags.open()
	if err != nil {
		return err
	}

	results := search.ByDescription(c, query, limit)
	if len(results) == 0 {
		fmt.Printf("No pictures match %q\n", query)
		return nil
	}

	for _, res := range results {
		r := res.Record
		fmt.Printf("%.2f  %-8s %-20s valence %s  %s\n",
			res.Score, r.ID, r.Description, formatRating(r.ValenceMean), c.ImagePath(r))
	}
	return nil
}
