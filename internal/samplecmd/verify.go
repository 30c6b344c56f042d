package samplecmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/affectlab/iaps"
)

// NewVerifyCmd creates the verify command
func NewVerifyCmd() *cobra.Command {
	var flags catalogFlags

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that every cataloged picture exists on disk",
		Long: `Check the scoring table against the images directory: records whose
picture file is missing, and picture files no record refers to.

Sampling itself never touches the files, so a broken installation only
surfaces when a presentation script tries to open a path. Run verify once
after unpacking the distribution media instead.`,
		Example: `  # Verify the default installation
  iaps verify

  # Verify a custom layout
  iaps verify --scoring ratings.csv --images-dir /mnt/stimuli`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeVerify(flags)
		},
	}

	flags.register(cmd)

	return cmd
}

func executeVerify(flags catalogFlags) error {
	c, err := flags.open()
	if err != nil {
		return err
	}

	missing := iaps.MissingImages(c)
	strays, err := iaps.UnlistedImages(c)
	if err != nil {
		return err
	}

	fmt.Printf("Catalog: %d records, pictures in %s\n", c.Len(), c.ImagesDir())

	if len(missing) == 0 && len(strays) == 0 {
		fmt.Println("All pictures accounted for.")
		return nil
	}

	if len(missing) > 0 {
		fmt.Printf("\nMissing files (%d):\n", len(missing))
		for _, r := range missing {
			fmt.Printf("  %s (%s)\n", c.ImagePath(r), r.Description)
		}
	}
	if len(strays) > 0 {
		fmt.Printf("\nFiles without a record (%d):\n", len(strays))
		for _, name := range strays {
			fmt.Printf("  %s\n", name)
		}
	}

	return fmt.Errorf("%d missing, %d unlisted", len(missing), len(strays))
}
