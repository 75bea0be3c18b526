package cli

import (
	"fmt"
	"os"

	"github.com/ehrlich-b/twophase/internal/cube"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <facelet>",
	Short: "Verify a facelet string describes a legal cube state",
	Long: `Parse a 54-character facelet string and check every legality
invariant: unique pieces, valid orientation sums, matching parity.

Examples:
  cube verify UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB
  cube verify --cfen U9/R9/F9/D9/L9/B9`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		headless, _ := cmd.Flags().GetBool("headless")
		cfenStr, _ := cmd.Flags().GetString("cfen")

		var f cube.Facelet
		var err error
		switch {
		case cfenStr != "":
			f, err = faceletFromCFEN(cfenStr)
		case len(args) == 1:
			f, err = cube.ParseFacelet(args[0])
		default:
			err = fmt.Errorf("give a facelet string or --cfen")
		}
		if err != nil {
			if !headless {
				fmt.Printf("Error: %v\n", err)
			}
			os.Exit(1)
		}

		c := f.ToCubie()
		if err := c.Verify(); err != nil {
			if !headless {
				fmt.Printf("FAIL: %v\n", err)
			}
			os.Exit(1)
		}

		if !headless {
			fmt.Println("OK: legal cube state")
		}
	},
}

func init() {
	verifyCmd.Flags().String("cfen", "", "Verify a full (wildcard-free) CFEN pattern instead of a facelet string")
	verifyCmd.Flags().Bool("headless", false, "Exit 0/1 only, no output")
}
