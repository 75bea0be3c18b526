package cli

import (
	"fmt"
	"math/rand"

	"github.com/ehrlich-b/twophase/internal/cube"
	"github.com/ehrlich-b/twophase/internal/solver"
	"github.com/spf13/cobra"
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Print random legal cube states as facelet strings",
	Long: `Generate uniformly random legal cube states and print each as a
54-character facelet string, one per line.`,
	Run: func(cmd *cobra.Command, args []string) {
		count, _ := cmd.Flags().GetInt("count")
		seed, _ := cmd.Flags().GetInt64("seed")
		headless, _ := cmd.Flags().GetBool("headless")

		if seed != 0 {
			rand.Seed(seed)
		}

		for i := 0; i < count; i++ {
			c := solver.Random()
			f := cube.FromCubie(c)
			if headless {
				fmt.Println(f.String())
			} else {
				fmt.Printf("%d: %s\n", i+1, f.String())
			}
		}
	},
}

func init() {
	scrambleCmd.Flags().IntP("count", "n", 1, "Number of random cubes to print")
	scrambleCmd.Flags().Int64("seed", 0, "Seed the random source (0 = unseeded)")
	scrambleCmd.Flags().Bool("headless", false, "Bare facelet strings only, no index prefix")
}
