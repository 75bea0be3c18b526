package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/ehrlich-b/twophase/internal/cube"
	"github.com/ehrlich-b/twophase/internal/solver"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [facelet]",
	Short: "Solve a cube given as a facelet string or a scramble",
	Long: `Solve a cube and print the Singmaster solution.

Give the cube state either as a 54-character facelet string, or via
--scramble applied to a solved cube.

Use --headless for programmatic output (bare move list only).`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble, _ := cmd.Flags().GetString("scramble")
		best, _ := cmd.Flags().GetBool("best")
		timeout, _ := cmd.Flags().GetDuration("timeout")
		maxLength, _ := cmd.Flags().GetInt("max-length")
		headless, _ := cmd.Flags().GetBool("headless")

		c, err := resolveCube(args, scramble)
		if err != nil {
			fail(headless, "Error: %v\n", err)
		}
		if err := c.Verify(); err != nil {
			fail(headless, "Error: %v\n", err)
		}

		s := solver.New(solver.WithMaxLength(maxLength))

		start := time.Now()
		var moves []cube.Move
		if best {
			moves, err = s.SearchBest(c, timeout)
		} else {
			moves, err = s.Search(c, maxLength, timeout)
		}
		if err != nil {
			fail(headless, "Error solving cube: %v\n", err)
		}
		elapsed := time.Since(start)

		solution := cube.RenderMoves(moves)
		if headless {
			fmt.Print(solution)
			return
		}
		fmt.Printf("Solution: %s\n", solution)
		fmt.Printf("Moves: %d\n", len(moves))
		fmt.Printf("Time: %v\n", elapsed)
	},
}

// resolveCube builds a cubie cube from either a facelet argument or a
// scramble applied to a solved cube; exactly one of the two is used.
func resolveCube(args []string, scramble string) (cube.Cubie, error) {
	if len(args) == 1 {
		f, err := cube.ParseFacelet(args[0])
		if err != nil {
			return cube.Cubie{}, err
		}
		return f.ToCubie(), nil
	}
	moves, err := cube.ParseScramble(scramble)
	if err != nil {
		return cube.Cubie{}, err
	}
	return cube.Solved().ApplyAll(moves), nil
}

func fail(headless bool, format string, args ...any) {
	if !headless {
		fmt.Fprintf(os.Stderr, format, args...)
	}
	os.Exit(1)
}

func init() {
	solveCmd.Flags().String("scramble", "", "Scramble to apply to a solved cube, used when no facelet argument is given")
	solveCmd.Flags().Bool("best", false, "Use search_best to tighten the solution length within the timeout")
	solveCmd.Flags().Duration("timeout", 10*time.Second, "Search deadline")
	solveCmd.Flags().Int("max-length", 25, "Maximum solution length to search for")
	solveCmd.Flags().Bool("headless", false, "Output only the space-separated move list")
}
