package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/ehrlich-b/twophase/internal/solver"
	"github.com/spf13/cobra"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run SearchBest over a batch of random cubes and report percentiles",
	Long: `Generates --count random legal cubes, solves each with SearchBest
under --timeout, and reports move-length and solve-time percentiles as
a runnable report rather than only a go test -bench target.`,
	Run: func(cmd *cobra.Command, args []string) {
		count, _ := cmd.Flags().GetInt("count")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		s := solver.New()
		lengths := make([]int, 0, count)
		durations := make([]time.Duration, 0, count)

		for i := 0; i < count; i++ {
			c := solver.Random()
			start := time.Now()
			moves, err := s.SearchBest(c, timeout)
			elapsed := time.Since(start)
			if err != nil {
				fmt.Printf("cube %d: %v\n", i+1, err)
				continue
			}
			lengths = append(lengths, len(moves))
			durations = append(durations, elapsed)
		}

		sort.Ints(lengths)
		sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })

		fmt.Printf("solved %d/%d cubes\n", len(lengths), count)
		if len(lengths) == 0 {
			return
		}
		fmt.Printf("move length  p50=%d  p90=%d  p99=%d  max=%d\n",
			percentileInt(lengths, 50), percentileInt(lengths, 90), percentileInt(lengths, 99), lengths[len(lengths)-1])
		fmt.Printf("solve time   p50=%v  p90=%v  p99=%v  max=%v\n",
			percentileDur(durations, 50), percentileDur(durations, 90), percentileDur(durations, 99), durations[len(durations)-1])
	},
}

func percentileInt(sorted []int, p int) int {
	idx := (len(sorted) - 1) * p / 100
	return sorted[idx]
}

func percentileDur(sorted []time.Duration, p int) time.Duration {
	idx := (len(sorted) - 1) * p / 100
	return sorted[idx]
}

func init() {
	benchCmd.Flags().IntP("count", "n", 100, "Number of random cubes to solve")
	benchCmd.Flags().Duration("timeout", 2*time.Second, "search_best timeout per cube")
}
