// Package cli wires the cobra commands exposed by cmd/cube: solve,
// verify, scramble, tables, bench, and serve.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "cube",
	Short:   "A two-phase Rubik's cube solver",
	Long:    `Cube solves a 3x3x3 Rubik's cube using Kociemba's two-phase algorithm.`,
	Version: "2.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(scrambleCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(serveCmd)
}
