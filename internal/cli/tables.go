package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/ehrlich-b/twophase/internal/tables"
	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Build, inspect, save, and load the solver's move/pruning tables",
}

var tablesBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build all ten tables from scratch and report timing",
	Run: func(cmd *cobra.Command, args []string) {
		start := time.Now()
		t := tables.Build()
		fmt.Printf("Built tables in %v\n", time.Since(start))
		printTableStat(t)
	},
}

var tablesStatCmd = &cobra.Command{
	Use:   "stat",
	Short: "Report table sizes using the process-wide singleton",
	Run: func(cmd *cobra.Command, args []string) {
		printTableStat(tables.Get())
	},
}

var tablesSaveCmd = &cobra.Command{
	Use:   "save <path>",
	Short: "Build the tables and write them to disk",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		format, _ := cmd.Flags().GetString("format")

		f, err := os.Create(args[0])
		if err != nil {
			fmt.Printf("Error creating %s: %v\n", args[0], err)
			os.Exit(1)
		}
		defer f.Close()

		t := tables.Get()
		if format == "json" {
			err = t.SaveJSON(f)
		} else {
			err = t.SaveBinary(f)
		}
		if err != nil {
			fmt.Printf("Error saving tables: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Saved tables to %s (%s format)\n", args[0], format)
	},
}

var tablesLoadCmd = &cobra.Command{
	Use:   "load <path>",
	Short: "Load tables from disk and report their sizes",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		format, _ := cmd.Flags().GetString("format")

		f, err := os.Open(args[0])
		if err != nil {
			fmt.Printf("Error opening %s: %v\n", args[0], err)
			os.Exit(1)
		}
		defer f.Close()

		var t *tables.Tables
		if format == "json" {
			t, err = tables.LoadJSON(f)
		} else {
			t, err = tables.LoadBinary(f)
		}
		if err != nil {
			fmt.Printf("Error loading tables: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Loaded tables from %s (%s format)\n", args[0], format)
		printTableStat(t)
	},
}

func printTableStat(t *tables.Tables) {
	fmt.Printf("twist_move:          %8d int16\n", len(t.TwistMove))
	fmt.Printf("flip_move:           %8d int16\n", len(t.FlipMove))
	fmt.Printf("udslice_move:        %8d int16\n", len(t.UDSliceMove))
	fmt.Printf("edge4_move:          %8d int16\n", len(t.Edge4Move))
	fmt.Printf("edge8_move:          %8d int16\n", len(t.Edge8Move))
	fmt.Printf("corner_move:         %8d int16\n", len(t.CornerMove))
	fmt.Printf("udslice_twist_prune: %8d int8\n", len(t.UDSliceTwistPrune))
	fmt.Printf("udslice_flip_prune:  %8d int8\n", len(t.UDSliceFlipPrune))
	fmt.Printf("edge4_corner_prune:  %8d int8\n", len(t.Edge4CornerPrune))
	fmt.Printf("edge4_edge8_prune:   %8d int8\n", len(t.Edge4Edge8Prune))
}

func init() {
	tablesSaveCmd.Flags().String("format", "binary", "Wire format: binary or json")
	tablesLoadCmd.Flags().String("format", "binary", "Wire format: binary or json")

	tablesCmd.AddCommand(tablesBuildCmd)
	tablesCmd.AddCommand(tablesStatCmd)
	tablesCmd.AddCommand(tablesSaveCmd)
	tablesCmd.AddCommand(tablesLoadCmd)
}
