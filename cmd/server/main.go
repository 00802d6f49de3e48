// Package main is the entry point for the progression server and its tools
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-progression",
	Short: "Progression & party state engine",
	Long:  `rpg-progression tracks per-player and per-party phase progression for a shared world and serves it over gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(phasesCmd)
	rootCmd.AddCommand(adminCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(repairCmd)
}
