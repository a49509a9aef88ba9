// Package main is the entry point for the repoquest CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "repoquest",
	Short: "Turn GitHub repositories into dungeons",
	Long: `repoquest builds a playable world from a GitHub repository: its README
becomes the main enemy, its files become dungeon rooms, and its issues and
pull requests become quests and bosses.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(worldCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(fightCmd)
}
