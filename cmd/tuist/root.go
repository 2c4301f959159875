package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tuist",
	Short: "Retained-mode terminal UI toolkit",
	Long: `tuist draws element trees to the terminal: measured and arranged
widgets, routed keyboard and mouse events, focus traversal and diffed
screen updates.

The board command is a small Kanban board built on it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(versionCmd)
}
