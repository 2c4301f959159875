// Package main provides the tuist command.
//
// Usage:
//
//	tuist board [file]    Open a Kanban board stored in a YAML file
//	tuist version         Print version information
//
// Examples:
//
//	tuist board                      Open board.yaml (or board.file from config)
//	tuist board ~/notes/todo.yaml    Open a specific board
//	tuist board --backend tcell      Draw through tcell instead of raw ANSI
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Error:"), err)
		os.Exit(1)
	}
}
