// Package main implements the meetingd daemon and its utility commands.
//
// meetingd converts free-form meeting-note text into structured action
// items over an HTTP API. The linguistic models are loaded once at
// startup; a load failure is fatal and the daemon refuses to serve.
//
// Usage:
//
//	# Start the daemon with defaults
//	meetingd serve
//
//	# Configure via environment
//	MEETINGD_SERVER_HTTP_PORT=9000 meetingd serve
//
//	# One-shot extraction from a file or stdin
//	meetingd extract notes.txt
//	cat notes.txt | meetingd extract -
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "meetingd",
	Short: "Meeting-notes task extraction service",
	Long: `meetingd extracts structured action items (assignee, priority,
due date, keywords, confidence) from free-form meeting notes.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("meetingd\n")
		fmt.Printf("Version:    %s\n", version)
		fmt.Printf("Commit:     %s\n", gitCommit)
		fmt.Printf("Build Date: %s\n", buildDate)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
