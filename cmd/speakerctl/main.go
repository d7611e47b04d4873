package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	timeoutFlag time.Duration
	rootCmd     = &cobra.Command{
		Use:   "speakerctl",
		Short: "CLI for the speaker tracker Notion database",
	}
)

func main() {
	rootCmd.PersistentFlags().DurationVarP(&timeoutFlag, "timeout", "t", 30*time.Second, "Overall timeout for Notion calls")

	// check subcommand
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Verify credentials, connectivity, and database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(os.Stdout)
		},
	}
	rootCmd.AddCommand(checkCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
