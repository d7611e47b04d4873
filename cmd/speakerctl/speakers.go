package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	var limit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List speakers with their IDs and contact status",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClientFromEnv()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), timeoutFlag)
			defer cancel()

			speakers, err := c.ListSpeakers(ctx, limit)
			if err != nil {
				return err
			}
			for _, s := range speakers {
				fmt.Fprintf(os.Stdout, "%s  %-30s  [%s]\n", s.ID, s.Name, s.ContactStatus)
			}
			fmt.Fprintf(os.Stdout, "%d speaker(s)\n", len(speakers))
			return nil
		},
	}
	listCmd.Flags().IntVarP(&limit, "limit", "l", 50, "Maximum speakers to fetch (0 = all)")
	rootCmd.AddCommand(listCmd)

	getCmd := &cobra.Command{
		Use:   "get SPEAKER_ID",
		Short: "Print one speaker record as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClientFromEnv()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), timeoutFlag)
			defer cancel()

			s, err := c.GetSpeaker(ctx, args[0])
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(s, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	rootCmd.AddCommand(getCmd)

	archiveCmd := &cobra.Command{
		Use:   "archive SPEAKER_ID",
		Short: "Archive a speaker so it no longer appears in queries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClientFromEnv()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), timeoutFlag)
			defer cancel()

			if err := c.ArchiveSpeaker(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "archived %s\n", args[0])
			return nil
		},
	}
	rootCmd.AddCommand(archiveCmd)
}
