package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/joho/godotenv"

	"github.com/codingnoodle/speaker-tracker/client"
)

// newClientFromEnv builds a client from NOTION_API_KEY and NOTION_DATABASE_ID,
// seeding the environment from an optional .env file first.
func newClientFromEnv() (*client.Client, error) {
	_ = godotenv.Load()
	return client.New(os.Getenv("NOTION_API_KEY"), os.Getenv("NOTION_DATABASE_ID"))
}

func runCheck(out io.Writer) error {
	_ = godotenv.Load()

	apiKey := os.Getenv("NOTION_API_KEY")
	databaseID := os.Getenv("NOTION_DATABASE_ID")

	rule := strings.Repeat("=", 50)
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "Speaker Tracker - Notion Connection Test")
	fmt.Fprintln(out, rule)

	if apiKey == "" {
		fmt.Fprintln(out, "\n[ERROR] NOTION_API_KEY not found in environment")
		fmt.Fprintln(out, "Please create a .env file with your Notion integration token")
		return errors.New("NOTION_API_KEY is not set")
	}
	if databaseID == "" {
		fmt.Fprintln(out, "\n[ERROR] NOTION_DATABASE_ID not found in environment")
		fmt.Fprintln(out, "Please add your database ID to the .env file")
		return errors.New("NOTION_DATABASE_ID is not set")
	}

	fmt.Fprintf(out, "\nAPI Key: %s\n", maskKey(apiKey))
	fmt.Fprintf(out, "Database ID: %s\n", databaseID)

	c, err := client.New(apiKey, databaseID)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "\nTesting connection...")

	ctx, cancel := context.WithTimeout(context.Background(), timeoutFlag)
	defer cancel()

	// The probe is diagnostic, so transient failures are retried until the
	// overall timeout elapses.
	var st *client.ConnectionStatus
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 500 * time.Millisecond
	exp.MaxInterval = 5 * time.Second
	exp.MaxElapsedTime = timeoutFlag
	err = backoff.Retry(func() error {
		st = c.TestConnection(ctx)
		if !st.OK {
			return errors.New(st.Error)
		}
		return nil
	}, backoff.WithContext(exp, ctx))
	if err != nil {
		fmt.Fprintf(out, "\n[ERROR] Connection failed: %v\n", err)
		fmt.Fprintln(out, "\nCommon issues:")
		fmt.Fprintln(out, "1. Integration not connected to the database")
		fmt.Fprintln(out, "   - Open your database in Notion")
		fmt.Fprintln(out, "   - Click '...' -> 'Connections' -> Select your integration")
		fmt.Fprintln(out, "2. Invalid API key or database ID")
		fmt.Fprintln(out, "3. Integration lacks required permissions")
		return err
	}

	fmt.Fprintln(out, "\n[SUCCESS] Connected to database!")
	fmt.Fprintf(out, "Database Name: %s\n", st.DatabaseTitle)
	fmt.Fprintf(out, "Database ID: %s\n", st.DatabaseID)
	if len(st.MissingProperties) > 0 {
		fmt.Fprintf(out, "[WARNING] Missing properties: %s\n", strings.Join(st.MissingProperties, ", "))
	}

	fmt.Fprintln(out, "\n"+strings.Repeat("-", 50))
	fmt.Fprintln(out, "Fetching existing speakers...")
	speakers, err := c.ListSpeakers(ctx, 5)
	if err != nil {
		return err
	}
	if len(speakers) == 0 {
		fmt.Fprintln(out, "No speakers in database yet (that's okay!)")
	} else {
		fmt.Fprintf(out, "Found %d speaker(s):\n", len(speakers))
		for _, s := range speakers {
			affiliation := "No affiliation"
			if s.Affiliation != nil && *s.Affiliation != "" {
				affiliation = *s.Affiliation
			}
			fmt.Fprintf(out, "  - %s (%s)\n", s.Name, affiliation)
		}
	}

	fmt.Fprintln(out, "\n"+rule)
	fmt.Fprintln(out, "CONNECTION TEST PASSED!")
	fmt.Fprintln(out, rule)
	return nil
}

// maskKey keeps the prefix and last four characters of a token visible.
func maskKey(key string) string {
	if len(key) <= 14 {
		return "..."
	}
	return key[:10] + "..." + key[len(key)-4:]
}
