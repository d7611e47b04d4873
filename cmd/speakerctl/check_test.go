package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestMaskKey(t *testing.T) {
	if got := maskKey("secret_abcdefghijklmnop1234"); got != "secret_abc...1234" {
		t.Errorf("maskKey = %q", got)
	}
	if got := maskKey("short"); got != "..." {
		t.Errorf("maskKey short = %q", got)
	}
}

func TestRunCheckMissingAPIKey(t *testing.T) {
	t.Setenv("NOTION_API_KEY", "")
	t.Setenv("NOTION_DATABASE_ID", "")

	var buf bytes.Buffer
	if err := runCheck(&buf); err == nil {
		t.Fatal("expected error for missing credentials")
	}
	if !strings.Contains(buf.String(), "[ERROR] NOTION_API_KEY not found in environment") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestRunCheckMissingDatabaseID(t *testing.T) {
	t.Setenv("NOTION_API_KEY", "secret_abcdefghijklmnop1234")
	t.Setenv("NOTION_DATABASE_ID", "")

	var buf bytes.Buffer
	if err := runCheck(&buf); err == nil {
		t.Fatal("expected error for missing database id")
	}
	out := buf.String()
	if !strings.Contains(out, "[ERROR] NOTION_DATABASE_ID not found in environment") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if strings.Contains(out, "secret_abcdefghijklmnop1234") {
		t.Errorf("output leaks the raw API key:\n%s", out)
	}
}
