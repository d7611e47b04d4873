package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/codingnoodle/speaker-tracker/client"
)

const stubDatabaseID = "11111111-2222-4333-8444-555566667777"

// newStubClient starts a fake Notion endpoint and returns a client bound to it.
func newStubClient(t *testing.T, h http.HandlerFunc) *client.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := client.New("secret-token", stubDatabaseID, client.WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("client.New: %v", err)
	}
	return c
}

// pageJSON builds a minimal Notion page payload for stub responses.
func pageJSON(id, name, status string) string {
	return fmt.Sprintf(`{
		"object": "page",
		"id": %q,
		"url": "https://www.notion.so/%s",
		"properties": {
			"Name": {"title": [{"type": "text", "text": {"content": %q}, "plain_text": %q}]},
			"Contact Status": {"select": {"name": %q}}
		}
	}`, id, id, name, name, status)
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{Arguments: args},
	}
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if res == nil || len(res.Content) == 0 {
		t.Fatalf("empty tool result")
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected TextContent, got %T", res.Content[0])
	}
	return tc.Text
}

func TestAddSpeakerTool(t *testing.T) {
	const pageID = "99999999-8888-4777-8666-555544443333"
	sdk := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/pages" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		props := body["properties"].(map[string]any)
		if _, ok := props["Field/Specialty"]; !ok {
			t.Errorf("expected Field/Specialty in create payload, got %v", props)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(pageJSON(pageID, "Dr. Sarah Chen", "Not Contacted")))
	})

	sh := NewSpeakerHandler(sdk)
	req := callRequest(map[string]any{
		"name":            "Dr. Sarah Chen",
		"field_specialty": "Genomics & Biotech",
	})

	res, err := sh.handleAddSpeaker(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	text := resultText(t, res)

	want := "Successfully added speaker 'Dr. Sarah Chen' to the database.\n" +
		"Notion Page ID: " + pageID + "\n" +
		"URL: https://www.notion.so/" + pageID
	if text != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", text, want)
	}
}

func TestAddSpeakerToolRejectsUnknownSpecialty(t *testing.T) {
	sdk := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no request expected, got %s %s", r.Method, r.URL.Path)
	})

	sh := NewSpeakerHandler(sdk)
	req := callRequest(map[string]any{
		"name":            "Jane Doe",
		"field_specialty": "Alchemy",
	})

	res, err := sh.handleAddSpeaker(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if !res.IsError {
		t.Fatalf("expected error result")
	}
	text := resultText(t, res)
	if !strings.Contains(text, "Invalid field_specialty 'Alchemy'") || !strings.Contains(text, "Valid options:") {
		t.Errorf("unexpected error text: %s", text)
	}
}

func TestUpdateSpeakerTool(t *testing.T) {
	const pageID = "99999999-8888-4777-8666-555544443333"
	var patches, gets int
	sdk := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodPatch:
			patches++
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			props := body["properties"].(map[string]any)
			if len(props) != 1 {
				t.Errorf("expected exactly one property in patch, got %v", props)
			}
			if _, ok := props["Contact Status"]; !ok {
				t.Errorf("expected Contact Status in patch, got %v", props)
			}
			_, _ = w.Write([]byte(pageJSON(pageID, "Dr. Sarah Chen", "Confirmed")))
		case http.MethodGet:
			gets++
			_, _ = w.Write([]byte(pageJSON(pageID, "Dr. Sarah Chen", "Confirmed")))
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	})

	sh := NewSpeakerHandler(sdk)
	req := callRequest(map[string]any{
		"speaker_id":     pageID,
		"contact_status": "Confirmed",
	})

	res, err := sh.handleUpdateSpeaker(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	text := resultText(t, res)

	want := "Successfully updated speaker 'Dr. Sarah Chen'.\n" +
		"Notion Page ID: " + pageID + "\n" +
		"Status: Confirmed"
	if text != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", text, want)
	}
	if patches != 1 || gets != 1 {
		t.Errorf("expected one patch and one re-read, got %d/%d", patches, gets)
	}
}

func TestUpdateSpeakerToolNotFound(t *testing.T) {
	sdk := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"object":"error","status":404,"code":"object_not_found","message":"Could not find page"}`))
	})

	sh := NewSpeakerHandler(sdk)
	req := callRequest(map[string]any{
		"speaker_id":     "99999999-8888-4777-8666-555544443333",
		"contact_status": "Confirmed",
	})

	res, err := sh.handleUpdateSpeaker(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if !res.IsError {
		t.Fatalf("expected error result")
	}
	text := resultText(t, res)
	if !strings.HasPrefix(text, "Error updating speaker:") || !strings.Contains(text, "speaker not found") {
		t.Errorf("unexpected error text: %s", text)
	}
}

func TestGetSpeakerDetailsTool(t *testing.T) {
	const pageID = "99999999-8888-4777-8666-555544443333"
	full := fmt.Sprintf(`{
		"object": "page",
		"id": %q,
		"url": "https://www.notion.so/%s",
		"properties": {
			"Name": {"title": [{"type": "text", "text": {"content": "Dr. Sarah Chen"}, "plain_text": "Dr. Sarah Chen"}]},
			"Field/Specialty": {"select": {"name": "Genomics & Biotech"}},
			"Affiliation": {"rich_text": [{"type": "text", "text": {"content": "Broad Institute"}, "plain_text": "Broad Institute"}]},
			"Position": {"rich_text": [{"type": "text", "text": {"content": "Principal Investigator"}, "plain_text": "Principal Investigator"}]},
			"LinkedIn URL": {"url": "https://linkedin.com/in/schen"},
			"Potential Topics": {"multi_select": [{"name": "CRISPR screening"}, {"name": "Rare disease genomics"}]},
			"Contact Status": {"select": {"name": "Contacted"}},
			"Research Notes": {"rich_text": [{"type": "text", "text": {"content": "Leads a functional genomics lab."}, "plain_text": "Leads a functional genomics lab."}]},
			"Email": {"email": "schen@broadinstitute.org"},
			"Priority": {"select": {"name": "High"}}
		}
	}`, pageID, pageID)

	sdk := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(full))
	})

	sh := NewSpeakerHandler(sdk)
	req := callRequest(map[string]any{"speaker_id": pageID})

	res, err := sh.handleGetSpeakerDetails(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	text := resultText(t, res)

	want := strings.Join([]string{
		"# Dr. Sarah Chen",
		"",
		"**Notion ID:** " + pageID,
		"**Notion URL:** https://www.notion.so/" + pageID,
		"",
		"## Professional Info",
		"- **Field/Specialty:** Genomics & Biotech",
		"- **Affiliation:** Broad Institute",
		"- **Position:** Principal Investigator",
		"- **LinkedIn:** https://linkedin.com/in/schen",
		"",
		"## Contact",
		"- **Status:** Contacted",
		"- **Priority:** High",
		"- **Email:** schen@broadinstitute.org",
		"",
		"## Potential Topics",
		"- CRISPR screening",
		"- Rare disease genomics",
		"",
		"## Research Notes",
		"Leads a functional genomics lab.",
	}, "\n")
	if text != want {
		t.Errorf("unexpected details:\n%s\nwant:\n%s", text, want)
	}
}

func TestGetSpeakerDetailsToolFallbacks(t *testing.T) {
	const pageID = "99999999-8888-4777-8666-555544443333"
	sdk := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(pageJSON(pageID, "Jane Doe", "Not Contacted")))
	})

	sh := NewSpeakerHandler(sdk)
	req := callRequest(map[string]any{"speaker_id": pageID})

	res, err := sh.handleGetSpeakerDetails(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	text := resultText(t, res)

	for _, want := range []string{
		"- **Field/Specialty:** Not specified",
		"- **Priority:** Not set",
		"- **Email:** Not specified",
		"- None specified",
		"No notes yet.",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("details missing %q:\n%s", want, text)
		}
	}
}
