package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

// queryResponse wraps stub pages in a database query result.
func queryResponse(pages ...string) string {
	return fmt.Sprintf(`{"object":"list","results":[%s],"has_more":false,"next_cursor":null}`,
		strings.Join(pages, ","))
}

// richPageJSON is pageJSON plus affiliation and priority for listing output.
func richPageJSON(id, name, status, affiliation, priority string) string {
	return fmt.Sprintf(`{
		"object": "page",
		"id": %q,
		"url": "https://www.notion.so/%s",
		"properties": {
			"Name": {"title": [{"type": "text", "text": {"content": %q}, "plain_text": %q}]},
			"Contact Status": {"select": {"name": %q}},
			"Affiliation": {"rich_text": [{"type": "text", "text": {"content": %q}, "plain_text": %q}]},
			"Priority": {"select": {"name": %q}}
		}
	}`, id, id, name, name, status, affiliation, affiliation, priority)
}

func TestSearchSpeakersTool(t *testing.T) {
	var filterSeen map[string]any
	sdk := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/query") {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		filterSeen, _ = body["filter"].(map[string]any)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(queryResponse(
			pageJSON("11111111-aaaa-4bbb-8ccc-000000000001", "Dr. Sarah Chen", "Contacted"),
			pageJSON("11111111-aaaa-4bbb-8ccc-000000000002", "Marcus Webb", "Not Contacted"),
		)))
	})

	sh := NewSearchHandler(sdk)
	req := callRequest(map[string]any{
		"name":           "e",
		"contact_status": "Contacted",
	})

	res, err := sh.handleSearchSpeakers(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	text := resultText(t, res)

	want := strings.Join([]string{
		"Found 2 speaker(s):\n",
		"---",
		"Name: Dr. Sarah Chen",
		"ID: 11111111-aaaa-4bbb-8ccc-000000000001",
		"Status: Contacted",
		"---",
		"Name: Marcus Webb",
		"ID: 11111111-aaaa-4bbb-8ccc-000000000002",
		"Status: Not Contacted",
	}, "\n")
	if text != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", text, want)
	}

	// Two criteria compose into an and group on the wire.
	if filterSeen == nil {
		t.Fatalf("no filter sent")
	}
	conds, ok := filterSeen["and"].([]any)
	if !ok || len(conds) != 2 {
		t.Errorf("expected 2 and-conditions, got %v", filterSeen)
	}
}

func TestSearchSpeakersToolNoMatches(t *testing.T) {
	sdk := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(queryResponse()))
	})

	sh := NewSearchHandler(sdk)
	res, err := sh.handleSearchSpeakers(context.Background(), callRequest(map[string]any{"name": "nobody"}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if got := resultText(t, res); got != "No speakers found matching the criteria." {
		t.Errorf("unexpected output: %s", got)
	}
}

func TestSearchSpeakersToolRejectsUnknownStatus(t *testing.T) {
	sdk := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no request expected, got %s %s", r.Method, r.URL.Path)
	})

	sh := NewSearchHandler(sdk)
	res, err := sh.handleSearchSpeakers(context.Background(), callRequest(map[string]any{"contact_status": "Ghosted"}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if !res.IsError {
		t.Fatalf("expected error result")
	}
	if got := resultText(t, res); !strings.Contains(got, "Invalid contact_status") {
		t.Errorf("unexpected error text: %s", got)
	}
}

func TestListSpeakersTool(t *testing.T) {
	sdk := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(queryResponse(
			richPageJSON("11111111-aaaa-4bbb-8ccc-000000000001", "Dr. Sarah Chen", "Contacted", "Broad Institute", "High"),
			pageJSON("11111111-aaaa-4bbb-8ccc-000000000002", "Jane Doe", "Not Contacted"),
			pageJSON("11111111-aaaa-4bbb-8ccc-000000000003", "Marcus Webb", "Contacted"),
		)))
	})

	sh := NewSearchHandler(sdk)
	res, err := sh.handleListSpeakers(context.Background(), callRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	text := resultText(t, res)

	want := strings.Join([]string{
		"Total speakers: 3\n",
		"\n## Contacted (2)",
		"- Dr. Sarah Chen (Broad Institute) [High]",
		"- Marcus Webb",
		"\n## Not Contacted (1)",
		"- Jane Doe",
	}, "\n")
	if text != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", text, want)
	}
}

func TestListSpeakersToolEmptyDatabase(t *testing.T) {
	sdk := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(queryResponse()))
	})

	sh := NewSearchHandler(sdk)
	res, err := sh.handleListSpeakers(context.Background(), callRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if got := resultText(t, res); got != "No speakers in the database yet." {
		t.Errorf("unexpected output: %s", got)
	}
}

func TestListSpeakersToolGroupByPriority(t *testing.T) {
	var pageSize float64
	sdk := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		pageSize, _ = body["page_size"].(float64)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(queryResponse(
			richPageJSON("11111111-aaaa-4bbb-8ccc-000000000001", "Dr. Sarah Chen", "Contacted", "Broad Institute", "High"),
			pageJSON("11111111-aaaa-4bbb-8ccc-000000000002", "Jane Doe", "Not Contacted"),
		)))
	})

	sh := NewSearchHandler(sdk)
	res, err := sh.handleListSpeakers(context.Background(), callRequest(map[string]any{
		"group_by": "priority",
		"limit":    float64(10),
	}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	text := resultText(t, res)

	if !strings.Contains(text, "\n## High (1)") || !strings.Contains(text, "\n## Not set (1)") {
		t.Errorf("expected priority groups, got:\n%s", text)
	}
	if pageSize != 10 {
		t.Errorf("expected page_size 10, got %v", pageSize)
	}
}

func TestListSpeakersToolRejectsUnknownGroupField(t *testing.T) {
	sdk := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no request expected, got %s %s", r.Method, r.URL.Path)
	})

	sh := NewSearchHandler(sdk)
	res, err := sh.handleListSpeakers(context.Background(), callRequest(map[string]any{"group_by": "affiliation"}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if !res.IsError {
		t.Fatalf("expected error result")
	}
	if got := resultText(t, res); !strings.Contains(got, "Invalid group_by") {
		t.Errorf("unexpected error text: %s", got)
	}
}
