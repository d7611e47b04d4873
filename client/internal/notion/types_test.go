package notion

import (
	"encoding/json"
	"testing"
)

func marshalString(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(b)
}

func TestPropertyValueMarshalShapes(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		v    PropertyValue
		want string
	}{
		{"title", NewTitle("Dr. Sarah Chen"), `{"title":[{"text":{"content":"Dr. Sarah Chen"}}]}`},
		{"rich_text", NewRichText("Stanford"), `{"rich_text":[{"text":{"content":"Stanford"}}]}`},
		{"rich_text cleared", NewRichText(""), `{"rich_text":[]}`},
		{"select", NewSelect("High"), `{"select":{"name":"High"}}`},
		{"select cleared", NewSelect(""), `{"select":null}`},
		{"multi_select", NewMultiSelect([]string{"AI", "Genomics"}), `{"multi_select":[{"name":"AI"},{"name":"Genomics"}]}`},
		{"multi_select cleared", NewMultiSelect(nil), `{"multi_select":[]}`},
		{"url", NewURL("https://linkedin.com/in/chen"), `{"url":"https://linkedin.com/in/chen"}`},
		{"url cleared", NewURL(""), `{"url":null}`},
		{"email", NewEmail("chen@stanford.edu"), `{"email":"chen@stanford.edu"}`},
		{"email cleared", NewEmail(""), `{"email":null}`},
	}
	for _, c := range cases {
		if got := marshalString(t, c.v); got != c.want {
			t.Fatalf("%s: got %s want %s", c.name, got, c.want)
		}
	}
}

func TestPropertyValueReadAccessors(t *testing.T) {
	t.Parallel()
	payload := `{
		"Name": {"id":"t1","type":"title","title":[{"type":"text","text":{"content":"Dr. Chen","link":null},"plain_text":"Dr. Chen"}]},
		"Affiliation": {"id":"a1","type":"rich_text","rich_text":[{"type":"text","text":{"content":"Stanford"},"plain_text":"Stanford"}]},
		"Contact Status": {"id":"s1","type":"select","select":{"id":"x","name":"Contacted","color":"blue"}},
		"Priority": {"id":"p1","type":"select","select":null},
		"Potential Topics": {"id":"m1","type":"multi_select","multi_select":[{"name":"AI"},{"name":"RNA"}]},
		"LinkedIn URL": {"id":"u1","type":"url","url":null},
		"Email": {"id":"e1","type":"email","email":"chen@stanford.edu"}
	}`
	var props map[string]PropertyValue
	if err := json.Unmarshal([]byte(payload), &props); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := props["Name"].PlainTitle(); got != "Dr. Chen" {
		t.Fatalf("PlainTitle: got %q", got)
	}
	if got := props["Affiliation"].PlainRichText(); got != "Stanford" {
		t.Fatalf("PlainRichText: got %q", got)
	}
	if got := props["Contact Status"].SelectName(); got != "Contacted" {
		t.Fatalf("SelectName: got %q", got)
	}
	if got := props["Priority"].SelectName(); got != "" {
		t.Fatalf("cleared select: got %q, want empty", got)
	}
	if got := props["Potential Topics"].MultiSelectNames(); len(got) != 2 || got[0] != "AI" || got[1] != "RNA" {
		t.Fatalf("MultiSelectNames: got %v", got)
	}
	if props["LinkedIn URL"].URL != nil {
		t.Fatal("cleared url should decode to nil")
	}
	if props["Email"].Email == nil || *props["Email"].Email != "chen@stanford.edu" {
		t.Fatalf("email: got %v", props["Email"].Email)
	}
}

func TestPlainTextFallsBackToRendered(t *testing.T) {
	t.Parallel()
	rts := []RichText{{Type: "mention", PlainText: "@chen"}, {Type: "text", Text: &TextContent{Content: " here"}}}
	if got := PlainText(rts); got != "@chen here" {
		t.Fatalf("PlainText: got %q", got)
	}
}
