package notion

import (
	"encoding/json"
	"testing"
)

func TestAndComposition(t *testing.T) {
	t.Parallel()
	if got := And(); got != nil {
		t.Fatalf("And() should be nil, got %+v", got)
	}

	single := And(TitleContains("Name", "chen"))
	b, err := json.Marshal(single)
	if err != nil {
		t.Fatalf("marshal single: %v", err)
	}
	want := `{"property":"Name","title":{"contains":"chen"}}`
	if string(b) != want {
		t.Fatalf("single predicate: got %s want %s", b, want)
	}

	multi := And(
		TitleContains("Name", "chen"),
		SelectEquals("Contact Status", "Contacted"),
		RichTextContains("Affiliation", "stanford"),
	)
	b, err = json.Marshal(multi)
	if err != nil {
		t.Fatalf("marshal multi: %v", err)
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal multi: %v", err)
	}
	if _, ok := decoded["property"]; ok {
		t.Fatal("compound filter must not carry a top-level property")
	}
	var leaves []map[string]json.RawMessage
	if err := json.Unmarshal(decoded["and"], &leaves); err != nil {
		t.Fatalf("unmarshal and: %v", err)
	}
	if len(leaves) != 3 {
		t.Fatalf("and group: got %d leaves, want 3", len(leaves))
	}
	for i, cond := range []string{"title", "select", "rich_text"} {
		if _, ok := leaves[i][cond]; !ok {
			t.Fatalf("leaf %d missing %s condition: %s", i, cond, decoded["and"])
		}
	}
}
