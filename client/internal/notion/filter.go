package notion

// Filter is a database query filter. A leaf names one property and one
// condition; a compound carries only And. The API rejects bodies mixing
// both, so the builders below construct one or the other.
type Filter struct {
	Property string           `json:"property,omitempty"`
	Title    *TextCondition   `json:"title,omitempty"`
	RichText *TextCondition   `json:"rich_text,omitempty"`
	Select   *SelectCondition `json:"select,omitempty"`
	And      []Filter         `json:"and,omitempty"`
}

// TextCondition matches title or rich_text content. On the Notion side
// contains is case-insensitive.
type TextCondition struct {
	Contains string `json:"contains,omitempty"`
	Equals   string `json:"equals,omitempty"`
}

// SelectCondition matches a select property by exact option name.
type SelectCondition struct {
	Equals string `json:"equals,omitempty"`
}

// TitleContains matches pages whose title property contains substr.
func TitleContains(property, substr string) Filter {
	return Filter{Property: property, Title: &TextCondition{Contains: substr}}
}

// RichTextContains matches pages whose rich_text property contains substr.
func RichTextContains(property, substr string) Filter {
	return Filter{Property: property, RichText: &TextCondition{Contains: substr}}
}

// SelectEquals matches pages whose select property equals value exactly.
func SelectEquals(property, value string) Filter {
	return Filter{Property: property, Select: &SelectCondition{Equals: value}}
}

// And combines leaf filters: nil for none, the bare leaf for one, an and
// group otherwise. A single predicate is never wrapped in a group.
func And(filters ...Filter) *Filter {
	switch len(filters) {
	case 0:
		return nil
	case 1:
		f := filters[0]
		return &f
	default:
		return &Filter{And: filters}
	}
}
