package notion

import (
	"encoding/json"
	"strings"
)

// Version pins the Notion-Version header sent with every request.
const Version = "2022-06-28"

// PropertyType names the property kinds this build reads and writes. The
// remote schema supports more; anything else is out of scope here.
type PropertyType string

const (
	PropertyTitle       PropertyType = "title"
	PropertyRichText    PropertyType = "rich_text"
	PropertySelect      PropertyType = "select"
	PropertyMultiSelect PropertyType = "multi_select"
	PropertyURL         PropertyType = "url"
	PropertyEmail       PropertyType = "email"
)

// Link is a hyperlink attached to a rich text fragment.
type Link struct {
	URL string `json:"url"`
}

// TextContent is the writable core of a rich text fragment.
type TextContent struct {
	Content string `json:"content"`
	Link    *Link  `json:"link,omitempty"`
}

// RichText is one fragment of a rich text array. Writes populate Text; reads
// also carry PlainText rendered by the API.
type RichText struct {
	Type      string       `json:"type,omitempty"`
	Text      *TextContent `json:"text,omitempty"`
	PlainText string       `json:"plain_text,omitempty"`
}

// PlainText flattens a rich text array to its concatenated content.
func PlainText(rts []RichText) string {
	var b strings.Builder
	for _, rt := range rts {
		if rt.Text != nil {
			b.WriteString(rt.Text.Content)
		} else {
			b.WriteString(rt.PlainText)
		}
	}
	return b.String()
}

// SelectOption is one choice of a select or multi_select property.
type SelectOption struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// PropertyValue is a tagged union over the supported property kinds. At most
// one kind field is populated; Type names the kind on values decoded from
// the API and values built by the New* constructors.
type PropertyValue struct {
	ID          string         `json:"id,omitempty"`
	Type        PropertyType   `json:"type,omitempty"`
	Title       []RichText     `json:"title,omitempty"`
	RichText    []RichText     `json:"rich_text,omitempty"`
	Select      *SelectOption  `json:"select,omitempty"`
	MultiSelect []SelectOption `json:"multi_select,omitempty"`
	URL         *string        `json:"url,omitempty"`
	Email       *string        `json:"email,omitempty"`
}

func (v PropertyValue) kind() PropertyType {
	if v.Type != "" {
		return v.Type
	}
	switch {
	case v.Title != nil:
		return PropertyTitle
	case v.RichText != nil:
		return PropertyRichText
	case v.Select != nil:
		return PropertySelect
	case v.MultiSelect != nil:
		return PropertyMultiSelect
	case v.URL != nil:
		return PropertyURL
	case v.Email != nil:
		return PropertyEmail
	}
	return ""
}

// MarshalJSON writes only the active kind, without the type discriminator.
// Cleared select/url/email values and emptied multi_select sets serialize as
// explicit null / [] because the API requires that to unset them; a value
// with no kind at all degrades to an empty object.
func (v PropertyValue) MarshalJSON() ([]byte, error) {
	switch v.kind() {
	case PropertyTitle:
		return json.Marshal(map[string][]RichText{"title": v.Title})
	case PropertyRichText:
		return json.Marshal(map[string][]RichText{"rich_text": v.RichText})
	case PropertySelect:
		return json.Marshal(map[string]*SelectOption{"select": v.Select})
	case PropertyMultiSelect:
		opts := v.MultiSelect
		if opts == nil {
			opts = []SelectOption{}
		}
		return json.Marshal(map[string][]SelectOption{"multi_select": opts})
	case PropertyURL:
		return json.Marshal(map[string]*string{"url": v.URL})
	case PropertyEmail:
		return json.Marshal(map[string]*string{"email": v.Email})
	}
	return []byte("{}"), nil
}

// NewTitle builds a title value from plain text.
func NewTitle(text string) PropertyValue {
	return PropertyValue{Type: PropertyTitle, Title: []RichText{{Text: &TextContent{Content: text}}}}
}

// NewRichText builds a rich_text value from plain text. Empty text becomes
// an empty fragment array, which clears the property.
func NewRichText(text string) PropertyValue {
	v := PropertyValue{Type: PropertyRichText, RichText: []RichText{}}
	if text != "" {
		v.RichText = []RichText{{Text: &TextContent{Content: text}}}
	}
	return v
}

// NewSelect builds a select value. An empty name clears the selection.
func NewSelect(name string) PropertyValue {
	v := PropertyValue{Type: PropertySelect}
	if name != "" {
		v.Select = &SelectOption{Name: name}
	}
	return v
}

// NewMultiSelect builds a multi_select value. An empty or nil name list
// clears the tag set.
func NewMultiSelect(names []string) PropertyValue {
	opts := make([]SelectOption, 0, len(names))
	for _, n := range names {
		opts = append(opts, SelectOption{Name: n})
	}
	return PropertyValue{Type: PropertyMultiSelect, MultiSelect: opts}
}

// NewURL builds a url value. An empty string clears it.
func NewURL(u string) PropertyValue {
	v := PropertyValue{Type: PropertyURL}
	if u != "" {
		v.URL = &u
	}
	return v
}

// NewEmail builds an email value. An empty string clears it.
func NewEmail(e string) PropertyValue {
	v := PropertyValue{Type: PropertyEmail}
	if e != "" {
		v.Email = &e
	}
	return v
}

// PlainTitle returns the concatenated title text, or "" when blank.
func (v PropertyValue) PlainTitle() string { return PlainText(v.Title) }

// PlainRichText returns the concatenated rich text, or "" when blank.
func (v PropertyValue) PlainRichText() string { return PlainText(v.RichText) }

// SelectName returns the selected option name, or "" when unset.
func (v PropertyValue) SelectName() string {
	if v.Select == nil {
		return ""
	}
	return v.Select.Name
}

// MultiSelectNames returns the option names in stored order.
func (v PropertyValue) MultiSelectNames() []string {
	if len(v.MultiSelect) == 0 {
		return nil
	}
	names := make([]string, 0, len(v.MultiSelect))
	for _, o := range v.MultiSelect {
		names = append(names, o.Name)
	}
	return names
}

// Parent locates a page inside a database.
type Parent struct {
	Type       string `json:"type,omitempty"`
	DatabaseID string `json:"database_id,omitempty"`
}

// Page is a database row. Properties are keyed by property name.
type Page struct {
	Object     string                   `json:"object,omitempty"`
	ID         string                   `json:"id"`
	URL        string                   `json:"url,omitempty"`
	Archived   bool                     `json:"archived,omitempty"`
	Parent     *Parent                  `json:"parent,omitempty"`
	Properties map[string]PropertyValue `json:"properties"`
}

// PropertySchema describes one column of a database schema.
type PropertySchema struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	Type string `json:"type"`
}

// Database is the schema-level view of a database.
type Database struct {
	Object     string                    `json:"object,omitempty"`
	ID         string                    `json:"id"`
	Title      []RichText                `json:"title"`
	Properties map[string]PropertySchema `json:"properties"`
}

// QueryResult is one page of database query results. NextCursor is null on
// the final page.
type QueryResult struct {
	Object     string  `json:"object,omitempty"`
	Results    []Page  `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

type createPageRequest struct {
	Parent     Parent                   `json:"parent"`
	Properties map[string]PropertyValue `json:"properties"`
}

type updatePageRequest struct {
	Properties map[string]PropertyValue `json:"properties,omitempty"`
	Archived   *bool                    `json:"archived,omitempty"`
}

type queryRequest struct {
	Filter      *Filter `json:"filter,omitempty"`
	PageSize    int     `json:"page_size,omitempty"`
	StartCursor string  `json:"start_cursor,omitempty"`
}
