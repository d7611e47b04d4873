// Package mapper translates speaker records to and from Notion property
// payloads. It owns the property-name table; nothing outside this package
// spells a remote property name.
package mapper

import (
	"fmt"
	"strings"

	"github.com/codingnoodle/speaker-tracker/client/internal/notion"
	"github.com/codingnoodle/speaker-tracker/client/internal/types"
)

// Property names pinned by the speaker database schema.
const (
	PropName            = "Name"
	PropFieldSpecialty  = "Field/Specialty"
	PropAffiliation     = "Affiliation"
	PropPosition        = "Position"
	PropLinkedInURL     = "LinkedIn URL"
	PropPotentialTopics = "Potential Topics"
	PropContactStatus   = "Contact Status"
	PropResearchNotes   = "Research Notes"
	PropEmail           = "Email"
	PropPriority        = "Priority"
)

// PropertyNames returns the full property table in schema order.
func PropertyNames() []string {
	return []string{
		PropName,
		PropFieldSpecialty,
		PropAffiliation,
		PropPosition,
		PropLinkedInURL,
		PropPotentialTopics,
		PropContactStatus,
		PropResearchNotes,
		PropEmail,
		PropPriority,
	}
}

// CreateProperties builds the property payload for a new record. Name and
// Contact Status are always written; optional fields appear only when
// supplied. An empty ContactStatus defaults to Not Contacted.
func CreateProperties(c types.SpeakerCreate) (map[string]notion.PropertyValue, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	status := c.ContactStatus
	if status == "" {
		status = types.StatusNotContacted
	}
	props := map[string]notion.PropertyValue{
		PropName:          notion.NewTitle(strings.TrimSpace(c.Name)),
		PropContactStatus: notion.NewSelect(string(status)),
	}
	if c.FieldSpecialty != nil {
		props[PropFieldSpecialty] = notion.NewSelect(string(*c.FieldSpecialty))
	}
	if c.Affiliation != nil {
		props[PropAffiliation] = notion.NewRichText(*c.Affiliation)
	}
	if c.Position != nil {
		props[PropPosition] = notion.NewRichText(*c.Position)
	}
	if c.LinkedInURL != nil {
		props[PropLinkedInURL] = notion.NewURL(*c.LinkedInURL)
	}
	if c.Email != nil {
		props[PropEmail] = notion.NewEmail(*c.Email)
	}
	if len(c.PotentialTopics) > 0 {
		props[PropPotentialTopics] = notion.NewMultiSelect(normalizeTopics(c.PotentialTopics))
	}
	if c.ResearchNotes != nil {
		props[PropResearchNotes] = notion.NewRichText(*c.ResearchNotes)
	}
	if c.Priority != nil {
		props[PropPriority] = notion.NewSelect(string(*c.Priority))
	}
	return props, nil
}

// UpdateProperties builds a partial payload carrying exactly the supplied
// fields. An empty update yields an empty map. Pointers to zero values
// clear the property remotely.
func UpdateProperties(u types.SpeakerUpdate) (map[string]notion.PropertyValue, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}
	props := make(map[string]notion.PropertyValue)
	if u.Name != nil {
		props[PropName] = notion.NewTitle(strings.TrimSpace(*u.Name))
	}
	if u.FieldSpecialty != nil {
		props[PropFieldSpecialty] = notion.NewSelect(string(*u.FieldSpecialty))
	}
	if u.Affiliation != nil {
		props[PropAffiliation] = notion.NewRichText(*u.Affiliation)
	}
	if u.Position != nil {
		props[PropPosition] = notion.NewRichText(*u.Position)
	}
	if u.LinkedInURL != nil {
		props[PropLinkedInURL] = notion.NewURL(*u.LinkedInURL)
	}
	if u.Email != nil {
		props[PropEmail] = notion.NewEmail(*u.Email)
	}
	if u.PotentialTopics != nil {
		props[PropPotentialTopics] = notion.NewMultiSelect(normalizeTopics(*u.PotentialTopics))
	}
	if u.ContactStatus != nil {
		props[PropContactStatus] = notion.NewSelect(string(*u.ContactStatus))
	}
	if u.ResearchNotes != nil {
		props[PropResearchNotes] = notion.NewRichText(*u.ResearchNotes)
	}
	if u.Priority != nil {
		props[PropPriority] = notion.NewSelect(string(*u.Priority))
	}
	return props, nil
}

// SpeakerFromPage parses a page into a speaker record. Reads are tolerant:
// unknown specialty labels collapse to Other, unknown statuses to Not
// Contacted, unknown priorities are dropped. A blank or missing title is the
// one hard failure.
func SpeakerFromPage(p notion.Page) (types.Speaker, error) {
	props := p.Properties
	name := strings.TrimSpace(props[PropName].PlainTitle())
	if name == "" {
		return types.Speaker{}, fmt.Errorf("%w: page %s has no name title", types.ErrDataIntegrity, p.ID)
	}
	sp := types.Speaker{ID: p.ID, URL: p.URL, Name: name, ContactStatus: types.StatusNotContacted}

	if s := props[PropFieldSpecialty].SelectName(); s != "" {
		fs := types.FieldSpecialty(s)
		if !fs.Valid() {
			fs = types.SpecialtyOther
		}
		sp.FieldSpecialty = &fs
	}
	if s := props[PropAffiliation].PlainRichText(); s != "" {
		sp.Affiliation = &s
	}
	if s := props[PropPosition].PlainRichText(); s != "" {
		sp.Position = &s
	}
	if v := props[PropLinkedInURL]; v.URL != nil && *v.URL != "" {
		sp.LinkedInURL = v.URL
	}
	if v := props[PropEmail]; v.Email != nil && *v.Email != "" {
		sp.Email = v.Email
	}
	sp.PotentialTopics = props[PropPotentialTopics].MultiSelectNames()
	if s := props[PropContactStatus].SelectName(); s != "" {
		if cs := types.ContactStatus(s); cs.Valid() {
			sp.ContactStatus = cs
		}
	}
	if s := props[PropResearchNotes].PlainRichText(); s != "" {
		sp.ResearchNotes = &s
	}
	if s := props[PropPriority].SelectName(); s != "" {
		if pr := types.Priority(s); pr.Valid() {
			sp.Priority = &pr
		}
	}
	return sp, nil
}

// QueryFilter translates search predicates into a remote filter expression.
// Absent predicates are omitted; the result is nil when no predicate is set
// so unfiltered queries carry no filter clause at all.
func QueryFilter(f types.SearchFilter) *notion.Filter {
	var leaves []notion.Filter
	if f.NameContains != nil && *f.NameContains != "" {
		leaves = append(leaves, notion.TitleContains(PropName, *f.NameContains))
	}
	if f.FieldSpecialty != nil {
		leaves = append(leaves, notion.SelectEquals(PropFieldSpecialty, string(*f.FieldSpecialty)))
	}
	if f.ContactStatus != nil {
		leaves = append(leaves, notion.SelectEquals(PropContactStatus, string(*f.ContactStatus)))
	}
	if f.Priority != nil {
		leaves = append(leaves, notion.SelectEquals(PropPriority, string(*f.Priority)))
	}
	if f.AffiliationContains != nil && *f.AffiliationContains != "" {
		leaves = append(leaves, notion.RichTextContains(PropAffiliation, *f.AffiliationContains))
	}
	return notion.And(leaves...)
}

// normalizeTopics trims tags and drops empties and duplicates, keeping
// first-occurrence order.
func normalizeTopics(topics []string) []string {
	seen := make(map[string]struct{}, len(topics))
	out := make([]string, 0, len(topics))
	for _, t := range topics {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
