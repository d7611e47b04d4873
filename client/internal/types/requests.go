package types

// ------------------------------
// Request Types
// ------------------------------

// SpeakerCreate holds parameters for a new speaker record. Name is the only
// required field. ContactStatus left empty defaults to StatusNotContacted.
type SpeakerCreate struct {
	Name            string          `json:"name"`
	FieldSpecialty  *FieldSpecialty `json:"fieldSpecialty,omitempty"`
	Affiliation     *string         `json:"affiliation,omitempty"`
	Position        *string         `json:"position,omitempty"`
	LinkedInURL     *string         `json:"linkedinUrl,omitempty"`
	Email           *string         `json:"email,omitempty"`
	PotentialTopics []string        `json:"potentialTopics,omitempty"`
	ContactStatus   ContactStatus   `json:"contactStatus,omitempty"`
	ResearchNotes   *string         `json:"researchNotes,omitempty"`
	Priority        *Priority       `json:"priority,omitempty"`
}

// SpeakerUpdate holds a partial update. Every field is a pointer: nil means
// leave the property untouched, a non-nil pointer (including one to a zero
// value) means overwrite it. PotentialTopics pointing at an empty slice
// clears the tag set.
type SpeakerUpdate struct {
	Name            *string         `json:"name,omitempty"`
	FieldSpecialty  *FieldSpecialty `json:"fieldSpecialty,omitempty"`
	Affiliation     *string         `json:"affiliation,omitempty"`
	Position        *string         `json:"position,omitempty"`
	LinkedInURL     *string         `json:"linkedinUrl,omitempty"`
	Email           *string         `json:"email,omitempty"`
	PotentialTopics *[]string       `json:"potentialTopics,omitempty"`
	ContactStatus   *ContactStatus  `json:"contactStatus,omitempty"`
	ResearchNotes   *string         `json:"researchNotes,omitempty"`
	Priority        *Priority       `json:"priority,omitempty"`
}

// Empty reports whether the update carries no fields at all.
func (u SpeakerUpdate) Empty() bool {
	return u.Name == nil &&
		u.FieldSpecialty == nil &&
		u.Affiliation == nil &&
		u.Position == nil &&
		u.LinkedInURL == nil &&
		u.Email == nil &&
		u.PotentialTopics == nil &&
		u.ContactStatus == nil &&
		u.ResearchNotes == nil &&
		u.Priority == nil
}

// SearchFilter holds optional search predicates. Predicates left nil are
// omitted from the remote filter; all present predicates are AND-combined.
// NameContains and AffiliationContains are case-insensitive substring
// matches, the rest are exact matches on closed vocabularies.
type SearchFilter struct {
	NameContains        *string         `json:"nameContains,omitempty"`
	FieldSpecialty      *FieldSpecialty `json:"fieldSpecialty,omitempty"`
	ContactStatus       *ContactStatus  `json:"contactStatus,omitempty"`
	Priority            *Priority       `json:"priority,omitempty"`
	AffiliationContains *string         `json:"affiliationContains,omitempty"`
}

// Empty reports whether no predicate is set.
func (f SearchFilter) Empty() bool {
	return f.NameContains == nil &&
		f.FieldSpecialty == nil &&
		f.ContactStatus == nil &&
		f.Priority == nil &&
		f.AffiliationContains == nil
}
