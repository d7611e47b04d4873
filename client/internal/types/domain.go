package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// FieldSpecialty is the closed vocabulary for a speaker's primary field.
type FieldSpecialty string

const (
	SpecialtyDrugDiscoveryAI   FieldSpecialty = "Drug Discovery & AI"
	SpecialtyClinicalMedicalAI FieldSpecialty = "Clinical/Medical AI"
	SpecialtyGenomicsBiotech   FieldSpecialty = "Genomics & Biotech"
	SpecialtyHealthcareAIML    FieldSpecialty = "Healthcare AI/ML"
	SpecialtyRegulatoryScience FieldSpecialty = "Regulatory Science"
	SpecialtyRealWorldData     FieldSpecialty = "Real World Data/Evidence"
	SpecialtyBioinformatics    FieldSpecialty = "Bioinformatics"
	SpecialtyMedicalImaging    FieldSpecialty = "Medical Imaging AI"
	SpecialtyNLPHealthcare     FieldSpecialty = "NLP in Healthcare"
	// SpecialtyOther doubles as the read-side fallback for labels added to
	// the remote schema after this build.
	SpecialtyOther FieldSpecialty = "Other"
)

// FieldSpecialties returns every valid specialty in display order.
func FieldSpecialties() []FieldSpecialty {
	return []FieldSpecialty{
		SpecialtyDrugDiscoveryAI,
		SpecialtyClinicalMedicalAI,
		SpecialtyGenomicsBiotech,
		SpecialtyHealthcareAIML,
		SpecialtyRegulatoryScience,
		SpecialtyRealWorldData,
		SpecialtyBioinformatics,
		SpecialtyMedicalImaging,
		SpecialtyNLPHealthcare,
		SpecialtyOther,
	}
}

// Valid reports whether f is a member of the closed vocabulary.
func (f FieldSpecialty) Valid() bool {
	for _, v := range FieldSpecialties() {
		if f == v {
			return true
		}
	}
	return false
}

// ContactStatus tracks where outreach to a speaker stands.
type ContactStatus string

const (
	StatusNotContacted ContactStatus = "Not Contacted"
	StatusContacted    ContactStatus = "Contacted"
	StatusInDiscussion ContactStatus = "In Discussion"
	StatusConfirmed    ContactStatus = "Confirmed"
	StatusDeclined     ContactStatus = "Declined"
	StatusMaybeLater   ContactStatus = "Maybe Later"
	StatusNoResponse   ContactStatus = "No Response"
)

// ContactStatuses returns every valid contact status in display order.
func ContactStatuses() []ContactStatus {
	return []ContactStatus{
		StatusNotContacted,
		StatusContacted,
		StatusInDiscussion,
		StatusConfirmed,
		StatusDeclined,
		StatusMaybeLater,
		StatusNoResponse,
	}
}

// Valid reports whether s is a member of the closed vocabulary.
func (s ContactStatus) Valid() bool {
	for _, v := range ContactStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

// Priority ranks how aggressively a speaker should be pursued.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Priorities returns every valid priority in display order.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// Valid reports whether p is a member of the closed vocabulary.
func (p Priority) Valid() bool {
	for _, v := range Priorities() {
		if p == v {
			return true
		}
	}
	return false
}

// Speaker is a full speaker record as stored remotely. ID and URL are
// assigned by Notion on creation. Optional fields are pointers: nil means
// the property is unset remotely, a non-nil zero value means it was
// deliberately set empty.
type Speaker struct {
	ID              string          `json:"id"`
	URL             string          `json:"url,omitempty"`
	Name            string          `json:"name"`
	FieldSpecialty  *FieldSpecialty `json:"fieldSpecialty,omitempty"`
	Affiliation     *string         `json:"affiliation,omitempty"`
	Position        *string         `json:"position,omitempty"`
	LinkedInURL     *string         `json:"linkedinUrl,omitempty"`
	Email           *string         `json:"email,omitempty"`
	PotentialTopics []string        `json:"potentialTopics,omitempty"`
	ContactStatus   ContactStatus   `json:"contactStatus"`
	ResearchNotes   *string         `json:"researchNotes,omitempty"`
	Priority        *Priority       `json:"priority,omitempty"`
}

// ------------------------------
// Grouping
// ------------------------------

// GroupField selects the attribute used for client-side grouping.
type GroupField string

const (
	GroupByContactStatus  GroupField = "contact_status"
	GroupByPriority       GroupField = "priority"
	GroupByFieldSpecialty GroupField = "field_specialty"
)

// GroupFields returns every valid group field.
func GroupFields() []GroupField {
	return []GroupField{GroupByContactStatus, GroupByPriority, GroupByFieldSpecialty}
}

// Valid reports whether g names a groupable attribute.
func (g GroupField) Valid() bool {
	for _, v := range GroupFields() {
		if g == v {
			return true
		}
	}
	return false
}

// KeyFor returns the grouping key of s under g. Speakers with the attribute
// unset fall into a shared placeholder bucket.
func (g GroupField) KeyFor(s Speaker) string {
	switch g {
	case GroupByPriority:
		if s.Priority == nil {
			return "Not set"
		}
		return string(*s.Priority)
	case GroupByFieldSpecialty:
		if s.FieldSpecialty == nil {
			return "Not specified"
		}
		return string(*s.FieldSpecialty)
	default:
		return string(s.ContactStatus)
	}
}

// SpeakerGroup is one bucket of a grouped listing. Key order follows first
// appearance in the drained result set; speakers keep page order.
type SpeakerGroup struct {
	Key      string    `json:"key"`
	Speakers []Speaker `json:"speakers"`
}
