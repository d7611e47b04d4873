package client

import "github.com/codingnoodle/speaker-tracker/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Requests
	SpeakerCreate = types.SpeakerCreate
	SpeakerUpdate = types.SpeakerUpdate
	SearchFilter  = types.SearchFilter

	// Domain entities
	Speaker        = types.Speaker
	SpeakerGroup   = types.SpeakerGroup
	FieldSpecialty = types.FieldSpecialty
	ContactStatus  = types.ContactStatus
	Priority       = types.Priority
	GroupField     = types.GroupField

	// Responses
	ConnectionStatus = types.ConnectionStatus
)

// Field specialty labels.
const (
	SpecialtyDrugDiscoveryAI   = types.SpecialtyDrugDiscoveryAI
	SpecialtyClinicalMedicalAI = types.SpecialtyClinicalMedicalAI
	SpecialtyGenomicsBiotech   = types.SpecialtyGenomicsBiotech
	SpecialtyHealthcareAIML    = types.SpecialtyHealthcareAIML
	SpecialtyRegulatoryScience = types.SpecialtyRegulatoryScience
	SpecialtyRealWorldData     = types.SpecialtyRealWorldData
	SpecialtyBioinformatics    = types.SpecialtyBioinformatics
	SpecialtyMedicalImaging    = types.SpecialtyMedicalImaging
	SpecialtyNLPHealthcare     = types.SpecialtyNLPHealthcare
	SpecialtyOther             = types.SpecialtyOther
)

// Contact status labels.
const (
	StatusNotContacted = types.StatusNotContacted
	StatusContacted    = types.StatusContacted
	StatusInDiscussion = types.StatusInDiscussion
	StatusConfirmed    = types.StatusConfirmed
	StatusDeclined     = types.StatusDeclined
	StatusMaybeLater   = types.StatusMaybeLater
	StatusNoResponse   = types.StatusNoResponse
)

// Priority labels.
const (
	PriorityHigh   = types.PriorityHigh
	PriorityMedium = types.PriorityMedium
	PriorityLow    = types.PriorityLow
)

// Group fields accepted by ListSpeakersGrouped.
const (
	GroupByContactStatus  = types.GroupByContactStatus
	GroupByPriority       = types.GroupByPriority
	GroupByFieldSpecialty = types.GroupByFieldSpecialty
)

// FieldSpecialties returns every valid specialty in display order.
func FieldSpecialties() []FieldSpecialty { return types.FieldSpecialties() }

// ContactStatuses returns every valid contact status in display order.
func ContactStatuses() []ContactStatus { return types.ContactStatuses() }

// Priorities returns every valid priority in display order.
func Priorities() []Priority { return types.Priorities() }

// GroupFields returns every valid group field.
func GroupFields() []GroupField { return types.GroupFields() }

// Errors re-exported in errors.go
