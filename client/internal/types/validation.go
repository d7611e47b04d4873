package types

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ------------------------------
// Validation
// ------------------------------

// ValidateName checks the one hard requirement on a speaker record.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	return nil
}

// ValidateSpeakerID rejects ids that cannot be Notion page ids before any
// request leaves the process. Notion accepts both hyphenated and bare-hex
// UUID forms, and so does uuid.Parse.
func ValidateSpeakerID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: speaker id is required", ErrValidation)
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: speaker id %q is not a page id", ErrValidation, id)
	}
	return nil
}

// Validate checks a create request before it is mapped to remote properties.
func (c SpeakerCreate) Validate() error {
	if err := ValidateName(c.Name); err != nil {
		return err
	}
	if c.FieldSpecialty != nil && !c.FieldSpecialty.Valid() {
		return fmt.Errorf("%w: invalid field_specialty %q", ErrValidation, *c.FieldSpecialty)
	}
	if c.ContactStatus != "" && !c.ContactStatus.Valid() {
		return fmt.Errorf("%w: invalid contact_status %q", ErrValidation, c.ContactStatus)
	}
	if c.Priority != nil && !c.Priority.Valid() {
		return fmt.Errorf("%w: invalid priority %q", ErrValidation, *c.Priority)
	}
	return nil
}

// Validate checks a partial update. A supplied name must still be non-empty;
// enum fields must carry known labels.
func (u SpeakerUpdate) Validate() error {
	if u.Name != nil {
		if err := ValidateName(*u.Name); err != nil {
			return err
		}
	}
	if u.FieldSpecialty != nil && !u.FieldSpecialty.Valid() {
		return fmt.Errorf("%w: invalid field_specialty %q", ErrValidation, *u.FieldSpecialty)
	}
	if u.ContactStatus != nil && !u.ContactStatus.Valid() {
		return fmt.Errorf("%w: invalid contact_status %q", ErrValidation, *u.ContactStatus)
	}
	if u.Priority != nil && !u.Priority.Valid() {
		return fmt.Errorf("%w: invalid priority %q", ErrValidation, *u.Priority)
	}
	return nil
}

// Validate checks that any enum predicates carry known labels.
func (f SearchFilter) Validate() error {
	if f.FieldSpecialty != nil && !f.FieldSpecialty.Valid() {
		return fmt.Errorf("%w: invalid field_specialty %q", ErrValidation, *f.FieldSpecialty)
	}
	if f.ContactStatus != nil && !f.ContactStatus.Valid() {
		return fmt.Errorf("%w: invalid contact_status %q", ErrValidation, *f.ContactStatus)
	}
	if f.Priority != nil && !f.Priority.Valid() {
		return fmt.Errorf("%w: invalid priority %q", ErrValidation, *f.Priority)
	}
	return nil
}
