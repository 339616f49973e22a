// ABOUTME: Submission model pairing a form with the plan generated from it.
// ABOUTME: Submissions are what the storage backends persist.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Submission is a stored form submission and its generated plan.
type Submission struct {
	ID        uuid.UUID `json:"id"`
	Form      FormData  `json:"form"`
	Plan      *Plan     `json:"plan,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewSubmission creates a Submission with a generated UUID and current timestamp.
func NewSubmission(form FormData, plan *Plan) *Submission {
	return &Submission{
		ID:        uuid.New(),
		Form:      form,
		Plan:      plan,
		CreatedAt: time.Now(),
	}
}

// WithCreatedAt sets a custom creation timestamp.
func (s *Submission) WithCreatedAt(t time.Time) *Submission {
	s.CreatedAt = t
	return s
}

// ShortID returns the 8-character ID prefix shown in listings.
func (s *Submission) ShortID() string {
	return s.ID.String()[:8]
}

// DisplayName returns the name, falling back to email, then the short ID.
func (s *Submission) DisplayName() string {
	switch {
	case s.Form.Name != "":
		return s.Form.Name
	case s.Form.Email != "":
		return s.Form.Email
	default:
		return s.ShortID()
	}
}
