package types

import (
	"github.com/go-playground/validator/v10"
)

// CreateJobRequest is the payload for creating a job posting.
type CreateJobRequest struct {
	Title            string `json:"title" validate:"required,min=1"`
	Description      string `json:"description" validate:"required,min=1"`
	Requirements     string `json:"requirements,omitempty"`
	Responsibilities string `json:"responsibilities,omitempty"`
}

// UpdateJobRequest is the payload for updating a job posting. All fields are
// optional; nil means "leave unchanged" so the server can tell an omitted
// field from an explicit empty string.
type UpdateJobRequest struct {
	Title            *string `json:"title,omitempty" validate:"omitempty,min=1"`
	Description      *string `json:"description,omitempty" validate:"omitempty,min=1"`
	Requirements     *string `json:"requirements,omitempty"`
	Responsibilities *string `json:"responsibilities,omitempty"`
}

// Validate validates the CreateJobRequest using the validator.
func (r *CreateJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateJobRequest using the validator.
func (r *UpdateJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
