package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/talent-matcher/internal/types"
)

// Resume status values
const (
	ResumeStatusActive   = "active"
	ResumeStatusArchived = "archived"
)

// ResumeRecord is a stored resume. Parsed and Embedding are the durable
// contract: the ranking flow reads them back without re-running the
// pipeline.
type ResumeRecord struct {
	ID          uuid.UUID              `json:"id"`
	Name        string                 `json:"name"`
	Email       string                 `json:"email"`
	SourceText  string                 `json:"source_text,omitempty"`
	Parsed      *types.StructuredResume `json:"parsed_data"`
	Embedding   []float32              `json:"-"`
	MissingInfo []string               `json:"missing_info"`
	Status      string                 `json:"status"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// JobRecord is a stored job posting with its parsed fields and embedding.
type JobRecord struct {
	ID               uuid.UUID           `json:"id"`
	Title            string              `json:"title"`
	Description      string              `json:"description"`
	Requirements     string              `json:"requirements"`
	Responsibilities string              `json:"responsibilities"`
	Parsed           *types.StructuredJob `json:"parsed_data"`
	Embedding        []float32           `json:"-"`
	MissingInfo      []string            `json:"missing_info"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}
