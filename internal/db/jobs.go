package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/talent-matcher/internal/types"
)

// CreateJob inserts a job posting and returns its ID
func (db *DB) CreateJob(ctx context.Context, record *JobRecord) (uuid.UUID, error) {
	parsedJSON, err := json.Marshal(record.Parsed)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal parsed job: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO jobs (title, description, requirements, responsibilities, parsed, embedding, missing_info)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		record.Title, record.Description, record.Requirements, record.Responsibilities,
		parsedJSON, record.Embedding, record.MissingInfo,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create job: %w", err)
	}
	return id, nil
}

// UpdateJob replaces a job's text fields, parsed form, and embedding.
// Returns false when the job does not exist.
func (db *DB) UpdateJob(ctx context.Context, record *JobRecord) (bool, error) {
	parsedJSON, err := json.Marshal(record.Parsed)
	if err != nil {
		return false, fmt.Errorf("failed to marshal parsed job: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE jobs
		 SET title = $1, description = $2, requirements = $3, responsibilities = $4,
		     parsed = $5, embedding = $6, missing_info = $7, updated_at = NOW()
		 WHERE id = $8`,
		record.Title, record.Description, record.Requirements, record.Responsibilities,
		parsedJSON, record.Embedding, record.MissingInfo, record.ID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update job: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// GetJob retrieves a job by ID. Returns nil without error when no such job
// exists.
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*JobRecord, error) {
	var record JobRecord
	var parsedJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, title, description, requirements, responsibilities, parsed, embedding, missing_info, created_at, updated_at
		 FROM jobs WHERE id = $1`,
		id,
	).Scan(&record.ID, &record.Title, &record.Description, &record.Requirements, &record.Responsibilities,
		&parsedJSON, &record.Embedding, &record.MissingInfo, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	if err := unmarshalParsedJob(parsedJSON, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// ListJobs retrieves all job postings, most recent first
func (db *DB) ListJobs(ctx context.Context) ([]JobRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, description, requirements, responsibilities, parsed, embedding, missing_info, created_at, updated_at
		 FROM jobs ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var records []JobRecord
	for rows.Next() {
		var record JobRecord
		var parsedJSON []byte
		if err := rows.Scan(&record.ID, &record.Title, &record.Description, &record.Requirements, &record.Responsibilities,
			&parsedJSON, &record.Embedding, &record.MissingInfo, &record.CreatedAt, &record.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		if err := unmarshalParsedJob(parsedJSON, &record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func unmarshalParsedJob(parsedJSON []byte, record *JobRecord) error {
	if len(parsedJSON) == 0 {
		return nil
	}
	parsed := types.NewStructuredJob()
	if err := json.Unmarshal(parsedJSON, parsed); err != nil {
		return fmt.Errorf("failed to unmarshal parsed job %s: %w", record.ID, err)
	}
	record.Parsed = parsed
	return nil
}
