package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/talent-matcher/internal/types"
)

// SaveResume inserts a processed resume and returns its ID
func (db *DB) SaveResume(ctx context.Context, record *ResumeRecord) (uuid.UUID, error) {
	parsedJSON, err := json.Marshal(record.Parsed)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal parsed resume: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resumes (name, email, source_text, parsed, embedding, missing_info, status)
		 VALUES ($1, $2, $3, $4, $5, $6, 'active')
		 RETURNING id`,
		record.Name, record.Email, record.SourceText, parsedJSON, record.Embedding, record.MissingInfo,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save resume: %w", err)
	}
	return id, nil
}

// GetResume retrieves a resume by ID. Returns nil without error when no
// such resume exists.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*ResumeRecord, error) {
	var record ResumeRecord
	var parsedJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, source_text, parsed, embedding, missing_info, status, created_at, updated_at
		 FROM resumes WHERE id = $1`,
		id,
	).Scan(&record.ID, &record.Name, &record.Email, &record.SourceText, &parsedJSON,
		&record.Embedding, &record.MissingInfo, &record.Status, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	if err := unmarshalParsedResume(parsedJSON, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// ListActiveResumes retrieves all active resumes, most recent first. This
// is the candidate pool for ranking.
func (db *DB) ListActiveResumes(ctx context.Context) ([]ResumeRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, email, source_text, parsed, embedding, missing_info, status, created_at, updated_at
		 FROM resumes WHERE status = 'active' ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var records []ResumeRecord
	for rows.Next() {
		var record ResumeRecord
		var parsedJSON []byte
		if err := rows.Scan(&record.ID, &record.Name, &record.Email, &record.SourceText, &parsedJSON,
			&record.Embedding, &record.MissingInfo, &record.Status, &record.CreatedAt, &record.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		if err := unmarshalParsedResume(parsedJSON, &record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// UpdateResumeParsed replaces the parsed fields of a resume after a manual
// correction, along with the re-run audit result. Returns false when the
// resume does not exist.
func (db *DB) UpdateResumeParsed(ctx context.Context, id uuid.UUID, parsed *types.StructuredResume, missingInfo []string) (bool, error) {
	parsedJSON, err := json.Marshal(parsed)
	if err != nil {
		return false, fmt.Errorf("failed to marshal parsed resume: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE resumes
		 SET parsed = $1, missing_info = $2, name = $3, email = $4, updated_at = NOW()
		 WHERE id = $5`,
		parsedJSON, missingInfo, parsed.PersonalInfo.Name, parsed.PersonalInfo.Email, id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update parsed resume: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// ArchiveResume removes a resume from the active candidate pool without
// deleting it. Returns false when the resume does not exist.
func (db *DB) ArchiveResume(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`UPDATE resumes SET status = 'archived', updated_at = NOW() WHERE id = $1`,
		id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to archive resume: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

func unmarshalParsedResume(parsedJSON []byte, record *ResumeRecord) error {
	if len(parsedJSON) == 0 {
		return nil
	}
	parsed := types.NewStructuredResume()
	if err := json.Unmarshal(parsedJSON, parsed); err != nil {
		return fmt.Errorf("failed to unmarshal parsed resume %s: %w", record.ID, err)
	}
	record.Parsed = parsed
	return nil
}
