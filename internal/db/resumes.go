package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jobproj/resume-builder/internal/types"
)

// CreateResume inserts an empty resume owned by ownerID and returns its id.
func (db *DB) CreateResume(ctx context.Context, ownerID uuid.UUID, title string) (int64, error) {
	var id int64
	err := db.pool.QueryRow(ctx,
		`INSERT INTO resumes (owner_id, title) VALUES ($1, $2) RETURNING id`,
		ownerID, title,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create resume: %w", err)
	}
	return id, nil
}

// GetResume retrieves one resume, or nil when absent.
func (db *DB) GetResume(ctx context.Context, id int64) (*types.Resume, error) {
	r := &types.Resume{}
	err := db.pool.QueryRow(ctx,
		`SELECT id, owner_id, title, summary, is_public, name, phone, email,
		        birth_date, profile_image_url, created_at, updated_at
		 FROM resumes WHERE id = $1`, id,
	).Scan(&r.ResumeID, &r.OwnerID, &r.Title, &r.Summary, &r.IsPublic, &r.Name,
		&r.Phone, &r.Email, &r.BirthDate, &r.ProfileImageURL, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return r, nil
}

// ListResumes returns one page of a user's resumes, newest first, plus the
// total count.
func (db *DB) ListResumes(ctx context.Context, ownerID uuid.UUID, page, size int) ([]types.Resume, int64, error) {
	var total int64
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM resumes WHERE owner_id = $1`, ownerID,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count resumes: %w", err)
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, owner_id, title, summary, is_public, name, phone, email,
		        birth_date, profile_image_url, created_at, updated_at
		 FROM resumes WHERE owner_id = $1
		 ORDER BY updated_at DESC
		 LIMIT $2 OFFSET $3`,
		ownerID, size, page*size,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	resumes := make([]types.Resume, 0)
	for rows.Next() {
		var r types.Resume
		if err := rows.Scan(&r.ResumeID, &r.OwnerID, &r.Title, &r.Summary, &r.IsPublic,
			&r.Name, &r.Phone, &r.Email, &r.BirthDate, &r.ProfileImageURL,
			&r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan resume: %w", err)
		}
		resumes = append(resumes, r)
	}
	return resumes, total, rows.Err()
}

// UpdateResume applies a partial update: only non-nil request fields change.
// Returns false when the resume does not exist.
func (db *DB) UpdateResume(ctx context.Context, id int64, req *types.UpdateResumeRequest) (bool, error) {
	sets := []string{"updated_at = NOW()"}
	args := []any{id}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Title != nil {
		add("title", *req.Title)
	}
	if req.IsPublic != nil {
		add("is_public", *req.IsPublic)
	}
	if req.Summary != nil {
		add("summary", *req.Summary)
	}
	if req.Name != nil {
		add("name", *req.Name)
	}
	if req.Phone != nil {
		add("phone", *req.Phone)
	}
	if req.Email != nil {
		add("email", *req.Email)
	}
	if req.BirthDate != nil {
		add("birth_date", *req.BirthDate)
	}

	tag, err := db.pool.Exec(ctx,
		fmt.Sprintf(`UPDATE resumes SET %s WHERE id = $1`, strings.Join(sets, ", ")),
		args...,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update resume: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteResume removes a resume; section rows and skill associations cascade.
func (db *DB) DeleteResume(ctx context.Context, id int64) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete resume: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
