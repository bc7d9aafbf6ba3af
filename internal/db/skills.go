package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jobproj/resume-builder/internal/types"
)

// CreateSkill inserts a skill into the master table and returns its id. Names
// are unique case-insensitively; a duplicate insert fails with a constraint
// error, so callers should search before creating.
func (db *DB) CreateSkill(ctx context.Context, name string) (int64, error) {
	var id int64
	err := db.pool.QueryRow(ctx,
		`INSERT INTO skills (name) VALUES ($1) RETURNING id`, name,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create skill: %w", err)
	}
	return id, nil
}

// SearchSkills returns master skills whose name contains q, case-insensitive.
func (db *DB) SearchSkills(ctx context.Context, q string, limit int) ([]types.Skill, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name FROM skills
		 WHERE name ILIKE '%' || $1 || '%'
		 ORDER BY name
		 LIMIT $2`,
		q, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search skills: %w", err)
	}
	defer rows.Close()

	skills := make([]types.Skill, 0)
	for rows.Next() {
		var s types.Skill
		if err := rows.Scan(&s.SkillID, &s.Name); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

// GetSkill retrieves one master skill, or nil when absent.
func (db *DB) GetSkill(ctx context.Context, id int64) (*types.Skill, error) {
	s := &types.Skill{}
	err := db.pool.QueryRow(ctx,
		`SELECT id, name FROM skills WHERE id = $1`, id,
	).Scan(&s.SkillID, &s.Name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}
	return s, nil
}

// PutResumeSkill attaches a skill to a resume, or updates the proficiency if
// the association already exists.
func (db *DB) PutResumeSkill(ctx context.Context, resumeID, skillID int64, proficiency int) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO resume_skills (resume_id, skill_id, proficiency)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (resume_id, skill_id) DO UPDATE SET proficiency = EXCLUDED.proficiency`,
		resumeID, skillID, proficiency,
	)
	if err != nil {
		return fmt.Errorf("failed to put resume skill: %w", err)
	}
	return nil
}

// ListResumeSkills returns a resume's skill associations with their names.
func (db *DB) ListResumeSkills(ctx context.Context, resumeID int64) ([]types.ResumeSkill, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT rs.skill_id, s.name, rs.proficiency
		 FROM resume_skills rs
		 JOIN skills s ON s.id = rs.skill_id
		 WHERE rs.resume_id = $1
		 ORDER BY s.name`,
		resumeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resume skills: %w", err)
	}
	defer rows.Close()

	skills := make([]types.ResumeSkill, 0)
	for rows.Next() {
		var rs types.ResumeSkill
		if err := rows.Scan(&rs.SkillID, &rs.Name, &rs.Proficiency); err != nil {
			return nil, fmt.Errorf("failed to scan resume skill: %w", err)
		}
		skills = append(skills, rs)
	}
	return skills, rows.Err()
}

// DeleteResumeSkill detaches a skill from a resume. The master skill row is
// left in place for other resumes.
func (db *DB) DeleteResumeSkill(ctx context.Context, resumeID, skillID int64) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM resume_skills WHERE resume_id = $1 AND skill_id = $2`,
		resumeID, skillID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete resume skill: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
