package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jobproj/resume-builder/internal/types"
)

// CreateEducation inserts an education record and returns its id.
func (db *DB) CreateEducation(ctx context.Context, resumeID int64, req *types.CreateEducationRequest) (int64, error) {
	var id int64
	err := db.pool.QueryRow(ctx,
		`INSERT INTO educations (resume_id, school_name, major, degree, start_date, end_date, is_current)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		resumeID, req.SchoolName, req.Major, req.Degree, req.StartDate, req.EndDate, req.Current,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create education: %w", err)
	}
	return id, nil
}

// ListEducations returns one page of a resume's education records in
// insertion order, plus the total count.
func (db *DB) ListEducations(ctx context.Context, resumeID int64, page, size int) ([]types.Education, int64, error) {
	var total int64
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM educations WHERE resume_id = $1`, resumeID,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count educations: %w", err)
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, resume_id, school_name, major, degree, start_date, end_date, is_current
		 FROM educations WHERE resume_id = $1
		 ORDER BY id
		 LIMIT $2 OFFSET $3`,
		resumeID, size, page*size,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list educations: %w", err)
	}
	defer rows.Close()

	list := make([]types.Education, 0)
	for rows.Next() {
		var e types.Education
		if err := rows.Scan(&e.EducationID, &e.ResumeID, &e.SchoolName, &e.Major,
			&e.Degree, &e.StartDate, &e.EndDate, &e.Current); err != nil {
			return nil, 0, fmt.Errorf("failed to scan education: %w", err)
		}
		list = append(list, e)
	}
	return list, total, rows.Err()
}

// GetEducation retrieves one education record, or nil when absent.
func (db *DB) GetEducation(ctx context.Context, id int64) (*types.Education, error) {
	e := &types.Education{}
	err := db.pool.QueryRow(ctx,
		`SELECT id, resume_id, school_name, major, degree, start_date, end_date, is_current
		 FROM educations WHERE id = $1`, id,
	).Scan(&e.EducationID, &e.ResumeID, &e.SchoolName, &e.Major, &e.Degree,
		&e.StartDate, &e.EndDate, &e.Current)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get education: %w", err)
	}
	return e, nil
}

// DeleteEducation removes one education record.
func (db *DB) DeleteEducation(ctx context.Context, id int64) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM educations WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete education: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CreateExperience inserts an experience record and returns its id.
func (db *DB) CreateExperience(ctx context.Context, resumeID int64, req *types.CreateExperienceRequest) (int64, error) {
	var id int64
	err := db.pool.QueryRow(ctx,
		`INSERT INTO experiences (resume_id, company_name, position_title, start_date, end_date, is_current, description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		resumeID, req.CompanyName, req.PositionTitle, req.StartDate, req.EndDate, req.IsCurrent, req.Description,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create experience: %w", err)
	}
	return id, nil
}

// ListExperiences returns all experience records of a resume in insertion
// order. The collection is small (the editor caps it at five) so no paging.
func (db *DB) ListExperiences(ctx context.Context, resumeID int64) ([]types.Experience, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, resume_id, company_name, position_title, start_date, end_date, is_current, description
		 FROM experiences WHERE resume_id = $1
		 ORDER BY id`, resumeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list experiences: %w", err)
	}
	defer rows.Close()

	list := make([]types.Experience, 0)
	for rows.Next() {
		var e types.Experience
		if err := rows.Scan(&e.ExperienceID, &e.ResumeID, &e.CompanyName, &e.PositionTitle,
			&e.StartDate, &e.EndDate, &e.IsCurrent, &e.Description); err != nil {
			return nil, fmt.Errorf("failed to scan experience: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// GetExperience retrieves one experience record, or nil when absent.
func (db *DB) GetExperience(ctx context.Context, id int64) (*types.Experience, error) {
	e := &types.Experience{}
	err := db.pool.QueryRow(ctx,
		`SELECT id, resume_id, company_name, position_title, start_date, end_date, is_current, description
		 FROM experiences WHERE id = $1`, id,
	).Scan(&e.ExperienceID, &e.ResumeID, &e.CompanyName, &e.PositionTitle,
		&e.StartDate, &e.EndDate, &e.IsCurrent, &e.Description)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get experience: %w", err)
	}
	return e, nil
}

// DeleteExperience removes one experience record.
func (db *DB) DeleteExperience(ctx context.Context, id int64) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM experiences WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete experience: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CreateProject inserts a project record and returns its id.
func (db *DB) CreateProject(ctx context.Context, resumeID int64, req *types.CreateProjectRequest) (int64, error) {
	var id int64
	err := db.pool.QueryRow(ctx,
		`INSERT INTO projects (resume_id, name, role, start_date, end_date, is_current, summary, tech_stack, url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		resumeID, req.Name, req.Role, req.StartDate, req.EndDate, req.IsCurrent,
		req.Summary, req.TechStack, req.URL,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create project: %w", err)
	}
	return id, nil
}

// ListProjects returns all project records of a resume in insertion order.
func (db *DB) ListProjects(ctx context.Context, resumeID int64) ([]types.Project, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, resume_id, name, role, start_date, end_date, is_current, summary, tech_stack, url
		 FROM projects WHERE resume_id = $1
		 ORDER BY id`, resumeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	list := make([]types.Project, 0)
	for rows.Next() {
		var p types.Project
		if err := rows.Scan(&p.ProjectID, &p.ResumeID, &p.Name, &p.Role, &p.StartDate,
			&p.EndDate, &p.IsCurrent, &p.Summary, &p.TechStack, &p.URL); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetProject retrieves one project record, or nil when absent.
func (db *DB) GetProject(ctx context.Context, id int64) (*types.Project, error) {
	p := &types.Project{}
	err := db.pool.QueryRow(ctx,
		`SELECT id, resume_id, name, role, start_date, end_date, is_current, summary, tech_stack, url
		 FROM projects WHERE id = $1`, id,
	).Scan(&p.ProjectID, &p.ResumeID, &p.Name, &p.Role, &p.StartDate, &p.EndDate,
		&p.IsCurrent, &p.Summary, &p.TechStack, &p.URL)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// DeleteProject removes one project record.
func (db *DB) DeleteProject(ctx context.Context, id int64) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete project: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
