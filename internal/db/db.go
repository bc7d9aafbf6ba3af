// Package db provides PostgreSQL storage for users, resumes, section
// records and the skill master.
package db

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jobproj/resume-builder/internal/types"
)

//go:embed schema.sql
var schemaSQL string

// Store is the persistence surface the HTTP handlers depend on. Lookups for
// missing rows return (nil, error=nil); deletes and updates report whether a
// row was affected.
type Store interface {
	CreateUser(ctx context.Context, name, email, passwordHash, phone string) (*User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)

	CreateResume(ctx context.Context, ownerID uuid.UUID, title string) (int64, error)
	GetResume(ctx context.Context, id int64) (*types.Resume, error)
	ListResumes(ctx context.Context, ownerID uuid.UUID, page, size int) ([]types.Resume, int64, error)
	UpdateResume(ctx context.Context, id int64, req *types.UpdateResumeRequest) (bool, error)
	DeleteResume(ctx context.Context, id int64) (bool, error)

	CreateEducation(ctx context.Context, resumeID int64, req *types.CreateEducationRequest) (int64, error)
	ListEducations(ctx context.Context, resumeID int64, page, size int) ([]types.Education, int64, error)
	GetEducation(ctx context.Context, id int64) (*types.Education, error)
	DeleteEducation(ctx context.Context, id int64) (bool, error)

	CreateExperience(ctx context.Context, resumeID int64, req *types.CreateExperienceRequest) (int64, error)
	ListExperiences(ctx context.Context, resumeID int64) ([]types.Experience, error)
	GetExperience(ctx context.Context, id int64) (*types.Experience, error)
	DeleteExperience(ctx context.Context, id int64) (bool, error)

	CreateProject(ctx context.Context, resumeID int64, req *types.CreateProjectRequest) (int64, error)
	ListProjects(ctx context.Context, resumeID int64) ([]types.Project, error)
	GetProject(ctx context.Context, id int64) (*types.Project, error)
	DeleteProject(ctx context.Context, id int64) (bool, error)

	CreateSkill(ctx context.Context, name string) (int64, error)
	SearchSkills(ctx context.Context, q string, limit int) ([]types.Skill, error)
	GetSkill(ctx context.Context, id int64) (*types.Skill, error)
	PutResumeSkill(ctx context.Context, resumeID, skillID int64, proficiency int) error
	ListResumeSkills(ctx context.Context, resumeID int64) ([]types.ResumeSkill, error)
	DeleteResumeSkill(ctx context.Context, resumeID, skillID int64) (bool, error)
}

// DB wraps a PostgreSQL connection pool and implements Store.
type DB struct {
	pool *pgxpool.Pool
}

var _ Store = (*DB)(nil)

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Migrate applies the embedded schema. Statements are idempotent
// (CREATE ... IF NOT EXISTS) so repeated startup is safe.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
