// Package syncer reconciles the resume edit form with the remote store.
//
// The remote API has no batch-replace or diff endpoint for section
// collections, only create/delete of individual rows, so saving uses a
// delete-all-then-recreate strategy per collection: trivially correct
// reconciliation at the cost of some write amplification. No stale child can
// survive a save and no id-matching logic is needed.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jobproj/resume-builder/internal/api"
	"github.com/jobproj/resume-builder/internal/editor"
	"github.com/jobproj/resume-builder/internal/period"
	"github.com/jobproj/resume-builder/internal/types"
)

// educationPageSize matches the page the original screen requested; only the
// first element of the first page is ever used.
const educationPageSize = 50

// skillSearchLimit caps skill-master search results per lookup.
const skillSearchLimit = 50

// ErrSaveInFlight is returned when SaveAll is called while a previous save
// has not settled. The original prevented this by disabling the save button;
// there is no queue and no cancellation.
var ErrSaveInFlight = errors.New("save already in progress")

// Markers used when rendering stored date ranges back into period strings.
const (
	eduCurrentMarker  = "재학"
	workCurrentMarker = "재직"
	projCurrentMarker = "진행중"
)

// Syncer keeps one resume's form state and remote state consistent.
type Syncer struct {
	client   *api.Client
	form     *editor.Form
	resumeID int64
	saving   bool
}

// New creates a Syncer for one resume-edit session.
func New(client *api.Client, form *editor.Form, resumeID int64) *Syncer {
	return &Syncer{client: client, form: form, resumeID: resumeID}
}

// LoadAll fetches remote state and populates the form: resume metadata and
// profile first, then education, experiences, projects and skills. Each
// section is independently fault-tolerant — a failed section is logged and
// left at its default so one broken collection does not blank the whole
// screen. Authentication failures abort immediately since every later call
// would fail the same way.
func (s *Syncer) LoadAll(ctx context.Context) error {
	if err := s.loadMeta(ctx); err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			return err
		}
		log.Printf("[sync] resume meta load failed (may be a new resume): %v", err)
	}

	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"education", s.loadEducation},
		{"experience", s.loadExperiences},
		{"project", s.loadProjects},
		{"skill", s.loadSkills},
	}
	for _, step := range steps {
		if err := step.fn(ctx); err != nil {
			if errors.Is(err, api.ErrUnauthorized) {
				return err
			}
			log.Printf("[sync] %s section load failed: %v", step.name, err)
		}
	}
	return nil
}

// SaveAll pushes the full form state to the remote store. The parent PATCH
// goes first and aborts everything on failure; the four collections follow
// strictly in order (education, experience, project, skill). A failure
// mid-way aborts the remaining steps but leaves already-committed sections
// in place — there is no rollback.
func (s *Syncer) SaveAll(ctx context.Context) error {
	if s.saving {
		return ErrSaveInFlight
	}
	s.saving = true
	defer func() { s.saving = false }()

	if err := s.saveMeta(ctx); err != nil {
		return fmt.Errorf("resume update failed: %w", err)
	}
	if err := s.saveEducation(ctx); err != nil {
		return fmt.Errorf("education save failed: %w", err)
	}
	if err := s.saveExperiences(ctx); err != nil {
		return fmt.Errorf("experience save failed: %w", err)
	}
	if err := s.saveProjects(ctx); err != nil {
		return fmt.Errorf("project save failed: %w", err)
	}
	if err := s.saveSkills(ctx); err != nil {
		return fmt.Errorf("skill save failed: %w", err)
	}
	return nil
}

// loadMeta populates title, public flag, summary and the profile fields.
// Absent fields stay at their defaults.
func (s *Syncer) loadMeta(ctx context.Context) error {
	resume, err := s.client.GetResume(ctx, s.resumeID)
	if err != nil {
		return err
	}

	s.form.Meta.Title = resume.Title
	s.form.Meta.IsPublic = resume.IsPublic
	s.form.SetProfile(editor.ProfileValues{
		Name:    resume.Name,
		Phone:   resume.Phone,
		Email:   resume.Email,
		Birth:   resume.BirthDate,
		Summary: resume.Summary,
	})
	return nil
}

// loadEducation fills the single education block from the first element of
// the first page. Collection semantics exist server-side but the form keeps
// exactly one block.
func (s *Syncer) loadEducation(ctx context.Context) error {
	page, err := s.client.ListEducations(ctx, s.resumeID, 0, educationPageSize)
	if err != nil {
		return err
	}
	if len(page.Content) == 0 {
		return nil
	}

	edu := page.Content[0]
	s.form.SetEducation(editor.EducationValues{
		School: edu.SchoolName,
		Major:  edu.Major,
		Degree: edu.Degree,
		Period: period.Format(period.Range{
			StartDate: edu.StartDate,
			EndDate:   edu.EndDate,
			Current:   edu.Current,
		}, eduCurrentMarker),
	})
	return nil
}

// loadExperiences materializes one block per stored entry (count-1 repeater
// calls beyond the template block) and fills them positionally in server
// order.
func (s *Syncer) loadExperiences(ctx context.Context) error {
	list, err := s.client.ListExperiences(ctx, s.resumeID)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		return nil
	}

	for i := s.form.ExperienceCount(); i < len(list); i++ {
		if !s.form.AddExperienceBlock() {
			break
		}
	}

	for i, exp := range list {
		n := i + 1
		if n > s.form.ExperienceCount() {
			break
		}
		s.form.SetExperience(n, editor.ExperienceValues{
			Company:  exp.CompanyName,
			Position: exp.PositionTitle,
			Period: period.Format(period.Range{
				StartDate: exp.StartDate,
				EndDate:   exp.EndDate,
				Current:   exp.IsCurrent,
			}, workCurrentMarker),
			Description: exp.Description,
		})
	}
	return nil
}

func (s *Syncer) loadProjects(ctx context.Context) error {
	list, err := s.client.ListProjects(ctx, s.resumeID)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		return nil
	}

	for i := s.form.ProjectCount(); i < len(list); i++ {
		if !s.form.AddProjectBlock() {
			break
		}
	}

	for i, proj := range list {
		n := i + 1
		if n > s.form.ProjectCount() {
			break
		}
		s.form.SetProject(n, editor.ProjectValues{
			Name: proj.Name,
			Role: proj.Role,
			Period: period.Format(period.Range{
				StartDate: proj.StartDate,
				EndDate:   proj.EndDate,
				Current:   proj.IsCurrent,
			}, projCurrentMarker),
			Tech:        proj.TechStack,
			Description: proj.Summary,
		})
	}
	return nil
}

func (s *Syncer) loadSkills(ctx context.Context) error {
	list, err := s.client.ListResumeSkills(ctx, s.resumeID)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		return nil
	}

	names := make([]string, 0, len(list))
	for _, rs := range list {
		if rs.Name != "" {
			names = append(names, rs.Name)
		}
	}
	if len(names) > 0 {
		s.form.SetSkills(strings.Join(names, ", "))
	}
	return nil
}

// saveMeta PATCHes title, public flag, summary and the full profile field
// set. This is a full replace of these fields, not a diff.
func (s *Syncer) saveMeta(ctx context.Context) error {
	profile := s.form.Profile()
	title := s.form.Meta.Title
	isPublic := s.form.Meta.IsPublic

	return s.client.UpdateResume(ctx, s.resumeID, &types.UpdateResumeRequest{
		Title:     &title,
		IsPublic:  &isPublic,
		Summary:   &profile.Summary,
		Name:      &profile.Name,
		Phone:     &profile.Phone,
		Email:     &profile.Email,
		BirthDate: &profile.Birth,
	})
}

// saveEducation replaces the education collection: delete every existing
// record (concurrently, awaited as a group), then recreate from the form
// block only if it holds anything.
func (s *Syncer) saveEducation(ctx context.Context) error {
	page, err := s.client.ListEducations(ctx, s.resumeID, 0, educationPageSize)
	if err != nil {
		return err
	}

	g, gCtx := errgroup.WithContext(ctx)
	for _, edu := range page.Content {
		g.Go(func() error {
			return s.client.DeleteEducation(gCtx, edu.EducationID)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	v := s.form.Education()
	if v.Empty() {
		return nil
	}

	parsed := period.Parse(v.Period)
	_, err = s.client.CreateEducation(ctx, s.resumeID, &types.CreateEducationRequest{
		SchoolName: v.School,
		Major:      v.Major,
		Degree:     v.Degree,
		StartDate:  parsed.StartDate,
		EndDate:    parsed.EndDate,
		Current:    parsed.Current,
	})
	return err
}

func (s *Syncer) saveExperiences(ctx context.Context) error {
	existing, err := s.client.ListExperiences(ctx, s.resumeID)
	if err != nil {
		return err
	}

	g, gCtx := errgroup.WithContext(ctx)
	for _, exp := range existing {
		g.Go(func() error {
			return s.client.DeleteExperience(gCtx, exp.ExperienceID)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	g, gCtx = errgroup.WithContext(ctx)
	for n := 1; n <= s.form.ExperienceCount(); n++ {
		v := s.form.Experience(n)
		if v.Empty() {
			continue
		}
		parsed := period.Parse(v.Period)
		req := &types.CreateExperienceRequest{
			CompanyName:   v.Company,
			PositionTitle: v.Position,
			StartDate:     parsed.StartDate,
			EndDate:       parsed.EndDate,
			IsCurrent:     parsed.Current,
			Description:   v.Description,
		}
		g.Go(func() error {
			_, err := s.client.CreateExperience(gCtx, s.resumeID, req)
			return err
		})
	}
	return g.Wait()
}

func (s *Syncer) saveProjects(ctx context.Context) error {
	existing, err := s.client.ListProjects(ctx, s.resumeID)
	if err != nil {
		return err
	}

	g, gCtx := errgroup.WithContext(ctx)
	for _, proj := range existing {
		g.Go(func() error {
			return s.client.DeleteProject(gCtx, proj.ProjectID)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	g, gCtx = errgroup.WithContext(ctx)
	for n := 1; n <= s.form.ProjectCount(); n++ {
		v := s.form.Project(n)
		if v.Empty() {
			continue
		}
		parsed := period.Parse(v.Period)
		req := &types.CreateProjectRequest{
			Name:      v.Name,
			Role:      v.Role,
			StartDate: parsed.StartDate,
			EndDate:   parsed.EndDate,
			IsCurrent: parsed.Current,
			Summary:   v.Description,
			TechStack: v.Tech,
		}
		g.Go(func() error {
			_, err := s.client.CreateProject(gCtx, s.resumeID, req)
			return err
		})
	}
	return g.Wait()
}

// saveSkills replaces the skill associations: delete all, then for each
// distinct name (case-insensitive) look up the master skill, create it if
// missing, and attach it with proficiency 0. Lookups run sequentially so a
// name repeated in the field cannot race itself into two master records.
func (s *Syncer) saveSkills(ctx context.Context) error {
	existing, err := s.client.ListResumeSkills(ctx, s.resumeID)
	if err != nil {
		return err
	}

	g, gCtx := errgroup.WithContext(ctx)
	for _, rs := range existing {
		g.Go(func() error {
			return s.client.DeleteResumeSkill(gCtx, s.resumeID, rs.SkillID)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, name := range dedupeNames(s.form.SkillNames()) {
		skillID, err := s.resolveSkillID(ctx, name)
		if err != nil {
			return err
		}
		err = s.client.PutResumeSkill(ctx, s.resumeID, skillID, &types.PutResumeSkillRequest{Proficiency: 0})
		if err != nil {
			return err
		}
	}
	return nil
}

// resolveSkillID finds a master skill by exact case-insensitive name among
// search candidates, creating one when no candidate matches.
func (s *Syncer) resolveSkillID(ctx context.Context, name string) (int64, error) {
	return resolveSkillIDWith(ctx, s.client, name)
}

// dedupeNames drops case-insensitive duplicates, keeping first spelling and
// order.
func dedupeNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		key := strings.ToLower(n)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, n)
	}
	return out
}
