package syncer

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jobproj/resume-builder/internal/api"
	"github.com/jobproj/resume-builder/internal/types"
)

// PullDocument fetches one resume with all of its sections into a document.
// Unlike LoadAll this is strict: any failed fetch aborts the pull, since a
// partially-pulled file would silently lose sections on the next push.
func PullDocument(ctx context.Context, client *api.Client, resumeID int64) (*types.ResumeDocument, error) {
	resume, err := client.GetResume(ctx, resumeID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch resume %d: %w", resumeID, err)
	}

	doc := &types.ResumeDocument{Resume: *resume}

	page, err := client.ListEducations(ctx, resumeID, 0, educationPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch educations: %w", err)
	}
	doc.Educations = page.Content

	if doc.Experiences, err = client.ListExperiences(ctx, resumeID); err != nil {
		return nil, fmt.Errorf("failed to fetch experiences: %w", err)
	}
	if doc.Projects, err = client.ListProjects(ctx, resumeID); err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}
	if doc.Skills, err = client.ListResumeSkills(ctx, resumeID); err != nil {
		return nil, fmt.Errorf("failed to fetch skills: %w", err)
	}

	return doc, nil
}

// PushDocument replaces the remote resume's content with the document's,
// using the same strategy as SaveAll: PATCH the parent first and abort all on
// failure, then per collection delete every existing row and recreate from
// the document. Rows land in document order; there is no rollback.
func PushDocument(ctx context.Context, client *api.Client, resumeID int64, doc *types.ResumeDocument) error {
	if doc == nil {
		return fmt.Errorf("document is nil")
	}

	if err := pushMeta(ctx, client, resumeID, doc); err != nil {
		return fmt.Errorf("resume update failed: %w", err)
	}
	if err := pushEducations(ctx, client, resumeID, doc.Educations); err != nil {
		return fmt.Errorf("education push failed: %w", err)
	}
	if err := pushExperiences(ctx, client, resumeID, doc.Experiences); err != nil {
		return fmt.Errorf("experience push failed: %w", err)
	}
	if err := pushProjects(ctx, client, resumeID, doc.Projects); err != nil {
		return fmt.Errorf("project push failed: %w", err)
	}
	if err := pushSkills(ctx, client, resumeID, doc.Skills); err != nil {
		return fmt.Errorf("skill push failed: %w", err)
	}
	return nil
}

func pushMeta(ctx context.Context, client *api.Client, resumeID int64, doc *types.ResumeDocument) error {
	r := doc.Resume
	return client.UpdateResume(ctx, resumeID, &types.UpdateResumeRequest{
		Title:     &r.Title,
		IsPublic:  &r.IsPublic,
		Summary:   &r.Summary,
		Name:      &r.Name,
		Phone:     &r.Phone,
		Email:     &r.Email,
		BirthDate: &r.BirthDate,
	})
}

func pushEducations(ctx context.Context, client *api.Client, resumeID int64, educations []types.Education) error {
	page, err := client.ListEducations(ctx, resumeID, 0, educationPageSize)
	if err != nil {
		return err
	}

	g, gCtx := errgroup.WithContext(ctx)
	for _, edu := range page.Content {
		g.Go(func() error {
			return client.DeleteEducation(gCtx, edu.EducationID)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Education rows are created sequentially; the server pages them by id and
	// a pull should see them in document order.
	for _, edu := range educations {
		_, err := client.CreateEducation(ctx, resumeID, &types.CreateEducationRequest{
			SchoolName: edu.SchoolName,
			Major:      edu.Major,
			Degree:     edu.Degree,
			StartDate:  edu.StartDate,
			EndDate:    edu.EndDate,
			Current:    edu.Current,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func pushExperiences(ctx context.Context, client *api.Client, resumeID int64, experiences []types.Experience) error {
	existing, err := client.ListExperiences(ctx, resumeID)
	if err != nil {
		return err
	}

	g, gCtx := errgroup.WithContext(ctx)
	for _, exp := range existing {
		g.Go(func() error {
			return client.DeleteExperience(gCtx, exp.ExperienceID)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, exp := range experiences {
		_, err := client.CreateExperience(ctx, resumeID, &types.CreateExperienceRequest{
			CompanyName:   exp.CompanyName,
			PositionTitle: exp.PositionTitle,
			StartDate:     exp.StartDate,
			EndDate:       exp.EndDate,
			IsCurrent:     exp.IsCurrent,
			Description:   exp.Description,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func pushProjects(ctx context.Context, client *api.Client, resumeID int64, projects []types.Project) error {
	existing, err := client.ListProjects(ctx, resumeID)
	if err != nil {
		return err
	}

	g, gCtx := errgroup.WithContext(ctx)
	for _, proj := range existing {
		g.Go(func() error {
			return client.DeleteProject(gCtx, proj.ProjectID)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, proj := range projects {
		_, err := client.CreateProject(ctx, resumeID, &types.CreateProjectRequest{
			Name:      proj.Name,
			Role:      proj.Role,
			StartDate: proj.StartDate,
			EndDate:   proj.EndDate,
			IsCurrent: proj.IsCurrent,
			Summary:   proj.Summary,
			TechStack: proj.TechStack,
			URL:       proj.URL,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// pushSkills mirrors saveSkills: delete all associations, then resolve each
// distinct name sequentially and attach it. Proficiency from the document is
// preserved.
func pushSkills(ctx context.Context, client *api.Client, resumeID int64, skills []types.ResumeSkill) error {
	existing, err := client.ListResumeSkills(ctx, resumeID)
	if err != nil {
		return err
	}

	g, gCtx := errgroup.WithContext(ctx)
	for _, rs := range existing {
		g.Go(func() error {
			return client.DeleteResumeSkill(gCtx, resumeID, rs.SkillID)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	seen := make(map[string]bool, len(skills))
	for _, rs := range skills {
		name := strings.TrimSpace(rs.Name)
		if name == "" || seen[strings.ToLower(name)] {
			continue
		}
		seen[strings.ToLower(name)] = true

		skillID, err := resolveSkillIDWith(ctx, client, name)
		if err != nil {
			return err
		}
		err = client.PutResumeSkill(ctx, resumeID, skillID, &types.PutResumeSkillRequest{Proficiency: rs.Proficiency})
		if err != nil {
			return err
		}
	}
	return nil
}

// resolveSkillIDWith is resolveSkillID without a Syncer receiver, shared by
// document pushes.
func resolveSkillIDWith(ctx context.Context, client *api.Client, name string) (int64, error) {
	candidates, err := client.SearchSkills(ctx, name, skillSearchLimit)
	if err != nil {
		return 0, err
	}
	for _, c := range candidates {
		if strings.EqualFold(c.Name, name) {
			return c.SkillID, nil
		}
	}
	return client.CreateSkill(ctx, &types.CreateSkillRequest{Name: name})
}
