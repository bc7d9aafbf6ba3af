package server

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jobproj/resume-builder/internal/db"
	"github.com/jobproj/resume-builder/internal/types"
)

// mockStore is an in-memory db.Store for handler tests.
type mockStore struct {
	mu           sync.Mutex
	users        map[uuid.UUID]*db.User
	resumes      map[int64]*types.Resume
	educations   map[int64]*types.Education
	experiences  map[int64]*types.Experience
	projects     map[int64]*types.Project
	skills       map[int64]*types.Skill
	resumeSkills map[int64]map[int64]int
	nextID       int64
}

var _ db.Store = (*mockStore)(nil)

func newMockStore() *mockStore {
	return &mockStore{
		users:        make(map[uuid.UUID]*db.User),
		resumes:      make(map[int64]*types.Resume),
		educations:   make(map[int64]*types.Education),
		experiences:  make(map[int64]*types.Experience),
		projects:     make(map[int64]*types.Project),
		skills:       make(map[int64]*types.Skill),
		resumeSkills: make(map[int64]map[int64]int),
	}
}

func (m *mockStore) nextIDLocked() int64 {
	m.nextID++
	return m.nextID
}

func (m *mockStore) CreateUser(_ context.Context, name, email, passwordHash, phone string) (*db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return nil, fmt.Errorf("duplicate email: %s", email)
		}
	}
	u := &db.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Phone:        phone,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	m.users[u.ID] = u
	return u, nil
}

func (m *mockStore) GetUser(_ context.Context, id uuid.UUID) (*db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.users[id], nil
}

func (m *mockStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockStore) CreateResume(_ context.Context, ownerID uuid.UUID, title string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextIDLocked()
	m.resumes[id] = &types.Resume{
		ResumeID:  id,
		OwnerID:   ownerID,
		Title:     title,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	return id, nil
}

func (m *mockStore) GetResume(_ context.Context, id int64) (*types.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.resumes[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (m *mockStore) ListResumes(_ context.Context, ownerID uuid.UUID, page, size int) ([]types.Resume, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]types.Resume, 0)
	for _, r := range m.resumes {
		if r.OwnerID == ownerID {
			all = append(all, *r)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ResumeID < all[j].ResumeID })
	return pageSlice(all, page, size), int64(len(all)), nil
}

func (m *mockStore) UpdateResume(_ context.Context, id int64, req *types.UpdateResumeRequest) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.resumes[id]
	if !ok {
		return false, nil
	}
	if req.Title != nil {
		r.Title = *req.Title
	}
	if req.IsPublic != nil {
		r.IsPublic = *req.IsPublic
	}
	if req.Summary != nil {
		r.Summary = *req.Summary
	}
	if req.Name != nil {
		r.Name = *req.Name
	}
	if req.Phone != nil {
		r.Phone = *req.Phone
	}
	if req.Email != nil {
		r.Email = *req.Email
	}
	if req.BirthDate != nil {
		r.BirthDate = *req.BirthDate
	}
	r.UpdatedAt = time.Now()
	return true, nil
}

func (m *mockStore) DeleteResume(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.resumes[id]; !ok {
		return false, nil
	}
	delete(m.resumes, id)
	for eid, e := range m.educations {
		if e.ResumeID == id {
			delete(m.educations, eid)
		}
	}
	for eid, e := range m.experiences {
		if e.ResumeID == id {
			delete(m.experiences, eid)
		}
	}
	for pid, p := range m.projects {
		if p.ResumeID == id {
			delete(m.projects, pid)
		}
	}
	delete(m.resumeSkills, id)
	return true, nil
}

func (m *mockStore) CreateEducation(_ context.Context, resumeID int64, req *types.CreateEducationRequest) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextIDLocked()
	m.educations[id] = &types.Education{
		EducationID: id,
		ResumeID:    resumeID,
		SchoolName:  req.SchoolName,
		Major:       req.Major,
		Degree:      req.Degree,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Current:     req.Current,
	}
	return id, nil
}

func (m *mockStore) ListEducations(_ context.Context, resumeID int64, page, size int) ([]types.Education, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]types.Education, 0)
	for _, e := range m.educations {
		if e.ResumeID == resumeID {
			all = append(all, *e)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].EducationID < all[j].EducationID })
	return pageSlice(all, page, size), int64(len(all)), nil
}

func (m *mockStore) GetEducation(_ context.Context, id int64) (*types.Education, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.educations[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (m *mockStore) DeleteEducation(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.educations[id]; !ok {
		return false, nil
	}
	delete(m.educations, id)
	return true, nil
}

func (m *mockStore) CreateExperience(_ context.Context, resumeID int64, req *types.CreateExperienceRequest) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextIDLocked()
	m.experiences[id] = &types.Experience{
		ExperienceID:  id,
		ResumeID:      resumeID,
		CompanyName:   req.CompanyName,
		PositionTitle: req.PositionTitle,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		IsCurrent:     req.IsCurrent,
		Description:   req.Description,
	}
	return id, nil
}

func (m *mockStore) ListExperiences(_ context.Context, resumeID int64) ([]types.Experience, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]types.Experience, 0)
	for _, e := range m.experiences {
		if e.ResumeID == resumeID {
			all = append(all, *e)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ExperienceID < all[j].ExperienceID })
	return all, nil
}

func (m *mockStore) GetExperience(_ context.Context, id int64) (*types.Experience, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.experiences[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (m *mockStore) DeleteExperience(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.experiences[id]; !ok {
		return false, nil
	}
	delete(m.experiences, id)
	return true, nil
}

func (m *mockStore) CreateProject(_ context.Context, resumeID int64, req *types.CreateProjectRequest) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextIDLocked()
	m.projects[id] = &types.Project{
		ProjectID: id,
		ResumeID:  resumeID,
		Name:      req.Name,
		Role:      req.Role,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		IsCurrent: req.IsCurrent,
		Summary:   req.Summary,
		TechStack: req.TechStack,
		URL:       req.URL,
	}
	return id, nil
}

func (m *mockStore) ListProjects(_ context.Context, resumeID int64) ([]types.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]types.Project, 0)
	for _, p := range m.projects {
		if p.ResumeID == resumeID {
			all = append(all, *p)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ProjectID < all[j].ProjectID })
	return all, nil
}

func (m *mockStore) GetProject(_ context.Context, id int64) (*types.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.projects[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *mockStore) DeleteProject(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.projects[id]; !ok {
		return false, nil
	}
	delete(m.projects, id)
	return true, nil
}

func (m *mockStore) CreateSkill(_ context.Context, name string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.skills {
		if strings.EqualFold(s.Name, name) {
			return 0, fmt.Errorf("duplicate skill: %s", name)
		}
	}
	id := m.nextIDLocked()
	m.skills[id] = &types.Skill{SkillID: id, Name: name}
	return id, nil
}

func (m *mockStore) SearchSkills(_ context.Context, q string, limit int) ([]types.Skill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	matched := make([]types.Skill, 0)
	for _, s := range m.skills {
		if strings.Contains(strings.ToLower(s.Name), strings.ToLower(q)) {
			matched = append(matched, *s)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (m *mockStore) GetSkill(_ context.Context, id int64) (*types.Skill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.skills[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (m *mockStore) PutResumeSkill(_ context.Context, resumeID, skillID int64, proficiency int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.resumeSkills[resumeID] == nil {
		m.resumeSkills[resumeID] = make(map[int64]int)
	}
	m.resumeSkills[resumeID][skillID] = proficiency
	return nil
}

func (m *mockStore) ListResumeSkills(_ context.Context, resumeID int64) ([]types.ResumeSkill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := make([]types.ResumeSkill, 0)
	for skillID, prof := range m.resumeSkills[resumeID] {
		rs := types.ResumeSkill{SkillID: skillID, Proficiency: prof}
		if s, ok := m.skills[skillID]; ok {
			rs.Name = s.Name
		}
		list = append(list, rs)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (m *mockStore) DeleteResumeSkill(_ context.Context, resumeID, skillID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.resumeSkills[resumeID][skillID]; !ok {
		return false, nil
	}
	delete(m.resumeSkills[resumeID], skillID)
	return true, nil
}

// pageSlice applies page/size slicing to a sorted slice.
func pageSlice[T any](all []T, page, size int) []T {
	start := page * size
	if start >= len(all) {
		return []T{}
	}
	end := start + size
	if end > len(all) {
		end = len(all)
	}
	return all[start:end]
}
