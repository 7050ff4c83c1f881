package services

import (
	"database/sql"
	"errors"

	"jobdesk/internal/domain"
	"jobdesk/internal/repos"

	"github.com/google/uuid"
)

type JobInput struct {
	CategoryID     string
	Title          string
	Description    string
	Salary         float64
	EmploymentType string
	Level          string
	Skills         string
}

type JobService struct {
	Jobs *repos.JobRepo
	Orgs *repos.OrgRepo
}

func NewJobService(jobs *repos.JobRepo, orgs *repos.OrgRepo) *JobService {
	return &JobService{Jobs: jobs, Orgs: orgs}
}

// Create posts a job under the actor's organization. The actor must have
// registered an organization first.
func (s *JobService) Create(actor *domain.User, in JobInput) (*domain.Job, error) {
	org, err := s.Orgs.ByOwner(actor.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoOrganization
	}
	if err != nil {
		return nil, err
	}
	j := &domain.Job{
		ID:             uuid.NewString(),
		OrgID:          org.ID,
		OwnerID:        actor.ID,
		CategoryID:     in.CategoryID,
		Title:          in.Title,
		Description:    in.Description,
		Salary:         in.Salary,
		EmploymentType: in.EmploymentType,
		Level:          in.Level,
		Skills:         in.Skills,
	}
	if err := s.Jobs.Create(j); err != nil {
		return nil, err
	}
	return s.Jobs.ByID(j.ID)
}

func (s *JobService) Get(id string) (*domain.Job, error) {
	j, err := s.Jobs.ByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return j, err
}

func (s *JobService) List(categoryID, orgID string, page, pageSize int) ([]domain.Job, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize
	return s.Jobs.List(categoryID, orgID, pageSize, offset)
}

// Update mutates a job. Only the owning employer or an admin may do so.
func (s *JobService) Update(actor *domain.User, id string, in JobInput) (*domain.Job, error) {
	j, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if j.OwnerID != actor.ID && actor.Role != domain.RoleAdmin {
		return nil, ErrForbidden
	}
	j.CategoryID = in.CategoryID
	j.Title = in.Title
	j.Description = in.Description
	j.Salary = in.Salary
	j.EmploymentType = in.EmploymentType
	j.Level = in.Level
	j.Skills = in.Skills
	if err := s.Jobs.Update(j); err != nil {
		return nil, err
	}
	return s.Jobs.ByID(id)
}

func (s *JobService) Delete(actor *domain.User, id string) error {
	j, err := s.Get(id)
	if err != nil {
		return err
	}
	if j.OwnerID != actor.ID && actor.Role != domain.RoleAdmin {
		return ErrForbidden
	}
	return s.Jobs.Delete(id)
}
