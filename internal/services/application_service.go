package services

import (
	"database/sql"
	"errors"

	"jobdesk/internal/domain"
	"jobdesk/internal/repos"

	"github.com/google/uuid"
)

type ApplicationService struct {
	Apps *repos.ApplicationRepo
	Jobs *repos.JobRepo
}

func NewApplicationService(apps *repos.ApplicationRepo, jobs *repos.JobRepo) *ApplicationService {
	return &ApplicationService{Apps: apps, Jobs: jobs}
}

// Apply files an application for the actor against an existing job.
// One application per (job, applicant); the unique constraint backs this.
func (s *ApplicationService) Apply(actor *domain.User, jobID, coverLetter string) (*domain.JobApplication, error) {
	if _, err := s.Jobs.ByID(jobID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	a := &domain.JobApplication{
		ID:          uuid.NewString(),
		JobID:       jobID,
		ApplicantID: actor.ID,
		Status:      domain.AppSubmitted,
		CoverLetter: coverLetter,
	}
	if err := s.Apps.Create(a); err != nil {
		if repos.IsUniqueViolation(err) {
			return nil, ErrAlreadyApplied
		}
		return nil, err
	}
	return s.Apps.ByID(a.ID)
}

func (s *ApplicationService) ListMine(actor *domain.User) ([]domain.JobApplication, error) {
	return s.Apps.ListByApplicant(actor.ID)
}

// ListForJob returns a job's applications to its owning employer or an admin.
func (s *ApplicationService) ListForJob(actor *domain.User, jobID string) ([]domain.JobApplication, error) {
	j, err := s.Jobs.ByID(jobID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if j.OwnerID != actor.ID && actor.Role != domain.RoleAdmin {
		return nil, ErrForbidden
	}
	return s.Apps.ListByJob(jobID)
}

// SetStatus moves an application through its review states. Only the
// employer owning the job (or an admin) may transition it.
func (s *ApplicationService) SetStatus(actor *domain.User, appID, status string) (*domain.JobApplication, error) {
	a, err := s.Apps.ByID(appID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	j, err := s.Jobs.ByID(a.JobID)
	if err != nil {
		return nil, err
	}
	if j.OwnerID != actor.ID && actor.Role != domain.RoleAdmin {
		return nil, ErrForbidden
	}
	if err := s.Apps.UpdateStatus(appID, status); err != nil {
		return nil, err
	}
	return s.Apps.ByID(appID)
}
