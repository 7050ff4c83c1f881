package services

import (
	"database/sql"
	"errors"

	"jobdesk/internal/domain"
	"jobdesk/internal/repos"

	"github.com/google/uuid"
)

type OrgService struct {
	Orgs *repos.OrgRepo
}

func NewOrgService(orgs *repos.OrgRepo) *OrgService { return &OrgService{Orgs: orgs} }

// Create registers the actor's organization. One organization per
// employer; the unique index on owner_id backs the pre-check.
func (s *OrgService) Create(actor *domain.User, name, description, website, location string) (*domain.Organization, error) {
	if _, err := s.Orgs.ByOwner(actor.ID); err == nil {
		return nil, ErrOrgExists
	}
	o := &domain.Organization{
		ID:          uuid.NewString(),
		OwnerID:     actor.ID,
		Name:        name,
		Description: description,
		Website:     website,
		Location:    location,
	}
	if err := s.Orgs.Create(o); err != nil {
		if repos.IsUniqueViolation(err) {
			return nil, ErrOrgExists
		}
		return nil, err
	}
	return s.Orgs.ByID(o.ID)
}

func (s *OrgService) Get(id string) (*domain.Organization, error) {
	o, err := s.Orgs.ByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return o, err
}

func (s *OrgService) List() ([]domain.Organization, error) {
	return s.Orgs.List()
}

func (s *OrgService) Update(actor *domain.User, id, name, description, website, location string) (*domain.Organization, error) {
	o, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if o.OwnerID != actor.ID && actor.Role != domain.RoleAdmin {
		return nil, ErrForbidden
	}
	o.Name, o.Description, o.Website, o.Location = name, description, website, location
	if err := s.Orgs.Update(o); err != nil {
		return nil, err
	}
	return s.Orgs.ByID(id)
}

func (s *OrgService) Delete(actor *domain.User, id string) error {
	o, err := s.Get(id)
	if err != nil {
		return err
	}
	if o.OwnerID != actor.ID && actor.Role != domain.RoleAdmin {
		return ErrForbidden
	}
	return s.Orgs.Delete(id)
}
