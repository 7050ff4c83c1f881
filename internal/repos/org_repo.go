package repos

import (
	"jobdesk/internal/domain"

	"github.com/jmoiron/sqlx"
)

type OrgRepo struct{ db *sqlx.DB }

func NewOrgRepo(db *sqlx.DB) *OrgRepo { return &OrgRepo{db: db} }

const orgCols = `id,owner_id,name,description,website,location,COALESCE(created_at,'') AS created_at,COALESCE(updated_at,'') AS updated_at`

func (r *OrgRepo) Create(o *domain.Organization) error {
	_, err := r.db.Exec(`
		INSERT INTO organizations(id,owner_id,name,description,website,location)
		VALUES(?,?,?,?,?,?)`,
		o.ID, o.OwnerID, o.Name, o.Description, o.Website, o.Location)
	return err
}

func (r *OrgRepo) ByID(id string) (*domain.Organization, error) {
	var o domain.Organization
	if err := r.db.Get(&o, `SELECT `+orgCols+` FROM organizations WHERE id=?`, id); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrgRepo) ByOwner(ownerID string) (*domain.Organization, error) {
	var o domain.Organization
	if err := r.db.Get(&o, `SELECT `+orgCols+` FROM organizations WHERE owner_id=?`, ownerID); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrgRepo) List() ([]domain.Organization, error) {
	var out []domain.Organization
	err := r.db.Select(&out, `SELECT `+orgCols+` FROM organizations ORDER BY name`)
	return out, err
}

func (r *OrgRepo) Update(o *domain.Organization) error {
	res, err := r.db.Exec(`
		UPDATE organizations SET name=?, description=?, website=?, location=?, updated_at=CURRENT_TIMESTAMP
		WHERE id=?`, o.Name, o.Description, o.Website, o.Location, o.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoRows
	}
	return nil
}

func (r *OrgRepo) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM organizations WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoRows
	}
	return nil
}
