package repos

import (
	"jobdesk/internal/domain"

	"github.com/jmoiron/sqlx"
)

type JobRepo struct{ db *sqlx.DB }

func NewJobRepo(db *sqlx.DB) *JobRepo { return &JobRepo{db: db} }

const jobCols = `id,org_id,owner_id,COALESCE(category_id,'') AS category_id,title,description,salary,employment_type,level,skills,COALESCE(created_at,'') AS created_at,COALESCE(updated_at,'') AS updated_at`

func (r *JobRepo) Create(j *domain.Job) error {
	var cat any
	if j.CategoryID != "" {
		cat = j.CategoryID
	}
	_, err := r.db.Exec(`
		INSERT INTO jobs(id,org_id,owner_id,category_id,title,description,salary,employment_type,level,skills)
		VALUES(?,?,?,?,?,?,?,?,?,?)`,
		j.ID, j.OrgID, j.OwnerID, cat, j.Title, j.Description, j.Salary, j.EmploymentType, j.Level, j.Skills)
	return err
}

func (r *JobRepo) ByID(id string) (*domain.Job, error) {
	var j domain.Job
	if err := r.db.Get(&j, `SELECT `+jobCols+` FROM jobs WHERE id=?`, id); err != nil {
		return nil, err
	}
	return &j, nil
}

// List returns jobs newest first, optionally filtered by category and/or org.
func (r *JobRepo) List(categoryID, orgID string, limit, offset int) ([]domain.Job, error) {
	q := `SELECT ` + jobCols + ` FROM jobs WHERE 1=1`
	args := []any{}
	if categoryID != "" {
		q += ` AND category_id=?`
		args = append(args, categoryID)
	}
	if orgID != "" {
		q += ` AND org_id=?`
		args = append(args, orgID)
	}
	q += ` ORDER BY created_at DESC LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	var out []domain.Job
	err := r.db.Select(&out, q, args...)
	return out, err
}

func (r *JobRepo) Update(j *domain.Job) error {
	var cat any
	if j.CategoryID != "" {
		cat = j.CategoryID
	}
	res, err := r.db.Exec(`
		UPDATE jobs SET category_id=?, title=?, description=?, salary=?, employment_type=?, level=?, skills=?, updated_at=CURRENT_TIMESTAMP
		WHERE id=?`, cat, j.Title, j.Description, j.Salary, j.EmploymentType, j.Level, j.Skills, j.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoRows
	}
	return nil
}

func (r *JobRepo) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM jobs WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoRows
	}
	return nil
}
