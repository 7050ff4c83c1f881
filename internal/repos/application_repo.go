package repos

import (
	"jobdesk/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ApplicationRepo struct{ db *sqlx.DB }

func NewApplicationRepo(db *sqlx.DB) *ApplicationRepo { return &ApplicationRepo{db: db} }

const appCols = `id,job_id,applicant_id,status,cover_letter,COALESCE(created_at,'') AS created_at,COALESCE(updated_at,'') AS updated_at`

func (r *ApplicationRepo) Create(a *domain.JobApplication) error {
	_, err := r.db.Exec(`
		INSERT INTO applications(id,job_id,applicant_id,status,cover_letter)
		VALUES(?,?,?,?,?)`,
		a.ID, a.JobID, a.ApplicantID, a.Status, a.CoverLetter)
	return err
}

func (r *ApplicationRepo) ByID(id string) (*domain.JobApplication, error) {
	var a domain.JobApplication
	if err := r.db.Get(&a, `SELECT `+appCols+` FROM applications WHERE id=?`, id); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ApplicationRepo) ListByApplicant(applicantID string) ([]domain.JobApplication, error) {
	var out []domain.JobApplication
	err := r.db.Select(&out, `SELECT `+appCols+` FROM applications WHERE applicant_id=? ORDER BY created_at DESC`, applicantID)
	return out, err
}

func (r *ApplicationRepo) ListByJob(jobID string) ([]domain.JobApplication, error) {
	var out []domain.JobApplication
	err := r.db.Select(&out, `SELECT `+appCols+` FROM applications WHERE job_id=? ORDER BY created_at DESC`, jobID)
	return out, err
}

func (r *ApplicationRepo) UpdateStatus(id, status string) error {
	res, err := r.db.Exec(`
		UPDATE applications SET status=?, updated_at=CURRENT_TIMESTAMP WHERE id=?`, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoRows
	}
	return nil
}
