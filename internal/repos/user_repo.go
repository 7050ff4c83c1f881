package repos

import (
	"jobdesk/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

const userCols = `id,email,name,password_hash,role,verified,education,resume_link,COALESCE(created_at,'') AS created_at`

func (r *UserRepo) Create(u *domain.User) error {
	_, err := r.DB.Exec(`
		INSERT INTO users(id,email,name,password_hash,role,verified,education,resume_link)
		VALUES(?,?,?,?,?,?,?,?)`,
		u.ID, u.Email, u.Name, u.Hash, u.Role, u.Verified, u.Education, u.ResumeLink)
	return err
}

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT `+userCols+` FROM users WHERE LOWER(email)=LOWER(?)`, email)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT `+userCols+` FROM users WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) UpdateProfile(id, name, education, resumeLink string) error {
	_, err := r.DB.Exec(`
		UPDATE users SET name=?, education=?, resume_link=?, updated_at=CURRENT_TIMESTAMP
		WHERE id=?`, name, education, resumeLink, id)
	return err
}

// ToggleVerified flips the verification flag and returns the new value.
func (r *UserRepo) ToggleVerified(id string) (bool, error) {
	res, err := r.DB.Exec(`
		UPDATE users SET verified = 1-verified, updated_at=CURRENT_TIMESTAMP WHERE id=?`, id)
	if err != nil {
		return false, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return false, ErrNoRows
	}
	var v bool
	err = r.DB.Get(&v, `SELECT verified FROM users WHERE id=?`, id)
	return v, err
}

func (r *UserRepo) ListNonAdmin() ([]domain.User, error) {
	var out []domain.User
	err := r.DB.Select(&out, `SELECT `+userCols+` FROM users WHERE role != 'ADMIN' ORDER BY email`)
	return out, err
}

// DeleteCascade removes a user and everything hanging off it: their
// applications, and for employers the organization with its jobs (and in
// turn the applications to those jobs).
func (r *UserRepo) DeleteCascade(id string) error {
	tx, err := r.DB.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM applications WHERE applicant_id=?`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM applications WHERE job_id IN (SELECT id FROM jobs WHERE owner_id=?)`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM jobs WHERE owner_id=?`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM organizations WHERE owner_id=?`, id); err != nil {
		return err
	}
	res, err := tx.Exec(`DELETE FROM users WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoRows
	}

	return tx.Commit()
}
