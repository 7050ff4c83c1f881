package repos

import (
	"jobdesk/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CategoryRepo struct{ db *sqlx.DB }

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{db: db} }

const catCols = `id,name,image_url,COALESCE(created_at,'') AS created_at,COALESCE(updated_at,'') AS updated_at`

func (r *CategoryRepo) List() ([]domain.Category, error) {
	var out []domain.Category
	err := r.db.Select(&out, `SELECT `+catCols+` FROM categories ORDER BY name`)
	return out, err
}

func (r *CategoryRepo) ByID(id string) (*domain.Category, error) {
	var c domain.Category
	if err := r.db.Get(&c, `SELECT `+catCols+` FROM categories WHERE id=?`, id); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepo) Create(c *domain.Category) error {
	_, err := r.db.Exec(`INSERT INTO categories(id,name,image_url) VALUES(?,?,?)`, c.ID, c.Name, c.ImageURL)
	return err
}

func (r *CategoryRepo) Update(c *domain.Category) error {
	res, err := r.db.Exec(`
		UPDATE categories SET name=?, image_url=?, updated_at=CURRENT_TIMESTAMP WHERE id=?`,
		c.Name, c.ImageURL, c.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoRows
	}
	return nil
}

func (r *CategoryRepo) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM categories WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoRows
	}
	return nil
}
