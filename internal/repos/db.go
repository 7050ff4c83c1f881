package repos

import (
	"database/sql"
	"log"
	"strings"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

// ErrNoRows is returned when a lookup or targeted mutation matches nothing.
var ErrNoRows = sql.ErrNoRows

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// Single connection: the driver serializes writers instead of failing
	// with SQLITE_BUSY, so a racing duplicate insert reaches the unique
	// index and maps to a conflict. It also keeps ":memory:" databases
	// shared rather than one-per-pooled-connection.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed baseline data if DB is empty (admin account, categories)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

// IsUniqueViolation reports whether err is a sqlite UNIQUE constraint
// failure. The unique index is the authority for duplicate emails and
// duplicate applications; callers translate this into a conflict error.
func IsUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Users
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL CHECK (role IN ('JOBSEEKER','EMPLOYER','ADMIN')),
  verified INTEGER NOT NULL DEFAULT 0,
  education TEXT NOT NULL DEFAULT '',
  resume_link TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

-- Organizations (one per employer)
CREATE TABLE IF NOT EXISTS organizations(
  id TEXT PRIMARY KEY,
  owner_id TEXT NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  website TEXT NOT NULL DEFAULT '',
  location TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);

-- Categories
CREATE TABLE IF NOT EXISTS categories(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  image_url TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name_nocase ON categories(LOWER(name));

-- Jobs
CREATE TABLE IF NOT EXISTS jobs(
  id TEXT PRIMARY KEY,
  org_id TEXT NOT NULL REFERENCES organizations(id) ON DELETE CASCADE,
  owner_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  category_id TEXT REFERENCES categories(id) ON DELETE SET NULL,
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  salary NUMERIC NOT NULL DEFAULT 0 CHECK (salary >= 0),
  employment_type TEXT NOT NULL CHECK (employment_type IN ('FULL_TIME','PART_TIME','CONTRACT','INTERNSHIP')),
  level TEXT NOT NULL CHECK (level IN ('ENTRY','MID','SENIOR')),
  skills TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_jobs_org      ON jobs(org_id);
CREATE INDEX IF NOT EXISTS idx_jobs_category ON jobs(category_id);
CREATE INDEX IF NOT EXISTS idx_jobs_created  ON jobs(created_at);

-- Applications
CREATE TABLE IF NOT EXISTS applications(
  id TEXT PRIMARY KEY,
  job_id TEXT NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
  applicant_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  status TEXT NOT NULL DEFAULT 'SUBMITTED' CHECK (status IN ('SUBMITTED','UNDER_REVIEW','ACCEPTED','REJECTED')),
  cover_letter TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT,
  UNIQUE(job_id, applicant_id)
);
CREATE INDEX IF NOT EXISTS idx_applications_job       ON applications(job_id);
CREATE INDEX IF NOT EXISTS idx_applications_applicant ON applications(applicant_id);
`
	_, err := db.Exec(schema)
	return err
}

// seedIfEmpty inserts a bootstrap admin and a handful of categories.
// Idempotent; safe to run on every startup.
func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM users WHERE role='ADMIN'`); err != nil {
		return err
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	if n == 0 {
		log.Println("[seed] inserting bootstrap admin")
		h, err := bcrypt.GenerateFromPassword([]byte("ChangeMe!123"), 12)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(`
			INSERT INTO users(id,email,name,password_hash,role,verified)
			VALUES('u-admin','admin@jobdesk.test','Admin',?, 'ADMIN',1)
			ON CONFLICT(email) DO NOTHING
		`, string(h)); err != nil {
			return err
		}
	}

	cats := [][2]string{
		{"cat-engineering", "Engineering"},
		{"cat-design", "Design"},
		{"cat-marketing", "Marketing"},
		{"cat-operations", "Operations"},
	}
	for _, c := range cats {
		if _, err := tx.Exec(`
			INSERT INTO categories(id,name)
			SELECT ?, ?
			WHERE NOT EXISTS (SELECT 1 FROM categories WHERE id=?)
		`, c[0], c[1], c[0]); err != nil {
			return err
		}
	}

	return tx.Commit()
}
