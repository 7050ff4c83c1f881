package domain

const (
	RoleJobseeker = "JOBSEEKER"
	RoleEmployer  = "EMPLOYER"
	RoleAdmin     = "ADMIN"
)

// ValidRole reports whether s is a role a client may register with.
// ADMIN is excluded: admins are seeded or promoted, never self-registered.
func ValidRole(s string) bool {
	return s == RoleJobseeker || s == RoleEmployer
}

type User struct {
	ID         string `db:"id"`
	Email      string `db:"email"`
	Name       string `db:"name"`
	Hash       string `db:"password_hash"`
	Role       string `db:"role"`
	Verified   bool   `db:"verified"`
	Education  string `db:"education"`
	ResumeLink string `db:"resume_link"`
	CreatedAt  string `db:"created_at"`
}

// PublicUser is the response shape for a User. The password digest
// never leaves the service in any body.
type PublicUser struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Verified   bool   `json:"verified"`
	Education  string `json:"education,omitempty"`
	ResumeLink string `json:"resumeLink,omitempty"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       u.Role,
		Verified:   u.Verified,
		Education:  u.Education,
		ResumeLink: u.ResumeLink,
	}
}
