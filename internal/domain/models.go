package domain

type Organization struct {
	ID          string `db:"id" json:"id"`
	OwnerID     string `db:"owner_id" json:"ownerId"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	Website     string `db:"website" json:"website,omitempty"`
	Location    string `db:"location" json:"location,omitempty"`
	CreatedAt   string `db:"created_at" json:"createdAt"`
	UpdatedAt   string `db:"updated_at" json:"updatedAt,omitempty"`
}

type Job struct {
	ID             string  `db:"id" json:"id"`
	OrgID          string  `db:"org_id" json:"orgId"`
	OwnerID        string  `db:"owner_id" json:"ownerId"`
	CategoryID     string  `db:"category_id" json:"categoryId,omitempty"`
	Title          string  `db:"title" json:"title"`
	Description    string  `db:"description" json:"description"`
	Salary         float64 `db:"salary" json:"salary"`
	EmploymentType string  `db:"employment_type" json:"employmentType"` // FULL_TIME | PART_TIME | CONTRACT | INTERNSHIP
	Level          string  `db:"level" json:"level"`                    // ENTRY | MID | SENIOR
	Skills         string  `db:"skills" json:"skills,omitempty"`       // comma separated tags
	CreatedAt      string  `db:"created_at" json:"createdAt"`
	UpdatedAt      string  `db:"updated_at" json:"updatedAt,omitempty"`
}

const (
	AppSubmitted   = "SUBMITTED"
	AppUnderReview = "UNDER_REVIEW"
	AppAccepted    = "ACCEPTED"
	AppRejected    = "REJECTED"
)

func ValidAppStatus(s string) bool {
	switch s {
	case AppSubmitted, AppUnderReview, AppAccepted, AppRejected:
		return true
	}
	return false
}

type JobApplication struct {
	ID          string `db:"id" json:"id"`
	JobID       string `db:"job_id" json:"jobId"`
	ApplicantID string `db:"applicant_id" json:"applicantId"`
	Status      string `db:"status" json:"status"`
	CoverLetter string `db:"cover_letter" json:"coverLetter,omitempty"`
	CreatedAt   string `db:"created_at" json:"createdAt"`
	UpdatedAt   string `db:"updated_at" json:"updatedAt,omitempty"`
}

type Category struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	ImageURL  string `db:"image_url" json:"imageUrl,omitempty"`
	CreatedAt string `db:"created_at" json:"createdAt"`
	UpdatedAt string `db:"updated_at" json:"updatedAt,omitempty"`
}
