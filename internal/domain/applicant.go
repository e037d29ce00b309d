package domain

import (
	"context"
	"time"
)

// EducationEntry is owned by an applicant profile and has no identity
// outside it. If IsCurrent is set, ToYear must be absent.
type EducationEntry struct {
	ID           int64  `json:"id,omitempty"`
	Institution  string `json:"institution" validate:"required,max=200"`
	Degree       string `json:"degree" validate:"required,max=200"`
	FieldOfStudy string `json:"fieldOfStudy" validate:"required,max=200"`
	FromYear     int    `json:"fromYear" validate:"required,gte=1900,lte=2100"`
	ToYear       *int   `json:"toYear,omitempty" validate:"omitempty,gte=1900,lte=2100"`
	IsCurrent    bool   `json:"isCurrent"`
}

// ApplicantProfile is the read model: child collections flattened
// (skills reduced to names) and the owner's display fields merged in.
type ApplicantProfile struct {
	ID                int64            `json:"id"`
	UserID            string           `json:"user_id"`
	Headline          string           `json:"headline"`
	Bio               string           `json:"bio"`
	YearsOfExperience int              `json:"yearsOfExperience"`
	JobTitle          string           `json:"jobTitle"`
	Location          string           `json:"location"`
	ResumeURL         *string          `json:"resumeUrl,omitempty"`
	Skills            []string         `json:"skills"`
	Education         []EducationEntry `json:"education"`
	Name              *string          `json:"name,omitempty"`
	Email             string           `json:"email"`
	Image             *string          `json:"image,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// IsComplete reports whether the profile has been filled in beyond the
// empty row created at registration. Row presence alone does not count.
func (p *ApplicantProfile) IsComplete() bool {
	return p != nil && p.Headline != ""
}

// ApplicantProfileInput is the save payload. Scalar fields are pointers:
// absent fields leave the stored value unchanged on update.
type ApplicantProfileInput struct {
	Headline          *string          `json:"headline" validate:"omitempty,max=120"`
	Bio               *string          `json:"bio" validate:"omitempty,max=500"`
	YearsOfExperience *int             `json:"yearsOfExperience" validate:"omitempty,gte=0,lte=50"`
	JobTitle          *string          `json:"jobTitle" validate:"omitempty,max=120"`
	Location          *string          `json:"location" validate:"omitempty,max=120"`
	Skills            []string         `json:"skills" validate:"dive,required,max=60"`
	Education         []EducationEntry `json:"education" validate:"dive"`
}

type ApplicantRepository interface {
	// EnsureExists creates an empty profile row if absent. Idempotent,
	// never overwrites an existing row.
	EnsureExists(ctx context.Context, userID string) error
	// GetByUserID returns the profile with children and owner display
	// fields, or nil when the row is absent.
	GetByUserID(ctx context.Context, userID string) (*ApplicantProfile, error)
	// Upsert applies the input in a single transaction: scalar upsert,
	// then full replacement of the skill and education collections.
	Upsert(ctx context.Context, userID string, in *ApplicantProfileInput, resumeURL *string) error
}

// FileUpload carries a submitted blob (resume, logo) into the core.
type FileUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

type ApplicantUsecase interface {
	// GetProfile is visible to the owner and to any recruiter.
	GetProfile(ctx context.Context, targetUserID string) (*ApplicantProfile, error)
	// SaveProfile is owner-only. An optional resume upload is validated,
	// stored, and its URL written with the same save.
	SaveProfile(ctx context.Context, targetUserID string, in *ApplicantProfileInput, resume *FileUpload) (*ApplicantProfile, error)
}
