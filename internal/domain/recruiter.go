package domain

import (
	"context"
	"time"
)

// RecruiterProfile is the read model with specializations flattened to
// names and the owner's display fields merged in.
type RecruiterProfile struct {
	ID                 int64     `json:"id"`
	UserID             string    `json:"user_id"`
	CompanyName        string    `json:"companyName"`
	Position           string    `json:"position"`
	Industry           string    `json:"industry"`
	CompanySize        string    `json:"companySize"`
	CompanyDescription string    `json:"companyDescription"`
	CompanyWebsite     *string   `json:"companyWebsite,omitempty"`
	CompanyLocation    string    `json:"companyLocation"`
	PhoneNumber        *string   `json:"phoneNumber,omitempty"`
	LogoURL            *string   `json:"logoUrl,omitempty"`
	Specializations    []string  `json:"specializations"`
	Name               *string   `json:"name,omitempty"`
	Email              string    `json:"email"`
	Image              *string   `json:"image,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// IsComplete reports whether the profile has been filled in beyond the
// empty row created at registration.
func (p *RecruiterProfile) IsComplete() bool {
	return p != nil && p.CompanyName != ""
}

// RecruiterProfileInput is the save payload; absent scalar fields leave
// the stored value unchanged on update.
type RecruiterProfileInput struct {
	CompanyName        *string  `json:"companyName" validate:"omitempty,max=200"`
	Position           *string  `json:"position" validate:"omitempty,max=120"`
	Industry           *string  `json:"industry" validate:"omitempty,max=120"`
	CompanySize        *string  `json:"companySize" validate:"omitempty,oneof=1-10 11-50 51-200 201-500 501-1000 1000+"`
	CompanyDescription *string  `json:"companyDescription" validate:"omitempty,max=1000"`
	CompanyWebsite     *string  `json:"companyWebsite" validate:"omitempty,url"`
	CompanyLocation    *string  `json:"companyLocation" validate:"omitempty,max=120"`
	PhoneNumber        *string  `json:"phoneNumber" validate:"omitempty,min=7,max=20"`
	Specializations    []string `json:"specializations" validate:"dive,required,max=60"`
}

// RecruiterCard is the public directory entry.
type RecruiterCard struct {
	UserID          string   `json:"user_id"`
	CompanyName     string   `json:"companyName"`
	Industry        string   `json:"industry"`
	CompanyLocation string   `json:"companyLocation"`
	LogoURL         *string  `json:"logoUrl,omitempty"`
	Specializations []string `json:"specializations"`
}

type RecruiterRepository interface {
	EnsureExists(ctx context.Context, userID string) error
	GetByUserID(ctx context.Context, userID string) (*RecruiterProfile, error)
	Upsert(ctx context.Context, userID string, in *RecruiterProfileInput, logoURL *string) error
	// ListCards returns completed recruiter profiles for the public directory.
	ListCards(ctx context.Context) ([]RecruiterCard, error)
}

type RecruiterUsecase interface {
	// GetProfile is owner-only.
	GetProfile(ctx context.Context, targetUserID string) (*RecruiterProfile, error)
	SaveProfile(ctx context.Context, targetUserID string, in *RecruiterProfileInput, logo *FileUpload) (*RecruiterProfile, error)
	ListRecruiters(ctx context.Context) ([]RecruiterCard, error)
}
