package domain

import (
	"context"
	"time"
)

// UserType gates which profile schema and authorization rules apply.
// It is assigned once during onboarding and is absent until then.
type UserType string

const (
	UserTypeApplicant UserType = "APPLICANT"
	UserTypeRecruiter UserType = "RECRUITER"
)

// ValidUserTypes returns all assignable user types.
func ValidUserTypes() []UserType {
	return []UserType{UserTypeApplicant, UserTypeRecruiter}
}

// IsValid checks if the user type is a recognized value.
func (t UserType) IsValid() bool {
	for _, valid := range ValidUserTypes() {
		if t == valid {
			return true
		}
	}
	return false
}

// User is the identity record. PasswordHash is nil for federated-only
// accounts; UserType is nil until onboarding completes.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash *string   `json:"-"`
	Name         *string   `json:"name,omitempty"`
	UserType     *UserType `json:"user_type,omitempty"`
	ImageURL     *string   `json:"image_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasType reports whether onboarding has assigned a user type.
func (u *User) HasType() bool {
	return u.UserType != nil && u.UserType.IsValid()
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateType(ctx context.Context, userID string, userType UserType) error
	// Delete removes the user row. Used as the compensating action when
	// post-registration profile setup fails.
	Delete(ctx context.Context, id string) error
}

// RegisterInput is the payload for credential registration.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	UserType string `json:"userType" validate:"required"`
	Name     string `json:"name" validate:"omitempty,max=120"`
}

// FederatedIdentity is a verified assertion from an external identity
// provider. The OAuth handshake itself happens upstream; by the time it
// reaches the core the subject and email are trusted.
type FederatedIdentity struct {
	Subject string `json:"subject" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Name    string `json:"name" validate:"omitempty,max=120"`
	Image   string `json:"image" validate:"omitempty,url"`
}

type AuthUsecase interface {
	// Register creates the user plus its empty profile row; the user is
	// deleted again if profile creation fails.
	Register(ctx context.Context, in *RegisterInput) (*User, error)
	// Authenticate verifies credentials only. It never mutates identity
	// state; pending type assignment is a separate onboarding call.
	Authenticate(ctx context.Context, email, password string) (*User, error)
	// EnsureFederatedUser creates a typeless user on first federated
	// sign-in and is a no-op afterwards.
	EnsureFederatedUser(ctx context.Context, identity *FederatedIdentity) (*User, error)
	GetCurrentUser(ctx context.Context, id string) (*User, error)
}
