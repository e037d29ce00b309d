package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"recruiterconnect-backend/internal/domain"
	"recruiterconnect-backend/pkg/apperror"
	"recruiterconnect-backend/pkg/logger"
	"recruiterconnect-backend/pkg/password"
	"recruiterconnect-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type authUsecase struct {
	userRepo      domain.UserRepository
	applicantRepo domain.ApplicantRepository
	recruiterRepo domain.RecruiterRepository
	validate      *validator.Validate
}

func NewAuthUsecase(
	userRepo domain.UserRepository,
	applicantRepo domain.ApplicantRepository,
	recruiterRepo domain.RecruiterRepository,
	validate *validator.Validate,
) domain.AuthUsecase {
	return &authUsecase{
		userRepo:      userRepo,
		applicantRepo: applicantRepo,
		recruiterRepo: recruiterRepo,
		validate:      validate,
	}
}

// Register creates the user record and its empty profile row. The two
// writes are separate top-level operations because the profile existence
// check needs the user id to exist first; if the second fails the user
// row is deleted again. A crash between the delete and the failure
// response can still leave an orphaned typeless user.
func (u *authUsecase) Register(ctx context.Context, in *domain.RegisterInput) (*domain.User, error) {
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	userType := domain.UserType(in.UserType)
	if !userType.IsValid() {
		return nil, apperror.BadRequest("Invalid user type: " + in.UserType)
	}

	existing, err := u.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.Conflict("User with this email already exists")
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		PasswordHash: &hash,
		UserType:     &userType,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.Name != "" {
		user.Name = &in.Name
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := u.ensureProfile(ctx, user.ID, userType); err != nil {
		// Compensating action: without its profile row the account is
		// unusable, so the user record is removed again.
		logger.Log.Error("profile creation failed after registration, deleting user",
			"user_id", user.ID, "user_type", string(userType), "error", err)
		if delErr := u.userRepo.Delete(ctx, user.ID); delErr != nil {
			logger.Log.Error("compensating user delete failed", "user_id", user.ID, "error", delErr)
		}
		return nil, apperror.New(http.StatusInternalServerError, "Error creating user profile. Please try again.", err)
	}

	return user, nil
}

// Authenticate verifies credentials and nothing else. Accounts created
// via a federated provider have no stored hash and cannot sign in with
// a password.
func (u *authUsecase) Authenticate(ctx context.Context, email, plainPassword string) (*domain.User, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil || user.PasswordHash == nil || !password.Verify(*user.PasswordHash, plainPassword) {
		return nil, apperror.Unauthorized("Invalid email or password")
	}
	return user, nil
}

// EnsureFederatedUser creates a typeless user on the first federated
// sign-in; later sign-ins resolve to the existing record.
func (u *authUsecase) EnsureFederatedUser(ctx context.Context, identity *domain.FederatedIdentity) (*domain.User, error) {
	if err := u.validate.Struct(identity); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	existing, err := u.userRepo.GetByEmail(ctx, identity.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return existing, nil
	}

	now := time.Now()
	user := &domain.User{
		ID:        uuid.NewString(),
		Email:     identity.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if identity.Name != "" {
		user.Name = &identity.Name
	}
	if identity.Image != "" {
		user.ImageURL = &identity.Image
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}

func (u *authUsecase) ensureProfile(ctx context.Context, userID string, userType domain.UserType) error {
	switch userType {
	case domain.UserTypeRecruiter:
		return u.recruiterRepo.EnsureExists(ctx, userID)
	default:
		return u.applicantRepo.EnsureExists(ctx, userID)
	}
}
