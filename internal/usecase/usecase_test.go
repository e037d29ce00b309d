package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"recruiterconnect-backend/internal/domain"
	"recruiterconnect-backend/internal/usecase"
	"recruiterconnect-backend/pkg/apperror"
	"recruiterconnect-backend/pkg/logger"
	"recruiterconnect-backend/pkg/password"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.Init()
	m.Run()
}

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) UpdateType(ctx context.Context, userID string, userType domain.UserType) error {
	return m.Called(ctx, userID, userType).Error(0)
}
func (m *MockUserRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockApplicantRepo struct {
	mock.Mock
}

func (m *MockApplicantRepo) EnsureExists(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}
func (m *MockApplicantRepo) GetByUserID(ctx context.Context, userID string) (*domain.ApplicantProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplicantProfile), args.Error(1)
}
func (m *MockApplicantRepo) Upsert(ctx context.Context, userID string, in *domain.ApplicantProfileInput, resumeURL *string) error {
	return m.Called(ctx, userID, in, resumeURL).Error(0)
}

type MockRecruiterRepo struct {
	mock.Mock
}

func (m *MockRecruiterRepo) EnsureExists(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}
func (m *MockRecruiterRepo) GetByUserID(ctx context.Context, userID string) (*domain.RecruiterProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecruiterProfile), args.Error(1)
}
func (m *MockRecruiterRepo) Upsert(ctx context.Context, userID string, in *domain.RecruiterProfileInput, logoURL *string) error {
	return m.Called(ctx, userID, in, logoURL).Error(0)
}
func (m *MockRecruiterRepo) ListCards(ctx context.Context) ([]domain.RecruiterCard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecruiterCard), args.Error(1)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) List(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

// Helpers

func authedCtx(userID string, userType domain.UserType) context.Context {
	ctx := context.WithValue(context.Background(), domain.KeyUserID, userID)
	return context.WithValue(ctx, domain.KeyUserType, string(userType))
}

func typedUser(id string, t domain.UserType) *domain.User {
	return &domain.User{ID: id, Email: id + "@example.com", UserType: &t}
}

func statusCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	return appErr.Code
}

func newAuthFixture() (*MockUserRepo, *MockApplicantRepo, *MockRecruiterRepo, domain.AuthUsecase) {
	userRepo := new(MockUserRepo)
	applicantRepo := new(MockApplicantRepo)
	recruiterRepo := new(MockRecruiterRepo)
	uc := usecase.NewAuthUsecase(userRepo, applicantRepo, recruiterRepo, validator.New())
	return userRepo, applicantRepo, recruiterRepo, uc
}

func TestRegister(t *testing.T) {
	t.Run("Should create user and empty applicant profile", func(t *testing.T) {
		userRepo, applicantRepo, _, uc := newAuthFixture()

		userRepo.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, nil)
		userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
		applicantRepo.On("EnsureExists", mock.Anything, mock.Anything).Return(nil)

		user, err := uc.Register(context.Background(), &domain.RegisterInput{
			Email:    "new@example.com",
			Password: "secret-password",
			UserType: "APPLICANT",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, domain.UserTypeApplicant, *user.UserType)
		assert.NotNil(t, user.PasswordHash)
		assert.True(t, password.Verify(*user.PasswordHash, "secret-password"))
		userRepo.AssertExpectations(t)
		applicantRepo.AssertExpectations(t)
	})

	t.Run("Should create recruiter profile for recruiter registrations", func(t *testing.T) {
		userRepo, _, recruiterRepo, uc := newAuthFixture()

		userRepo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, nil)
		userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
		recruiterRepo.On("EnsureExists", mock.Anything, mock.Anything).Return(nil)

		user, err := uc.Register(context.Background(), &domain.RegisterInput{
			Email:    "hire@example.com",
			Password: "secret-password",
			UserType: "RECRUITER",
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.UserTypeRecruiter, *user.UserType)
		recruiterRepo.AssertExpectations(t)
	})

	t.Run("Should reject duplicate email with conflict", func(t *testing.T) {
		userRepo, _, _, uc := newAuthFixture()

		userRepo.On("GetByEmail", mock.Anything, "taken@example.com").
			Return(typedUser("existing", domain.UserTypeApplicant), nil)

		_, err := uc.Register(context.Background(), &domain.RegisterInput{
			Email:    "taken@example.com",
			Password: "secret-password",
			UserType: "APPLICANT",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, statusCode(t, err))
		assert.Contains(t, err.Error(), "already exists")
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reject invalid user type", func(t *testing.T) {
		_, _, _, uc := newAuthFixture()

		_, err := uc.Register(context.Background(), &domain.RegisterInput{
			Email:    "new@example.com",
			Password: "secret-password",
			UserType: "ADMIN",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, statusCode(t, err))
	})

	t.Run("Should reject short password before any write", func(t *testing.T) {
		userRepo, _, _, uc := newAuthFixture()

		_, err := uc.Register(context.Background(), &domain.RegisterInput{
			Email:    "new@example.com",
			Password: "short",
			UserType: "APPLICANT",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, statusCode(t, err))
		userRepo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	})

	t.Run("Should delete the user when profile creation fails", func(t *testing.T) {
		userRepo, applicantRepo, _, uc := newAuthFixture()

		userRepo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, nil)
		userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
		applicantRepo.On("EnsureExists", mock.Anything, mock.Anything).Return(errors.New("db down"))
		userRepo.On("Delete", mock.Anything, mock.Anything).Return(nil)

		_, err := uc.Register(context.Background(), &domain.RegisterInput{
			Email:    "new@example.com",
			Password: "secret-password",
			UserType: "APPLICANT",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, statusCode(t, err))
		assert.Contains(t, err.Error(), "Error creating user profile")
		userRepo.AssertCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestAuthenticate(t *testing.T) {
	hash, _ := password.Hash("correct-password")

	t.Run("Should return user on valid credentials", func(t *testing.T) {
		userRepo, _, _, uc := newAuthFixture()
		stored := typedUser("user1", domain.UserTypeApplicant)
		stored.PasswordHash = &hash

		userRepo.On("GetByEmail", mock.Anything, stored.Email).Return(stored, nil)

		user, err := uc.Authenticate(context.Background(), stored.Email, "correct-password")
		assert.NoError(t, err)
		assert.Equal(t, "user1", user.ID)
	})

	t.Run("Should reject wrong password without mutating anything", func(t *testing.T) {
		userRepo, _, _, uc := newAuthFixture()
		stored := typedUser("user1", domain.UserTypeApplicant)
		stored.PasswordHash = &hash

		userRepo.On("GetByEmail", mock.Anything, stored.Email).Return(stored, nil)

		_, err := uc.Authenticate(context.Background(), stored.Email, "wrong-password")
		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, statusCode(t, err))
		assert.Contains(t, err.Error(), "Invalid email or password")
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Should reject unknown email with the same message", func(t *testing.T) {
		userRepo, _, _, uc := newAuthFixture()
		userRepo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, nil)

		_, err := uc.Authenticate(context.Background(), "nobody@example.com", "whatever")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid email or password")
	})

	t.Run("Should reject password sign-in for federated-only accounts", func(t *testing.T) {
		userRepo, _, _, uc := newAuthFixture()
		stored := typedUser("user1", domain.UserTypeApplicant)
		stored.PasswordHash = nil

		userRepo.On("GetByEmail", mock.Anything, stored.Email).Return(stored, nil)

		_, err := uc.Authenticate(context.Background(), stored.Email, "anything")
		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, statusCode(t, err))
	})
}

func TestEnsureFederatedUser(t *testing.T) {
	identity := &domain.FederatedIdentity{
		Subject: "google|abc123",
		Email:   "fed@example.com",
		Name:    "Fed User",
	}

	t.Run("Should create a typeless user on first sign-in", func(t *testing.T) {
		userRepo, _, _, uc := newAuthFixture()
		userRepo.On("GetByEmail", mock.Anything, identity.Email).Return(nil, nil)
		userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		user, err := uc.EnsureFederatedUser(context.Background(), identity)
		assert.NoError(t, err)
		assert.Nil(t, user.UserType)
		assert.Nil(t, user.PasswordHash)
		assert.Equal(t, "Fed User", *user.Name)
		userRepo.AssertExpectations(t)
	})

	t.Run("Should resolve to the existing user on repeat sign-in", func(t *testing.T) {
		userRepo, _, _, uc := newAuthFixture()
		existing := typedUser("user1", domain.UserTypeApplicant)
		existing.Email = identity.Email
		userRepo.On("GetByEmail", mock.Anything, identity.Email).Return(existing, nil)

		user, err := uc.EnsureFederatedUser(context.Background(), identity)
		assert.NoError(t, err)
		assert.Equal(t, "user1", user.ID)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func newOnboardingFixture() (*MockUserRepo, *MockApplicantRepo, *MockRecruiterRepo, domain.OnboardingUsecase) {
	userRepo := new(MockUserRepo)
	applicantRepo := new(MockApplicantRepo)
	recruiterRepo := new(MockRecruiterRepo)
	uc := usecase.NewOnboardingUsecase(userRepo, applicantRepo, recruiterRepo)
	return userRepo, applicantRepo, recruiterRepo, uc
}

func TestAssignUserType(t *testing.T) {
	t.Run("Should fail safely without a session", func(t *testing.T) {
		_, _, _, uc := newOnboardingFixture()
		err := uc.AssignUserType(context.Background(), "user1", "APPLICANT")
		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, statusCode(t, err))
	})

	t.Run("Should fail when caller targets another user", func(t *testing.T) {
		_, _, _, uc := newOnboardingFixture()
		ctx := authedCtx("user1", "")
		err := uc.AssignUserType(ctx, "user2", "APPLICANT")
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusCode(t, err))
	})

	t.Run("Should set type and create the empty profile row", func(t *testing.T) {
		userRepo, applicantRepo, _, uc := newOnboardingFixture()
		ctx := authedCtx("user1", "")

		typeless := &domain.User{ID: "user1", Email: "u@example.com"}
		userRepo.On("GetByID", mock.Anything, "user1").Return(typeless, nil)
		userRepo.On("UpdateType", mock.Anything, "user1", domain.UserTypeApplicant).Return(nil)
		applicantRepo.On("EnsureExists", mock.Anything, "user1").Return(nil)

		err := uc.AssignUserType(ctx, "user1", "APPLICANT")
		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
		applicantRepo.AssertExpectations(t)
	})

	t.Run("Should be a no-op when re-assigning the same type", func(t *testing.T) {
		userRepo, applicantRepo, _, uc := newOnboardingFixture()
		ctx := authedCtx("user1", "APPLICANT")

		userRepo.On("GetByID", mock.Anything, "user1").
			Return(typedUser("user1", domain.UserTypeApplicant), nil)
		applicantRepo.On("EnsureExists", mock.Anything, "user1").Return(nil)

		err := uc.AssignUserType(ctx, "user1", "APPLICANT")
		assert.NoError(t, err)
		userRepo.AssertNotCalled(t, "UpdateType", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should reject switching to a different type", func(t *testing.T) {
		userRepo, _, _, uc := newOnboardingFixture()
		ctx := authedCtx("user1", "APPLICANT")

		userRepo.On("GetByID", mock.Anything, "user1").
			Return(typedUser("user1", domain.UserTypeApplicant), nil)

		err := uc.AssignUserType(ctx, "user1", "RECRUITER")
		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, statusCode(t, err))
		userRepo.AssertNotCalled(t, "UpdateType", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should reject unknown type values", func(t *testing.T) {
		_, _, _, uc := newOnboardingFixture()
		ctx := authedCtx("user1", "")
		err := uc.AssignUserType(ctx, "user1", "WIZARD")
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, statusCode(t, err))
	})
}

func TestCurrentState(t *testing.T) {
	t.Run("Should report anonymous for unknown users", func(t *testing.T) {
		userRepo, _, _, uc := newOnboardingFixture()
		userRepo.On("GetByID", mock.Anything, "ghost").Return(nil, nil)

		state, err := uc.CurrentState(context.Background(), "ghost")
		assert.NoError(t, err)
		assert.Equal(t, domain.StateAnonymous, state)
	})

	t.Run("Should report no-type before onboarding", func(t *testing.T) {
		userRepo, _, _, uc := newOnboardingFixture()
		userRepo.On("GetByID", mock.Anything, "user1").
			Return(&domain.User{ID: "user1", Email: "u@example.com"}, nil)

		state, err := uc.CurrentState(context.Background(), "user1")
		assert.NoError(t, err)
		assert.Equal(t, domain.StateNoType, state)
	})

	t.Run("Should treat an untouched profile row as incomplete", func(t *testing.T) {
		userRepo, applicantRepo, _, uc := newOnboardingFixture()
		userRepo.On("GetByID", mock.Anything, "user1").
			Return(typedUser("user1", domain.UserTypeApplicant), nil)
		applicantRepo.On("GetByUserID", mock.Anything, "user1").
			Return(&domain.ApplicantProfile{UserID: "user1"}, nil)

		state, err := uc.CurrentState(context.Background(), "user1")
		assert.NoError(t, err)
		assert.Equal(t, domain.StateTypedNoProfile, state)
	})

	t.Run("Should report complete once the profile is filled in", func(t *testing.T) {
		userRepo, _, recruiterRepo, uc := newOnboardingFixture()
		userRepo.On("GetByID", mock.Anything, "user1").
			Return(typedUser("user1", domain.UserTypeRecruiter), nil)
		recruiterRepo.On("GetByUserID", mock.Anything, "user1").
			Return(&domain.RecruiterProfile{UserID: "user1", CompanyName: "Acme"}, nil)

		state, err := uc.CurrentState(context.Background(), "user1")
		assert.NoError(t, err)
		assert.Equal(t, domain.StateTypedWithProfile, state)
	})
}

func newApplicantFixture() (*MockApplicantRepo, *MockUserRepo, domain.ApplicantUsecase) {
	repo := new(MockApplicantRepo)
	userRepo := new(MockUserRepo)
	uc := usecase.NewApplicantUsecase(repo, userRepo, nil, validator.New())
	return repo, userRepo, uc
}

func TestApplicantProfileVisibility(t *testing.T) {
	profile := &domain.ApplicantProfile{UserID: "owner", Headline: "Engineer"}

	t.Run("Should allow the owner", func(t *testing.T) {
		repo, userRepo, uc := newApplicantFixture()
		userRepo.On("GetByID", mock.Anything, "owner").
			Return(typedUser("owner", domain.UserTypeApplicant), nil)
		repo.On("GetByUserID", mock.Anything, "owner").Return(profile, nil)

		got, err := uc.GetProfile(authedCtx("owner", domain.UserTypeApplicant), "owner")
		assert.NoError(t, err)
		assert.Equal(t, "owner", got.UserID)
	})

	t.Run("Should allow any recruiter", func(t *testing.T) {
		repo, userRepo, uc := newApplicantFixture()
		userRepo.On("GetByID", mock.Anything, "owner").
			Return(typedUser("owner", domain.UserTypeApplicant), nil)
		repo.On("GetByUserID", mock.Anything, "owner").Return(profile, nil)

		got, err := uc.GetProfile(authedCtx("third-party", domain.UserTypeRecruiter), "owner")
		assert.NoError(t, err)
		assert.Equal(t, "owner", got.UserID)
	})

	t.Run("Should forbid other applicants", func(t *testing.T) {
		repo, _, uc := newApplicantFixture()

		_, err := uc.GetProfile(authedCtx("third-party", domain.UserTypeApplicant), "owner")
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusCode(t, err))
		repo.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything)
	})

	t.Run("Should fail safely without a session", func(t *testing.T) {
		_, _, uc := newApplicantFixture()
		_, err := uc.GetProfile(context.Background(), "owner")
		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, statusCode(t, err))
	})

	t.Run("Should return an untouched profile row as-is", func(t *testing.T) {
		repo, userRepo, uc := newApplicantFixture()
		userRepo.On("GetByID", mock.Anything, "owner").
			Return(typedUser("owner", domain.UserTypeApplicant), nil)
		repo.On("GetByUserID", mock.Anything, "owner").
			Return(&domain.ApplicantProfile{UserID: "owner", Skills: []string{}}, nil)

		got, err := uc.GetProfile(authedCtx("owner", domain.UserTypeApplicant), "owner")
		assert.NoError(t, err)
		assert.Empty(t, got.Headline)
	})

	t.Run("Should return 404 when the row is missing", func(t *testing.T) {
		repo, userRepo, uc := newApplicantFixture()
		userRepo.On("GetByID", mock.Anything, "owner").
			Return(typedUser("owner", domain.UserTypeApplicant), nil)
		repo.On("GetByUserID", mock.Anything, "owner").Return(nil, nil)

		_, err := uc.GetProfile(authedCtx("owner", domain.UserTypeApplicant), "owner")
		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, statusCode(t, err))
	})
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestApplicantSaveProfile(t *testing.T) {
	owner := typedUser("owner", domain.UserTypeApplicant)

	t.Run("Should deduplicate skills keeping first occurrence", func(t *testing.T) {
		repo, userRepo, uc := newApplicantFixture()
		userRepo.On("GetByID", mock.Anything, "owner").Return(owner, nil)

		var savedSkills []string
		repo.On("Upsert", mock.Anything, "owner", mock.Anything, (*string)(nil)).
			Run(func(args mock.Arguments) {
				savedSkills = args.Get(2).(*domain.ApplicantProfileInput).Skills
			}).Return(nil)
		repo.On("GetByUserID", mock.Anything, "owner").
			Return(&domain.ApplicantProfile{UserID: "owner"}, nil)

		in := &domain.ApplicantProfileInput{
			Headline: strPtr("Engineer"),
			Skills:   []string{"Go", "Go", "Rust"},
		}
		_, err := uc.SaveProfile(authedCtx("owner", domain.UserTypeApplicant), "owner", in, nil)
		assert.NoError(t, err)
		assert.Equal(t, []string{"Go", "Rust"}, savedSkills)
	})

	t.Run("Should persist an empty skill list as full replacement", func(t *testing.T) {
		repo, userRepo, uc := newApplicantFixture()
		userRepo.On("GetByID", mock.Anything, "owner").Return(owner, nil)

		var savedSkills []string
		repo.On("Upsert", mock.Anything, "owner", mock.Anything, (*string)(nil)).
			Run(func(args mock.Arguments) {
				savedSkills = args.Get(2).(*domain.ApplicantProfileInput).Skills
			}).Return(nil)
		repo.On("GetByUserID", mock.Anything, "owner").
			Return(&domain.ApplicantProfile{UserID: "owner"}, nil)

		in := &domain.ApplicantProfileInput{Skills: []string{}}
		_, err := uc.SaveProfile(authedCtx("owner", domain.UserTypeApplicant), "owner", in, nil)
		assert.NoError(t, err)
		assert.Empty(t, savedSkills)
		repo.AssertCalled(t, "Upsert", mock.Anything, "owner", mock.Anything, (*string)(nil))
	})

	t.Run("Should reject a current education entry carrying an end year", func(t *testing.T) {
		repo, userRepo, uc := newApplicantFixture()
		userRepo.On("GetByID", mock.Anything, "owner").Return(owner, nil)

		in := &domain.ApplicantProfileInput{
			Education: []domain.EducationEntry{{
				Institution:  "MIT",
				Degree:       "BSc",
				FieldOfStudy: "CS",
				FromYear:     2018,
				ToYear:       intPtr(2022),
				IsCurrent:    true,
			}},
		}
		_, err := uc.SaveProfile(authedCtx("owner", domain.UserTypeApplicant), "owner", in, nil)
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, statusCode(t, err))
		assert.Contains(t, err.Error(), "End Year")
		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should reject an end year before the start year", func(t *testing.T) {
		_, userRepo, uc := newApplicantFixture()
		userRepo.On("GetByID", mock.Anything, "owner").Return(owner, nil)

		in := &domain.ApplicantProfileInput{
			Education: []domain.EducationEntry{{
				Institution:  "MIT",
				Degree:       "BSc",
				FieldOfStudy: "CS",
				FromYear:     2020,
				ToYear:       intPtr(2018),
			}},
		}
		_, err := uc.SaveProfile(authedCtx("owner", domain.UserTypeApplicant), "owner", in, nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not be before Start Year")
	})

	t.Run("Should forbid saving someone else's profile, recruiters included", func(t *testing.T) {
		repo, _, uc := newApplicantFixture()

		in := &domain.ApplicantProfileInput{Headline: strPtr("Hijacked")}
		_, err := uc.SaveProfile(authedCtx("attacker", domain.UserTypeRecruiter), "owner", in, nil)
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusCode(t, err))
		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should fail safely without a session and touch nothing", func(t *testing.T) {
		repo, userRepo, uc := newApplicantFixture()

		in := &domain.ApplicantProfileInput{Headline: strPtr("Engineer")}
		_, err := uc.SaveProfile(context.Background(), "owner", in, nil)
		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, statusCode(t, err))
		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Should reject out-of-range experience", func(t *testing.T) {
		_, userRepo, uc := newApplicantFixture()
		userRepo.On("GetByID", mock.Anything, "owner").Return(owner, nil)

		in := &domain.ApplicantProfileInput{YearsOfExperience: intPtr(99)}
		_, err := uc.SaveProfile(authedCtx("owner", domain.UserTypeApplicant), "owner", in, nil)
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, statusCode(t, err))
	})
}

func newRecruiterFixture() (*MockRecruiterRepo, *MockUserRepo, domain.RecruiterUsecase) {
	repo := new(MockRecruiterRepo)
	userRepo := new(MockUserRepo)
	uc := usecase.NewRecruiterUsecase(repo, userRepo, nil, validator.New())
	return repo, userRepo, uc
}

func TestRecruiterProfileAccess(t *testing.T) {
	owner := typedUser("owner", domain.UserTypeRecruiter)

	t.Run("Should be owner-only even for other recruiters", func(t *testing.T) {
		repo, _, uc := newRecruiterFixture()

		_, err := uc.GetProfile(authedCtx("third-party", domain.UserTypeRecruiter), "owner")
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusCode(t, err))
		repo.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything)
	})

	t.Run("Should deduplicate specializations on save", func(t *testing.T) {
		repo, userRepo, uc := newRecruiterFixture()
		userRepo.On("GetByID", mock.Anything, "owner").Return(owner, nil)

		var saved []string
		repo.On("Upsert", mock.Anything, "owner", mock.Anything, (*string)(nil)).
			Run(func(args mock.Arguments) {
				saved = args.Get(2).(*domain.RecruiterProfileInput).Specializations
			}).Return(nil)
		repo.On("GetByUserID", mock.Anything, "owner").
			Return(&domain.RecruiterProfile{UserID: "owner"}, nil)

		in := &domain.RecruiterProfileInput{
			CompanyName:     strPtr("Acme"),
			Specializations: []string{"Tech", "Tech", "Finance"},
		}
		_, err := uc.SaveProfile(authedCtx("owner", domain.UserTypeRecruiter), "owner", in, nil)
		assert.NoError(t, err)
		assert.Equal(t, []string{"Tech", "Finance"}, saved)
	})

	t.Run("Should reject an invalid company size bucket", func(t *testing.T) {
		_, userRepo, uc := newRecruiterFixture()
		userRepo.On("GetByID", mock.Anything, "owner").Return(owner, nil)

		in := &domain.RecruiterProfileInput{CompanySize: strPtr("5000")}
		_, err := uc.SaveProfile(authedCtx("owner", domain.UserTypeRecruiter), "owner", in, nil)
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, statusCode(t, err))
	})
}

func TestListings(t *testing.T) {
	t.Run("Should list jobs without a session", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)
		jobRepo.On("List", mock.Anything).Return([]domain.Job{{ID: 1, Title: "Engineer"}}, nil)

		jobs, err := uc.ListJobs(context.Background())
		assert.NoError(t, err)
		assert.Len(t, jobs, 1)
	})

	t.Run("Should list recruiter cards without a session", func(t *testing.T) {
		repo, _, uc := newRecruiterFixture()
		repo.On("ListCards", mock.Anything).
			Return([]domain.RecruiterCard{{UserID: "r1", CompanyName: "Acme"}}, nil)

		cards, err := uc.ListRecruiters(context.Background())
		assert.NoError(t, err)
		assert.Len(t, cards, 1)
	})
}
