package usecase

import (
	"context"

	"recruiterconnect-backend/internal/domain"
	"recruiterconnect-backend/pkg/apperror"
)

type onboardingUsecase struct {
	userRepo      domain.UserRepository
	applicantRepo domain.ApplicantRepository
	recruiterRepo domain.RecruiterRepository
}

func NewOnboardingUsecase(
	userRepo domain.UserRepository,
	applicantRepo domain.ApplicantRepository,
	recruiterRepo domain.RecruiterRepository,
) domain.OnboardingUsecase {
	return &onboardingUsecase{
		userRepo:      userRepo,
		applicantRepo: applicantRepo,
		recruiterRepo: recruiterRepo,
	}
}

// AssignUserType performs the AUTHENTICATED_NO_TYPE transition: set the
// type once and create the matching empty profile row. Re-entrant for
// the same type; a different type once one is set is rejected rather
// than silently rewriting the account.
func (u *onboardingUsecase) AssignUserType(ctx context.Context, userID string, userType string) error {
	ctxUserID, ok := callerID(ctx)
	if !ok {
		return apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		return apperror.Forbidden("You can only set your own account type")
	}

	t := domain.UserType(userType)
	if !t.IsValid() {
		return apperror.BadRequest("Invalid user type: " + userType)
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return apperror.Internal(err)
	}
	if user == nil {
		return apperror.NotFound("User not found")
	}

	if user.HasType() {
		if *user.UserType == t {
			// No-op on repeat, but make sure the profile row exists in
			// case an earlier attempt failed between the two writes.
			return u.ensureProfile(ctx, userID, t)
		}
		return apperror.Conflict("Account type is already set to " + string(*user.UserType))
	}

	if err := u.userRepo.UpdateType(ctx, userID, t); err != nil {
		return err
	}
	if err := u.ensureProfile(ctx, userID, t); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// CurrentState resolves where the user sits in the onboarding flow.
func (u *onboardingUsecase) CurrentState(ctx context.Context, userID string) (domain.OnboardingState, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return domain.StateAnonymous, apperror.Internal(err)
	}
	if user == nil {
		return domain.StateAnonymous, nil
	}
	if !user.HasType() {
		return domain.ResolveOnboardingState(user, false), nil
	}

	complete := false
	switch *user.UserType {
	case domain.UserTypeRecruiter:
		profile, err := u.recruiterRepo.GetByUserID(ctx, userID)
		if err != nil {
			return domain.StateAnonymous, apperror.Internal(err)
		}
		complete = profile.IsComplete()
	default:
		profile, err := u.applicantRepo.GetByUserID(ctx, userID)
		if err != nil {
			return domain.StateAnonymous, apperror.Internal(err)
		}
		complete = profile.IsComplete()
	}

	return domain.ResolveOnboardingState(user, complete), nil
}

func (u *onboardingUsecase) ensureProfile(ctx context.Context, userID string, userType domain.UserType) error {
	switch userType {
	case domain.UserTypeRecruiter:
		return u.recruiterRepo.EnsureExists(ctx, userID)
	default:
		return u.applicantRepo.EnsureExists(ctx, userID)
	}
}
