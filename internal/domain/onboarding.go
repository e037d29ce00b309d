package domain

import "context"

// OnboardingState describes how far a user has progressed from first
// sign-in to a usable account.
type OnboardingState string

const (
	StateAnonymous        OnboardingState = "ANONYMOUS"
	StateNoType           OnboardingState = "AUTHENTICATED_NO_TYPE"
	StateTypedNoProfile   OnboardingState = "AUTHENTICATED_TYPED_NO_PROFILE"
	StateTypedWithProfile OnboardingState = "AUTHENTICATED_TYPED_WITH_PROFILE"
)

// ResolveOnboardingState derives the state from the stored user record
// and whether the matching profile has been filled in. Pure function so
// the transitions stay testable without a request pipeline.
func ResolveOnboardingState(user *User, profileComplete bool) OnboardingState {
	switch {
	case user == nil:
		return StateAnonymous
	case !user.HasType():
		return StateNoType
	case !profileComplete:
		return StateTypedNoProfile
	default:
		return StateTypedWithProfile
	}
}

type OnboardingUsecase interface {
	// AssignUserType sets the user's type and idempotently creates the
	// matching empty profile row. Re-assigning the same type is a no-op;
	// assigning a different type once one is set is rejected.
	AssignUserType(ctx context.Context, userID string, userType string) error
	// CurrentState resolves the onboarding state for the given user.
	CurrentState(ctx context.Context, userID string) (OnboardingState, error)
}
