package usecase

import (
	"context"

	"recruiterconnect-backend/internal/domain"
)

// callerID extracts the authenticated user id threaded in by the auth
// middleware. Absence means the request carries no valid session.
func callerID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(domain.KeyUserID).(string)
	return id, ok && id != ""
}

func callerUserType(ctx context.Context) domain.UserType {
	t, _ := ctx.Value(domain.KeyUserType).(string)
	return domain.UserType(t)
}
