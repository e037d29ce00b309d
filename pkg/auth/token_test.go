package auth_test

import (
	"testing"
	"time"

	"recruiterconnect-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	issued, err := tokens.Issue(auth.SessionClaims{
		UserID:   "user1",
		Email:    "u@example.com",
		UserType: "APPLICANT",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, issued)

	claims, err := tokens.Parse(issued)
	assert.NoError(t, err)
	assert.Equal(t, "user1", claims.UserID)
	assert.Equal(t, "u@example.com", claims.Email)
	assert.Equal(t, "APPLICANT", claims.UserType)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	issuer := auth.NewTokenManager("secret-a", time.Hour)
	verifier := auth.NewTokenManager("secret-b", time.Hour)

	issued, err := issuer.Issue(auth.SessionClaims{UserID: "user1"})
	assert.NoError(t, err)

	_, err = verifier.Parse(issued)
	assert.Error(t, err)
}

func TestTokenRejectsExpired(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", -time.Minute)

	issued, err := tokens.Issue(auth.SessionClaims{UserID: "user1"})
	assert.NoError(t, err)

	_, err = tokens.Parse(issued)
	assert.Error(t, err)
}

func TestTokenRejectsGarbage(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	_, err := tokens.Parse("not-a-token")
	assert.Error(t, err)
}
