package service

import (
	"context"
	"testing"
	"time"

	"library-api/internal/model"

	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("test123")
	require.NoError(t, err)
	require.NotEqual(t, "test123", hash)

	require.NoError(t, ComparePassword(hash, "test123"))
	require.Error(t, ComparePassword(hash, "wrongpass"))
}

func TestAuthenticateUser(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)
	user := model.User{ID: 1, Username: "anna", PasswordHash: hash}

	got, err := AuthenticateUser(context.Background(), user, "secret")
	require.NoError(t, err)
	require.Equal(t, 1, got.ID)

	got, err = AuthenticateUser(context.Background(), user, "nope")
	require.Error(t, err)
	require.Nil(t, got)
}

func TestIssueAndVerifyAccessToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")
	user := model.User{ID: 7, Username: "anna"}

	tok, err := IssueAccessToken(user, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := VerifyAccessToken(tok)
	require.NoError(t, err)
	require.Equal(t, 7, claims.UserID)
	require.Equal(t, "anna", claims.Username)
	require.Equal(t, "anna", claims.Subject)
	require.NotEmpty(t, claims.ID)

	// 不同次簽發應有不同 jti
	tok2, err := IssueAccessToken(user, time.Minute)
	require.NoError(t, err)
	claims2, err := VerifyAccessToken(tok2)
	require.NoError(t, err)
	require.NotEqual(t, claims.ID, claims2.ID)
}

func TestVerifyAccessTokenErrors(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := IssueAccessToken(model.User{}, time.Minute)
	require.Error(t, err)
	_, err = VerifyAccessToken("whatever")
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "testsecret")
	_, err = VerifyAccessToken("not-a-token")
	require.Error(t, err)

	// 過期令牌
	tok, err := IssueAccessToken(model.User{ID: 1, Username: "x"}, -time.Minute)
	require.NoError(t, err)
	_, err = VerifyAccessToken(tok)
	require.Error(t, err)
}
