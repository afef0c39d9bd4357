package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yeremiapane/reservation-app/models"
)

func TestLoginByEmail(t *testing.T) {
	st := seededTestStore(t)
	svc := NewAuthService(st)

	user, err := svc.Login("alice@example.com", "whatever")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, models.RoleCustomer, user.Role)

	_, err = svc.Login("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	st := seededTestStore(t)
	svc := NewAuthService(st)
	ctx := context.Background()

	user, err := svc.Signup(ctx, "Dave Lee", "dave@example.com", "555-0105", "secret123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))

	_, err = svc.Signup(ctx, "Dave Again", "dave@example.com", "555-0106", "secret456")
	assert.ErrorIs(t, err, ErrEmailTaken)

	// Case-insensitive
	_, err = svc.Signup(ctx, "Dave Upper", "DAVE@example.com", "555-0107", "secret789")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignupThenLogin(t *testing.T) {
	st := seededTestStore(t)
	svc := NewAuthService(st)

	created, err := svc.Signup(context.Background(), "Eve Adams", "eve@example.com", "555-0110", "pw")
	require.NoError(t, err)

	logged, err := svc.Login("eve@example.com", "ignored")
	require.NoError(t, err)
	assert.Equal(t, created.ID, logged.ID)

	fetched, err := svc.GetUser(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Eve Adams", fetched.Name)

	_, err = svc.GetUser("user-missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
