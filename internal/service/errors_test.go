package service

import (
	"errors"
	"fmt"
	"testing"

	"account-registry/internal/model"

	"github.com/stretchr/testify/require"
)

func userWithPassword(pw string) model.User {
	return model.User{ID: 1, Email: "a@b.com", Password: pw}
}

func TestErrorCode(t *testing.T) {
	require.Equal(t, "", ErrorCode(nil))
	require.Equal(t, "weak_password", ErrorCode(ErrWeakPassword))
	require.Equal(t, "user_not_found", ErrorCode(fmt.Errorf("wrap: %w", ErrUserNotFound)))
	require.Equal(t, CodeInternal, ErrorCode(errors.New("boom")))
}

func TestErrorMessages(t *testing.T) {
	require.EqualError(t, ErrInvalidEmailFormat, "Invalid email format")
	require.EqualError(t, ErrWeakPassword, "Password must be at least 8 characters long and contain at least one digit.")
	require.EqualError(t, ErrDuplicateEmail, "User email already taken")
	require.EqualError(t, ErrInvalidCredentials, "Invalid email or password")
	require.EqualError(t, ErrUserNotFound, "User not found")
	require.EqualError(t, ErrIncorrectOldPassword, "Incorrect old password")
}
