package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	require.NoError(t, ValidateEmail("a@b.com"))
	require.NoError(t, ValidateEmail("@"))
	require.ErrorIs(t, ValidateEmail(""), ErrInvalidEmailFormat)
	require.ErrorIs(t, ValidateEmail("bad-email"), ErrInvalidEmailFormat)
}

func TestValidatePassword(t *testing.T) {
	require.NoError(t, ValidatePassword("abcd1234"))
	require.NoError(t, ValidatePassword("12345678"))
	require.NoError(t, ValidatePassword("has space 1"))
	require.ErrorIs(t, ValidatePassword(""), ErrWeakPassword)
	require.ErrorIs(t, ValidatePassword("short1"), ErrWeakPassword)
	require.ErrorIs(t, ValidatePassword("abc1234"), ErrWeakPassword)
	require.ErrorIs(t, ValidatePassword("nodigitpw"), ErrWeakPassword)
}

func TestValidatePasswordDigitCategory(t *testing.T) {
	// 只有 Unicode Nd 類別算數字：阿拉伯-印度數字可以，上標與羅馬數字不行
	require.NoError(t, ValidatePassword("abcdefg٣"))
	require.NoError(t, ValidatePassword("abcdefg３"))
	require.ErrorIs(t, ValidatePassword("abcdefg²"), ErrWeakPassword)
	require.ErrorIs(t, ValidatePassword("abcdefgⅣ"), ErrWeakPassword)
}

func TestAuthenticateUser(t *testing.T) {
	u := userWithPassword("Secret123")
	require.NoError(t, AuthenticateUser(u, "Secret123"))
	require.Error(t, AuthenticateUser(u, "secret123"))
	require.Error(t, AuthenticateUser(u, ""))
}
