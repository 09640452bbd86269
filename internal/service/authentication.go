// File: internal/service/authentication.go
package service

import (
	"errors"

	"account-registry/internal/model"
)

var errPasswordMismatch = errors.New("invalid password")

// AuthenticateUser 以明文完全比對密碼（區分大小寫），成功回傳 nil
func AuthenticateUser(user model.User, password string) error {
	if user.Password != password {
		return errPasswordMismatch
	}
	return nil
}
