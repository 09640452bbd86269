// File: internal/service/password.go
package service

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const (
	// email 只要求含有 '@'
	emailRule = "contains=@"
	// 至少 8 個字元（以 Unicode code point 計）且至少一個數字
	passwordRule = "min=8,hasdigit"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("hasdigit", hasDigit); err != nil {
		panic(err)
	}
	return v
}

func hasDigit(fl validator.FieldLevel) bool {
	return strings.IndexFunc(fl.Field().String(), unicode.IsDigit) >= 0
}

// ValidateEmail 檢查 email 格式，不符回傳 ErrInvalidEmailFormat
func ValidateEmail(email string) error {
	if err := validate.Var(email, emailRule); err != nil {
		return ErrInvalidEmailFormat
	}
	return nil
}

// ValidatePassword 檢查密碼強度，不符回傳 ErrWeakPassword
func ValidatePassword(password string) error {
	if err := validate.Var(password, passwordRule); err != nil {
		return ErrWeakPassword
	}
	return nil
}
