package service

import "errors"

// Error 為登錄表對外可見的錯誤種類。Code 供程式判斷，Message 僅供顯示。
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrInvalidEmailFormat   = &Error{Code: "invalid_email_format", Message: "Invalid email format"}
	ErrWeakPassword         = &Error{Code: "weak_password", Message: "Password must be at least 8 characters long and contain at least one digit."}
	ErrDuplicateEmail       = &Error{Code: "duplicate_email", Message: "User email already taken"}
	ErrInvalidCredentials   = &Error{Code: "invalid_credentials", Message: "Invalid email or password"}
	ErrUserNotFound         = &Error{Code: "user_not_found", Message: "User not found"}
	ErrIncorrectOldPassword = &Error{Code: "incorrect_old_password", Message: "Incorrect old password"}
)

// CodeInternal 標記非預期的錯誤（不屬於上述任何種類）
const CodeInternal = "internal"

// ErrorCode 回傳 err 對應的錯誤代碼；nil 回傳空字串
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}
