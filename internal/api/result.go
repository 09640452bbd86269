package api

import (
	"account-registry/internal/model"
	"account-registry/internal/service"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

const (
	MsgRegistered      = "User registered successfully"
	MsgLoggedIn        = "Login successful"
	MsgRemoved         = "User removed successfully"
	MsgPasswordUpdated = "Password updated successfully"
)

// Result 為每個操作的標記式回應；呼叫端應依 Status 判斷，Message 僅供顯示
type Result struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message" example:"User registered successfully"`
	Code    string `json:"code,omitempty" example:"weak_password"`
	UserID  int    `json:"user_id,omitempty" example:"1"`
}

// Success 建立成功回應；userID 為 0 時不輸出
func Success(message string, userID int) Result {
	return Result{Status: StatusSuccess, Message: message, UserID: userID}
}

// FromError 將登錄表錯誤轉為錯誤回應
func FromError(err error) Result {
	return Result{
		Status:  StatusError,
		Message: err.Error(),
		Code:    service.ErrorCode(err),
	}
}

// UserListResponse 以 user_id 為鍵列出 {email, name}
type UserListResponse map[int]model.UserSummary
