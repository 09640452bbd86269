// File: internal/model/user.go
package model

// User 為登錄表中的單筆帳號紀錄，密碼以明文保存
type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"-"`
	IsAdmin  bool   `json:"-"`
}

// UserSummary 為列表輸出的唯讀視圖，不含密碼與管理員旗標
type UserSummary struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Summary 回傳此使用者的列表視圖
func (u User) Summary() UserSummary {
	return UserSummary{Email: u.Email, Name: u.Name}
}
