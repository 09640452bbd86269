package users

import (
	"fmt"
	"strconv"

	"account-registry/internal/api"
	"account-registry/internal/model"
	"account-registry/internal/shell"
)

// Registry 為使用者指令所需的登錄表操作
type Registry interface {
	Register(email, name, password string) (int, error)
	Remove(userID int) error
	List() map[int]model.UserSummary
	UpdatePassword(userID int, oldPassword, newPassword string) error
}

func parseUserID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid user ID %q: %w", s, shell.ErrUsage)
	}
	return id, nil
}

// RegisterHandler 註冊新帳號
// usage: register <email> <password> [name...]
func RegisterHandler(reg Registry) shell.HandlerFunc {
	return func(c *shell.Context) error {
		if c.NArg() < 2 {
			return shell.ErrUsage
		}
		// 姓名取第二個參數之後的原始文字，保留連續空白
		id, err := reg.Register(c.Arg(0), c.Rest(2), c.Arg(1))
		if err != nil {
			return c.JSON(api.FromError(err))
		}
		return c.JSON(api.Success(api.MsgRegistered, id))
	}
}

// RemoveUserHandler 依 ID 刪除帳號
// usage: remove <user_id>
func RemoveUserHandler(reg Registry) shell.HandlerFunc {
	return func(c *shell.Context) error {
		if c.NArg() != 1 {
			return shell.ErrUsage
		}
		id, err := parseUserID(c.Arg(0))
		if err != nil {
			return err
		}
		if err := reg.Remove(id); err != nil {
			return c.JSON(api.FromError(err))
		}
		return c.JSON(api.Success(api.MsgRemoved, 0))
	}
}

// ListUsersHandler 列出所有帳號的 email 與姓名
func ListUsersHandler(reg Registry) shell.HandlerFunc {
	return func(c *shell.Context) error {
		if c.NArg() != 0 {
			return shell.ErrUsage
		}
		return c.JSON(api.UserListResponse(reg.List()))
	}
}

// UpdatePasswordHandler 驗證舊密碼並更新為新密碼
// usage: passwd <user_id> <old_password> <new_password>
func UpdatePasswordHandler(reg Registry) shell.HandlerFunc {
	return func(c *shell.Context) error {
		if c.NArg() != 3 {
			return shell.ErrUsage
		}
		id, err := parseUserID(c.Arg(0))
		if err != nil {
			return err
		}
		if err := reg.UpdatePassword(id, c.Arg(1), c.Arg(2)); err != nil {
			return c.JSON(api.FromError(err))
		}
		return c.JSON(api.Success(api.MsgPasswordUpdated, 0))
	}
}
