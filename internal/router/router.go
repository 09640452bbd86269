// File: internal/router/router.go
package router

import (
	"account-registry/internal/handler"
	"account-registry/internal/handler/auth"
	"account-registry/internal/handler/users"
	"account-registry/internal/shell"
)

// Registry 為所有使用者指令共用的登錄表操作
type Registry interface {
	users.Registry
	Login(email, password string) (int, error)
}

// Setup 註冊所有指令
func Setup(sh *shell.Shell, reg Registry, m handler.MetricsWriter) {
	// 帳號操作
	sh.Handle("register", "<email> <password> [name...]", "Register a new account", users.RegisterHandler(reg))
	sh.Handle("login", "<email> <password>", "Check credentials and return the user ID", auth.LoginHandler(reg))
	sh.Handle("remove", "<user_id>", "Remove an account", users.RemoveUserHandler(reg))
	sh.Handle("list", "", "List all accounts (email and name only)", users.ListUsersHandler(reg))
	sh.Handle("passwd", "<user_id> <old_password> <new_password>", "Change an account password", users.UpdatePasswordHandler(reg))

	// 指標
	sh.Handle("metrics", "", "Print registry metrics", handler.MetricsHandler(m))
}
