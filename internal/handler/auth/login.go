// File: internal/handler/auth/login.go
package auth

import (
	"account-registry/internal/api"
	"account-registry/internal/shell"
)

// Authenticator 以 email 與密碼驗證帳號
type Authenticator interface {
	Login(email, password string) (int, error)
}

// LoginHandler 使用 Email/Password 驗證並回傳使用者 ID
// usage: login <email> <password>
func LoginHandler(auth Authenticator) shell.HandlerFunc {
	return func(c *shell.Context) error {
		if c.NArg() != 2 {
			return shell.ErrUsage
		}
		id, err := auth.Login(c.Arg(0), c.Arg(1))
		if err != nil {
			return c.JSON(api.FromError(err))
		}
		return c.JSON(api.Success(api.MsgLoggedIn, id))
	}
}
