// File: internal/service/registry.go
package service

import (
	"errors"
	"sync"

	"account-registry/internal/model"
	"account-registry/internal/store"
)

// 操作名稱，用於日誌與指標標籤
const (
	OpRegister       = "register"
	OpLogin          = "login"
	OpRemove         = "remove"
	OpList           = "list"
	OpUpdatePassword = "update_password"
)

// ResultSuccess 為成功操作在指標中的標籤值
const ResultSuccess = "success"

// Logger 為 Registry 所需的最小日誌介面，gommon 的 *log.Logger 即可滿足
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
}

// Recorder 接收每次操作的結果；result 為 ResultSuccess 或錯誤代碼
type Recorder interface {
	Observe(operation, result string)
	SetUsers(n int)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Infof(string, ...interface{})  {}

type nopRecorder struct{}

func (nopRecorder) Observe(string, string) {}
func (nopRecorder) SetUsers(int)           {}

// Registry 持有所有使用者紀錄並提供五種操作。
// 單一互斥鎖保護全部操作，避免交錯修改。
type Registry struct {
	mu      sync.Mutex
	store   *store.UserStore
	logger  Logger
	metrics Recorder
}

type Option func(*Registry)

func WithLogger(l Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

func WithMetrics(m Recorder) Option {
	return func(r *Registry) {
		if m != nil {
			r.metrics = m
		}
	}
}

// NewRegistry 建立空的登錄表，id 由 1 開始配發
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		store:   store.NewUserStore(),
		logger:  nopLogger{},
		metrics: nopRecorder{},
	}
	for _, opt := range opts {
		opt(r)
	}
	r.metrics.SetUsers(0)
	return r
}

// Register 依序檢查 email 格式、密碼強度、email 唯一性，通過後寫入新紀錄並回傳 id。
// 任一檢查失敗都不會修改登錄表。
func (r *Registry) Register(email, name, password string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := r.register(email, name, password)
	r.observe(OpRegister, err)
	return id, err
}

func (r *Registry) register(email, name, password string) (int, error) {
	if err := ValidateEmail(email); err != nil {
		return 0, err
	}
	if err := ValidatePassword(password); err != nil {
		return 0, err
	}

	u, err := r.store.CreateUser(&model.User{
		Email:    email,
		Name:     name,
		Password: password,
		IsAdmin:  false,
	})
	if errors.Is(err, store.ErrDuplicate) {
		return 0, ErrDuplicateEmail
	}
	if err != nil {
		return 0, err
	}
	r.logger.Infof("user %d registered", u.ID)
	return u.ID, nil
}

// Login 以 email 與密碼完全比對，成功回傳 id。
// email 不存在與密碼錯誤一律回傳 ErrInvalidCredentials。
func (r *Registry) Login(email, password string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := r.login(email, password)
	r.observe(OpLogin, err)
	return id, err
}

func (r *Registry) login(email, password string) (int, error) {
	u, err := r.store.GetUserByEmail(email)
	if err != nil {
		return 0, ErrInvalidCredentials
	}
	if err := AuthenticateUser(*u, password); err != nil {
		return 0, ErrInvalidCredentials
	}
	return u.ID, nil
}

// Remove 刪除指定使用者；id 不會被重新配發
func (r *Registry) Remove(userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	err := r.remove(userID)
	r.observe(OpRemove, err)
	return err
}

func (r *Registry) remove(userID int) error {
	if err := r.store.DeleteUser(userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	r.logger.Infof("user %d removed", userID)
	return nil
}

// List 回傳所有使用者 id → {email, name} 的快照
func (r *Registry) List() map[int]model.UserSummary {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := r.store.ListUsers()
	out := make(map[int]model.UserSummary, len(users))
	for _, u := range users {
		out[u.ID] = u.Summary()
	}
	r.observe(OpList, nil)
	return out
}

// UpdatePassword 依序檢查使用者存在、舊密碼正確、新密碼強度，全部通過才覆寫密碼
func (r *Registry) UpdatePassword(userID int, oldPassword, newPassword string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	err := r.updatePassword(userID, oldPassword, newPassword)
	r.observe(OpUpdatePassword, err)
	return err
}

func (r *Registry) updatePassword(userID int, oldPassword, newPassword string) error {
	u, err := r.store.GetUserByID(userID)
	if err != nil {
		return ErrUserNotFound
	}
	if err := AuthenticateUser(*u, oldPassword); err != nil {
		return ErrIncorrectOldPassword
	}
	if err := ValidatePassword(newPassword); err != nil {
		return err
	}
	if err := r.store.UpdateUserPassword(userID, newPassword); err != nil {
		return err
	}
	r.logger.Infof("user %d password updated", userID)
	return nil
}

func (r *Registry) observe(op string, err error) {
	result := ResultSuccess
	if err != nil {
		result = ErrorCode(err)
		r.logger.Debugf("%s rejected: %s", op, result)
	}
	r.metrics.Observe(op, result)
	r.metrics.SetUsers(r.store.Len())
}
