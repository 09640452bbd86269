package store

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"account-registry/internal/model"
)

var (
	ErrNotFound  = errors.New("user not found")
	ErrDuplicate = errors.New("email already stored")
)

// UserStore 為行程內的使用者資料表：id → 紀錄、email 索引以及遞增的 id 計數器。
// 本身不加鎖，由呼叫端負責互斥。
type UserStore struct {
	users   map[int]*model.User
	byEmail map[string]int
	nextID  int
}

func NewUserStore() *UserStore {
	return &UserStore{
		users:   make(map[int]*model.User),
		byEmail: make(map[string]int),
		nextID:  1,
	}
}

// Len 回傳目前存活的紀錄數
func (s *UserStore) Len() int {
	return len(s.users)
}

func (s *UserStore) GetUserByID(userID int) (*model.User, error) {
	u, ok := s.users[userID]
	if !ok {
		return nil, fmt.Errorf("GetUserByID: %w", ErrNotFound)
	}
	cp := *u
	return &cp, nil
}

func (s *UserStore) GetUserByEmail(email string) (*model.User, error) {
	id, ok := s.byEmail[email]
	if !ok {
		return nil, fmt.Errorf("GetUserByEmail: %w", ErrNotFound)
	}
	return s.GetUserByID(id)
}

// CreateUser 配發下一個 id 並寫入紀錄；u.ID 會被覆寫
func (s *UserStore) CreateUser(u *model.User) (*model.User, error) {
	if _, ok := s.byEmail[u.Email]; ok {
		return nil, fmt.Errorf("CreateUser: %w", ErrDuplicate)
	}
	u.ID = s.nextID
	s.nextID++

	stored := *u
	s.users[stored.ID] = &stored
	s.byEmail[stored.Email] = stored.ID
	return u, nil
}

func (s *UserStore) UpdateUserPassword(userID int, password string) error {
	u, ok := s.users[userID]
	if !ok {
		return fmt.Errorf("UpdateUserPassword: %w", ErrNotFound)
	}
	u.Password = password
	return nil
}

func (s *UserStore) DeleteUser(userID int) error {
	u, ok := s.users[userID]
	if !ok {
		return fmt.Errorf("DeleteUser: %w", ErrNotFound)
	}
	delete(s.byEmail, u.Email)
	delete(s.users, userID)
	return nil
}

// ListUsers 依 id 由小到大回傳所有紀錄的副本。
// id 單調遞增，因此順序即為存活紀錄的寫入順序。
func (s *UserStore) ListUsers() []model.User {
	ids := slices.Sorted(maps.Keys(s.users))
	out := make([]model.User, 0, len(ids))
	for _, id := range ids {
		out = append(out, *s.users[id])
	}
	return out
}
