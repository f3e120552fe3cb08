package inmemory

import (
	"context"
	"strings"
	"time"

	"learnql/internal/adapter/out/storage"
	"learnql/internal/model"
	"learnql/pkg/pagination"
)

type UserStorage struct {
	users *table[model.User]
}

func NewUserStorage() *UserStorage {
	return &UserStorage{users: newTable[model.User]()}
}

func (s *UserStorage) CreateUser(_ context.Context, in model.User) (model.User, error) {
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now().UTC()
	}
	return s.users.insert(in,
		func(u *model.User, id int64) { u.ID = id },
		func(u model.User) bool { return strings.EqualFold(u.Email, in.Email) },
	)
}

func (s *UserStorage) GetUserByID(_ context.Context, userID int64) (model.User, error) {
	return s.users.get(userID)
}

func (s *UserStorage) UpdateUser(_ context.Context, userID int64, upd storage.UserUpdate) (model.User, error) {
	return s.users.update(userID, func(u *model.User) {
		if upd.Name != nil {
			u.Name = *upd.Name
		}
		if upd.Role != nil {
			u.Role = *upd.Role
		}
		if upd.Locked != nil {
			u.Locked = *upd.Locked
		}
	})
}

func (s *UserStorage) ListUsers(_ context.Context, filter storage.UserFilter, w pagination.Window) ([]model.User, error) {
	return s.users.list(w, func(u model.User) bool {
		if filter.Role != nil && u.Role != *filter.Role {
			return false
		}
		if filter.Locked != nil && u.Locked != *filter.Locked {
			return false
		}
		return true
	}), nil
}
