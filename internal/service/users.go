package service

import (
	"context"

	"learnql/internal/adapter/out/storage"
	"learnql/internal/model"
	"learnql/pkg/pagination"
)

//go:generate mockgen -source=users.go -destination=./user_storage_mock_test.go -package=service learnql/internal/service UserStorage
type UserStorage interface {
	CreateUser(ctx context.Context, u model.User) (model.User, error)
	GetUserByID(ctx context.Context, userID int64) (model.User, error)
	UpdateUser(ctx context.Context, userID int64, upd storage.UserUpdate) (model.User, error)
	ListUsers(ctx context.Context, filter storage.UserFilter, w pagination.Window) ([]model.User, error)
}

type UserService struct {
	userStorage UserStorage
}

func NewUserService(userStorage UserStorage) *UserService {
	return &UserService{userStorage: userStorage}
}

func userKey(u model.User) int64 { return u.ID }

func (s *UserService) CreateUser(ctx context.Context, req CreateUserRequest) (model.User, error) {
	if err := validateRequest(req); err != nil {
		return model.User{}, err
	}
	role := req.Role
	if role == "" {
		role = model.RoleUser
	}
	return s.userStorage.CreateUser(ctx, model.User{
		Email: req.Email,
		Name:  req.Name,
		Role:  role,
	})
}

func (s *UserService) GetUser(ctx context.Context, userID int64) (model.User, error) {
	if err := validateID("userID", userID); err != nil {
		return model.User{}, err
	}
	return s.userStorage.GetUserByID(ctx, userID)
}

func (s *UserService) UpdateUser(ctx context.Context, req UpdateUserRequest) (model.User, error) {
	if err := validateRequest(req); err != nil {
		return model.User{}, err
	}
	return s.userStorage.UpdateUser(ctx, req.ID, storage.UserUpdate{
		Name:   req.Name,
		Role:   req.Role,
		Locked: req.Locked,
	})
}

func (s *UserService) ListUsers(ctx context.Context, filter storage.UserFilter, args pagination.Args) (pagination.Connection[model.User], error) {
	return paginate(ctx, pagination.Ascending, args, userKey, func(ctx context.Context, w pagination.Window) ([]model.User, error) {
		return s.userStorage.ListUsers(ctx, filter, w)
	})
}
