package postgres

import (
	"context"
	"fmt"

	"learnql/internal/adapter/out/storage"
	"learnql/internal/model"
	"learnql/pkg/pagination"
	"learnql/pkg/tableinfo"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

var userColumns = []string{
	tableinfo.UserIDColumn,
	tableinfo.UserEmailColumn,
	tableinfo.UserNameColumn,
	tableinfo.UserRoleColumn,
	tableinfo.UserLockedColumn,
	tableinfo.UserCreatedAtColumn,
}

type UserStorage struct {
	Storage
}

func NewUserStorage(db trmpgx.Tr, getter *trmpgx.CtxGetter) *UserStorage {
	return &UserStorage{Storage{db: db, getter: getter}}
}

func scanUser(row pgx.Row) (model.User, error) {
	var (
		out  model.User
		role string
	)
	if err := row.Scan(&out.ID, &out.Email, &out.Name, &role, &out.Locked, &out.CreatedAt); err != nil {
		return out, err
	}
	out.Role = model.Role(role)
	return out, nil
}

func (s *UserStorage) CreateUser(ctx context.Context, u model.User) (model.User, error) {
	qb := psql.
		Insert(tableinfo.UsersTableName).
		Columns(
			tableinfo.UserEmailColumn,
			tableinfo.UserNameColumn,
			tableinfo.UserRoleColumn,
			tableinfo.UserLockedColumn,
		).
		Values(u.Email, u.Name, string(u.Role), u.Locked).
		Suffix(returning(userColumns))

	return queryOne(ctx, s.tr(ctx), "insert user", qb, scanUser)
}

func (s *UserStorage) GetUserByID(ctx context.Context, userID int64) (model.User, error) {
	qb := psql.
		Select(userColumns...).
		From(tableinfo.UsersTableName).
		Where(sq.Eq{tableinfo.UserIDColumn: userID})

	return queryOne(ctx, s.tr(ctx), "select user by id", qb, scanUser)
}

func (s *UserStorage) UpdateUser(ctx context.Context, userID int64, upd storage.UserUpdate) (model.User, error) {
	set := map[string]any{}
	if upd.Name != nil {
		set[tableinfo.UserNameColumn] = *upd.Name
	}
	if upd.Role != nil {
		set[tableinfo.UserRoleColumn] = string(*upd.Role)
	}
	if upd.Locked != nil {
		set[tableinfo.UserLockedColumn] = *upd.Locked
	}
	if len(set) == 0 {
		return s.GetUserByID(ctx, userID)
	}

	qb := psql.
		Update(tableinfo.UsersTableName).
		SetMap(set).
		Where(sq.Eq{tableinfo.UserIDColumn: userID}).
		Suffix(returning(userColumns))

	return queryOne(ctx, s.tr(ctx), "update user", qb, scanUser)
}

func (s *UserStorage) ListUsers(ctx context.Context, filter storage.UserFilter, w pagination.Window) ([]model.User, error) {
	qb := psql.Select(userColumns...).From(tableinfo.UsersTableName)
	if filter.Role != nil {
		qb = qb.Where(sq.Eq{tableinfo.UserRoleColumn: string(*filter.Role)})
	}
	if filter.Locked != nil {
		qb = qb.Where(sq.Eq{tableinfo.UserLockedColumn: *filter.Locked})
	}

	qb, err := applyWindow(qb, tableinfo.UserIDColumn, w)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return queryAll(ctx, s.tr(ctx), "select users", qb, scanUser)
}
