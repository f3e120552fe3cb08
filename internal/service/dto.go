package service

import (
	"context"
	"errors"
	"fmt"

	"learnql/internal/model"
	"learnql/pkg/pagination"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// TxManager runs fn inside a transaction carried by ctx.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateProjectRequest struct {
	Code        string `validate:"required,max=64"`
	Name        string `validate:"required,max=255"`
	Description string
}

type UpdateProjectRequest struct {
	ID          int64   `validate:"required,gt=0"`
	Name        *string `validate:"omitempty,min=1,max=255"`
	Description *string
}

type CreateUserRequest struct {
	Email string     `validate:"required,email"`
	Name  string     `validate:"required,max=255"`
	Role  model.Role `validate:"omitempty,oneof=ADMIN USER"`
}

type UpdateUserRequest struct {
	ID     int64       `validate:"required,gt=0"`
	Name   *string     `validate:"omitempty,min=1,max=255"`
	Role   *model.Role `validate:"omitempty,oneof=ADMIN USER"`
	Locked *bool
}

// RecordActionRequest carries an RFC 3339 timestamp; an empty one means now.
type RecordActionRequest struct {
	UserID    int64  `validate:"required,gt=0"`
	ProjectID int64  `validate:"required,gt=0"`
	Verb      string `validate:"required,max=64"`
	ContentID *int64 `validate:"omitempty,gt=0"`
	Result    *float64
	Timestamp string
}

type CreateContentRequest struct {
	ProjectID   int64  `validate:"required,gt=0"`
	Code        string `validate:"required,max=64"`
	Name        string `validate:"required,max=255"`
	Description string
	Kind        string   `validate:"required,max=64"`
	URL         *string  `validate:"omitempty,url"`
	Tags        []string `validate:"dive,required,max=64"`
}

type UpdateContentRequest struct {
	ID          int64   `validate:"required,gt=0"`
	Name        *string `validate:"omitempty,min=1,max=255"`
	Description *string
	Kind        *string  `validate:"omitempty,min=1,max=64"`
	URL         *string  `validate:"omitempty,url"`
	Tags        []string `validate:"omitempty,dive,required,max=64"`
}

type CreateDomainRequest struct {
	ProjectID int64  `validate:"required,gt=0"`
	Code      string `validate:"required,max=64"`
	Name      string `validate:"required,max=255"`
}

type CreateTopicRequest struct {
	DomainID int64  `validate:"required,gt=0"`
	ParentID *int64 `validate:"omitempty,gt=0"`
	Code     string `validate:"required,max=64"`
	Name     string `validate:"required,max=255"`
}

type CreateKCRequest struct {
	DomainID int64  `validate:"required,gt=0"`
	Code     string `validate:"required,max=64"`
	Name     string `validate:"required,max=255"`
}

type CreateModelStateRequest struct {
	UserID   int64  `validate:"required,gt=0"`
	DomainID int64  `validate:"required,gt=0"`
	Type     string `validate:"required,max=64"`
	Creator  string `validate:"required,max=255"`
	Data     string `validate:"required,json"`
}

func validateRequest(req any) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return nil
}

func validateID(name string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%s must be > 0: %w", name, ErrInvalidRequest)
	}
	return nil
}

// paginate resolves a connection and reports malformed arguments as
// ErrInvalidRequest.
func paginate[T any](
	ctx context.Context,
	p pagination.Paginator,
	args pagination.Args,
	key func(T) int64,
	fetch pagination.Fetcher[T],
) (pagination.Connection[T], error) {
	conn, err := pagination.Resolve(ctx, p, args, key, fetch)
	if err != nil {
		if errors.Is(err, pagination.ErrInvalidArgs) || errors.Is(err, pagination.ErrInvalidCursor) {
			return conn, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
		return conn, err
	}
	return conn, nil
}
