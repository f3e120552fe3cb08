package graphql

import (
	"context"
	"errors"
	"log/slog"

	"learnql/internal/service"
	"learnql/pkg/logger"
)

const (
	CodeBadRequest = "BAD_REQUEST"
	CodeNotFound   = "NOT_FOUND"
	CodeForbidden  = "FORBIDDEN"
	CodeConflict   = "CONFLICT"
	CodeInternal   = "INTERNAL"
)

// Error is returned from resolvers. graphql-go copies Extensions into the
// error entry of the response.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Code}
}

func badRequest(msg string) *Error {
	return &Error{Code: CodeBadRequest, Message: msg}
}

// toGQLError classifies err by the service sentinel it wraps. Unclassified
// errors are logged and reported without details.
func toGQLError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	var gqlErr *Error
	if errors.As(err, &gqlErr) {
		return gqlErr
	}

	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		return &Error{Code: CodeBadRequest, Message: err.Error()}
	case errors.Is(err, service.ErrNotFound):
		return &Error{Code: CodeNotFound, Message: err.Error()}
	case errors.Is(err, service.ErrForbidden):
		return &Error{Code: CodeForbidden, Message: err.Error()}
	case errors.Is(err, service.ErrConflict):
		return &Error{Code: CodeConflict, Message: err.Error()}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	}

	logger.FromContext(ctx).Error("graphql resolver failed", slog.Any("error", err))
	return &Error{Code: CodeInternal, Message: service.ErrInternalError.Error()}
}
