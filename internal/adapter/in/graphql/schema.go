package graphql

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"learnql/pkg/logger"

	"github.com/graph-gophers/graphql-go"
)

//go:embed schema.graphql
var sdl string

const maxQueryDepth = 12

// NewSchema binds the SDL to r.
func NewSchema(r *Resolver) (*graphql.Schema, error) {
	schema, err := graphql.ParseSchema(sdl, r,
		graphql.UseStringDescriptions(),
		graphql.MaxDepth(maxQueryDepth),
		graphql.Logger(panicLogger{}),
	)
	if err != nil {
		return nil, fmt.Errorf("parse graphql schema: %w", err)
	}
	return schema, nil
}

// panicLogger reports resolver panics through the request logger.
type panicLogger struct{}

func (panicLogger) LogPanic(ctx context.Context, value interface{}) {
	logger.FromContext(ctx).Error("graphql resolver panic", slog.Any("panic", value))
}
