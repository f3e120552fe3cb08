package service

import "context"

// txStub runs fn inline, standing in for a transaction manager.
type txStub struct{}

func (txStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func ptr[T any](v T) *T { return &v }
