package commands

import (
	"context"

	command "github.com/goliatone/go-command"
)

// QueryFunc resolves a query message into a result.
type QueryFunc[T command.Message, R any] func(ctx context.Context, msg T) (R, error)

// QueryHandler runs query messages through a Handler and hands back the
// result produced by the wrapped function.
type QueryHandler[T command.Message, R any] struct {
	fetch QueryFunc[T, R]
	opts  []HandlerOption[T]
}

// NewQueryHandler creates a query handler. Options apply to every execution.
func NewQueryHandler[T command.Message, R any](fn QueryFunc[T, R], opts ...HandlerOption[T]) *QueryHandler[T, R] {
	if fn == nil {
		panic("commands: query function cannot be nil")
	}
	return &QueryHandler[T, R]{fetch: fn, opts: opts}
}

// Query executes msg and returns its result. The zero value of R is returned
// alongside any error.
func (q *QueryHandler[T, R]) Query(ctx context.Context, msg T) (R, error) {
	var result R
	handler := NewHandler[T](func(ctx context.Context, msg T) error {
		value, err := q.fetch(ctx, msg)
		if err != nil {
			return err
		}
		result = value
		return nil
	}, q.opts...)

	if err := handler.Execute(ctx, msg); err != nil {
		var zero R
		return zero, err
	}
	return result, nil
}
