package services

import "context"

type Service[T any, S any] interface {
	Run(ctx context.Context, input T) (S, error)
}

// ServiceFunc lets a plain function satisfy Service.
type ServiceFunc[T any, S any] func(ctx context.Context, input T) (S, error)

func (f ServiceFunc[T, S]) Run(ctx context.Context, input T) (S, error) {
	return f(ctx, input)
}
