package repository

import "context"

// CounterRepository hands out order numbers from a persistent sequence
type CounterRepository interface {
	// NextOrderNumber atomically claims and returns the next order number
	NextOrderNumber(ctx context.Context) (int64, error)
}
