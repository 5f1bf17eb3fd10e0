package repository

import "context"

// TxManager runs a function with every repository call inside it sharing
// one database transaction. The function's error rolls everything back.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
