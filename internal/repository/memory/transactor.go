package memory

import (
	"context"

	"github.com/cmlabs-hris/taskboard-backend-go/internal/pkg/database"
)

type transactorImpl struct{}

// NewTransactor returns a Transactor that simply calls fn. Each memory
// repository serializes its own writes.
func NewTransactor() database.Transactor {
	return transactorImpl{}
}

// WithinTransaction implements database.Transactor.
func (transactorImpl) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
