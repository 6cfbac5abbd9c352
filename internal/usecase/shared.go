// Package usecase holds application services. Repository interfaces are
// declared here, next to their consumers; implementations live in
// internal/infra/repository.
package usecase

import (
	"context"
	"errors"

	"shareit/internal/pkg/errs"
)

// Error markers for categorization
var (
	ErrDomainValidationFailed  = errors.New("domain validation failed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

var ErrInvalidPagination = errors.New("invalid pagination parameters")

// page converts from/size query parameters into limit/offset. from is an
// element offset, not a page number.
func page(from, size int) (limit, offset uint, err error) {
	if from < 0 || size < 1 {
		return 0, 0, ErrInvalidPagination
	}
	return uint(size), uint(from), nil
}

func requireUser(ctx context.Context, repo UserRepository, userID int64) error {
	exists, err := repo.ExistsByID(ctx, userID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !exists {
		return ErrUserNotFound
	}
	return nil
}
