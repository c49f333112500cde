package graph

import (
	"errors"

	"github.com/spendwise/spendwise/internal/auth"
	"github.com/spendwise/spendwise/internal/repository"
	"go.uber.org/zap"
)

// Client-visible error messages. Everything else is masked as errInternal
// so no internal error shapes leak into GraphQL responses.
var (
	errAllFieldsRequired   = errors.New("All fields are required")
	errUserExists          = errors.New("User already exists")
	errInvalidCredentials  = errors.New("Invalid username or password")
	errUnauthorized        = errors.New("Unauthorized")
	errTransactionNotFound = errors.New("Transaction not found")
	errInternal            = errors.New("Internal server error")
)

// clientError translates an internal failure into the error returned to the
// client, logging anything unexpected.
func (r *resolver) clientError(op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateUser):
		return errUserExists
	case errors.Is(err, auth.ErrInvalidCredentials):
		return errInvalidCredentials
	case errors.Is(err, errAllFieldsRequired),
		errors.Is(err, errUnauthorized),
		errors.Is(err, errTransactionNotFound):
		return err
	default:
		r.log.Error("resolver failure", zap.String("op", op), zap.Error(err))
		return errInternal
	}
}
