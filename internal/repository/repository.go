package repository

import (
	"context"
	"errors"

	"github.com/spendwise/spendwise/internal/model"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicateUser = errors.New("user already exists")
)

type Users interface {
	CreateUser(ctx context.Context, user *model.User) error
	UserByID(ctx context.Context, id string) (*model.User, error)
	UserByUsername(ctx context.Context, username string) (*model.User, error)
}

type Transactions interface {
	CreateTransaction(ctx context.Context, txn *model.Transaction) error
	TransactionByID(ctx context.Context, id string) (*model.Transaction, error)
	TransactionsByUser(ctx context.Context, userID string) ([]*model.Transaction, error)
	UpdateTransaction(ctx context.Context, txn *model.Transaction) error
	DeleteTransaction(ctx context.Context, id string) error
}
