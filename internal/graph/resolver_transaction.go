package graph

import (
	"errors"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/spendwise/spendwise/internal/auth"
	"github.com/spendwise/spendwise/internal/model"
	"github.com/spendwise/spendwise/internal/repository"
)

// requireUser resolves the caller's user or fails with errUnauthorized.
// Every transaction operation is gated on an authenticated session.
func (r *resolver) requireUser(p graphql.ResolveParams) (*model.User, error) {
	user, err := auth.For(p.Context).GetUser(p.Context)
	if err != nil {
		return nil, r.clientError("requireUser", err)
	}
	if user == nil {
		return nil, errUnauthorized
	}
	return user, nil
}

func (r *resolver) transactions(p graphql.ResolveParams) (interface{}, error) {
	user, err := r.requireUser(p)
	if err != nil {
		return nil, err
	}

	txns, err := r.txns.TransactionsByUser(p.Context, user.ID)
	if err != nil {
		return nil, r.clientError("transactions", err)
	}
	return txns, nil
}

func (r *resolver) transaction(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireUser(p); err != nil {
		return nil, err
	}

	id, _ := p.Args["transactionId"].(string)
	txn, err := r.txns.TransactionByID(p.Context, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, r.clientError("transaction", err)
	}
	return txn, nil
}

func (r *resolver) categoryStatistics(p graphql.ResolveParams) (interface{}, error) {
	user, err := r.requireUser(p)
	if err != nil {
		return nil, err
	}

	txns, err := r.txns.TransactionsByUser(p.Context, user.ID)
	if err != nil {
		return nil, r.clientError("categoryStatistics", err)
	}

	totals := map[model.Category]float64{}
	for _, txn := range txns {
		totals[txn.Category] += txn.Amount
	}

	type categoryStat struct {
		Category    model.Category `json:"category"`
		TotalAmount float64        `json:"totalAmount"`
	}

	stats := make([]categoryStat, 0, len(totals))
	for _, category := range []model.Category{model.CategorySaving, model.CategoryExpense, model.CategoryInvestment} {
		if total, ok := totals[category]; ok {
			stats = append(stats, categoryStat{Category: category, TotalAmount: total})
		}
	}
	return stats, nil
}

func (r *resolver) createTransaction(p graphql.ResolveParams) (interface{}, error) {
	user, err := r.requireUser(p)
	if err != nil {
		return nil, err
	}

	input := inputArg(p)
	description, _ := input["description"].(string)
	paymentType, _ := input["paymentType"].(model.PaymentType)
	category, _ := input["category"].(model.Category)
	amount, _ := input["amount"].(float64)
	date, _ := input["date"].(time.Time)

	if description == "" || !paymentType.Valid() || !category.Valid() || date.IsZero() {
		return nil, errAllFieldsRequired
	}

	txn := model.NewTransaction(user.ID)
	txn.Description = description
	txn.PaymentType = paymentType
	txn.Category = category
	txn.Amount = amount
	txn.Date = date
	if location, ok := input["location"].(string); ok {
		txn.Location = location
	}

	if err := r.txns.CreateTransaction(p.Context, txn); err != nil {
		return nil, r.clientError("createTransaction", err)
	}
	return txn, nil
}

func (r *resolver) updateTransaction(p graphql.ResolveParams) (interface{}, error) {
	user, err := r.requireUser(p)
	if err != nil {
		return nil, err
	}

	input := inputArg(p)
	id, _ := input["transactionId"].(string)

	txn, err := r.ownedTransaction(p, user, id)
	if err != nil {
		return nil, err
	}

	if v, ok := input["description"].(string); ok {
		txn.Description = v
	}
	if v, ok := input["paymentType"].(model.PaymentType); ok {
		txn.PaymentType = v
	}
	if v, ok := input["category"].(model.Category); ok {
		txn.Category = v
	}
	if v, ok := input["amount"].(float64); ok {
		txn.Amount = v
	}
	if v, ok := input["location"].(string); ok {
		txn.Location = v
	}
	if v, ok := input["date"].(time.Time); ok {
		txn.Date = v
	}

	if err := r.txns.UpdateTransaction(p.Context, txn); err != nil {
		return nil, r.clientError("updateTransaction", err)
	}
	return txn, nil
}

func (r *resolver) deleteTransaction(p graphql.ResolveParams) (interface{}, error) {
	user, err := r.requireUser(p)
	if err != nil {
		return nil, err
	}

	id, _ := p.Args["transactionId"].(string)
	txn, err := r.ownedTransaction(p, user, id)
	if err != nil {
		return nil, err
	}

	if err := r.txns.DeleteTransaction(p.Context, txn.ID); err != nil {
		return nil, r.clientError("deleteTransaction", err)
	}
	return txn, nil
}

// ownedTransaction loads a transaction and checks it belongs to the caller.
// Records owned by others surface as not found.
func (r *resolver) ownedTransaction(p graphql.ResolveParams, user *model.User, id string) (*model.Transaction, error) {
	txn, err := r.txns.TransactionByID(p.Context, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, errTransactionNotFound
	}
	if err != nil {
		return nil, r.clientError("ownedTransaction", err)
	}
	if txn.UserID != user.ID {
		return nil, errTransactionNotFound
	}
	return txn, nil
}

// transactionUser resolves Transaction.user.
func (r *resolver) transactionUser(p graphql.ResolveParams) (interface{}, error) {
	txn, ok := p.Source.(*model.Transaction)
	if !ok {
		return nil, nil
	}
	user, err := r.users.UserByID(p.Context, txn.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, r.clientError("Transaction.user", err)
	}
	return user, nil
}
