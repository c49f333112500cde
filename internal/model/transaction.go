package model

import (
	"time"

	"github.com/google/uuid"
)

type PaymentType string

const (
	PaymentCash PaymentType = "cash"
	PaymentCard PaymentType = "card"
)

func (p PaymentType) Valid() bool {
	return p == PaymentCash || p == PaymentCard
}

type Category string

const (
	CategorySaving     Category = "saving"
	CategoryExpense    Category = "expense"
	CategoryInvestment Category = "investment"
)

func (c Category) Valid() bool {
	switch c {
	case CategorySaving, CategoryExpense, CategoryInvestment:
		return true
	}
	return false
}

// Transaction is a single expense-tracker entry owned by one user.
type Transaction struct {
	ID          string      `json:"id"`
	UserID      string      `json:"userId"`
	Description string      `json:"description"`
	PaymentType PaymentType `json:"paymentType"`
	Category    Category    `json:"category"`
	Amount      float64     `json:"amount"`
	Location    string      `json:"location"`
	Date        time.Time   `json:"date"`
}

func NewTransaction(userID string) *Transaction {
	return &Transaction{
		ID:     uuid.NewString(),
		UserID: userID,
	}
}
