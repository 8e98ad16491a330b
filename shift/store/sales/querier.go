package sales

import (
	"context"
)

//go:generate mockgen -destination=../../mocks/repository/sales_repo/querier.go -package=sales_repo tillpoint.app/shift/store/sales Querier

type Querier interface {
	CreateTransaction(ctx context.Context, arg CreateTransactionParams) (Transaction, error)
	GetTransaction(ctx context.Context, id int64) (Transaction, error)
	GetTransactionForUpdate(ctx context.Context, id int64) (Transaction, error)
	GetTransactionByReference(ctx context.Context, reference string) (Transaction, error)
	ListShiftTransactions(ctx context.Context, shiftID int64) ([]Transaction, error)
	ListShiftRefunds(ctx context.Context, shiftID int64) ([]Refund, error)
	SumRefunds(ctx context.Context, transactionID int64) (int64, error)
	CreateRefund(ctx context.Context, arg CreateRefundParams) (Refund, error)
}

var _ Querier = (*Queries)(nil)
