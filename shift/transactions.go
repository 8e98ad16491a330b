package shift

import (
	"context"
	"strings"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"tillpoint.app/ledger"
	"tillpoint.app/shift/model"
)

type RecordSaleRequest struct {
	LocationID    string `json:"location_id" validate:"required"`
	ShiftID       *int64 `json:"shift_id,omitempty" validate:"omitempty,gt=0"`
	MembershipID  *int64 `json:"membership_id,omitempty" validate:"omitempty,gt=0"`
	CustomerID    *int64 `json:"customer_id,omitempty" validate:"omitempty,gt=0"`
	PaymentMethod string `json:"payment_method" validate:"required,max=50"`
	// TotalAmount is the net sale, e.g. "12.50".
	TotalAmount string `json:"total_amount" validate:"required"`
	Currency    string `json:"currency" validate:"omitempty,len=3,alpha"`
	// Reference is the register's receipt number. Resending a reference
	// returns the sale already recorded under it.
	Reference string `json:"reference" validate:"max=100"`
}

type TransactionResponse struct {
	Transaction model.Transaction `json:"transaction"`
}

//encore:api public path=/v1/transactions method=POST
func (s *Service) RecordSale(ctx context.Context, req *RecordSaleRequest) (*TransactionResponse, error) {
	amount, err := ledger.ParseAmount(req.TotalAmount)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid total amount"}
	}
	currency := strings.ToLower(req.Currency)
	if currency == "" {
		currency = cfg.Currency()
	}

	result, err := s.business.RecordSale(ctx, &model.Transaction{
		LocationID:    req.LocationID,
		ShiftID:       req.ShiftID,
		MembershipID:  req.MembershipID,
		CustomerID:    req.CustomerID,
		PaymentMethod: req.PaymentMethod,
		TotalAmount:   amount,
		Currency:      currency,
		Reference:     req.Reference,
	})
	if err != nil {
		rlog.Error("failed to record sale", "error", err, "location_id", req.LocationID, "reference", req.Reference)
		return nil, err
	}

	invalidateSummary(ctx, result.ShiftID)
	publishTransactionEvent(saleEvent(TransactionEventSale, result))

	return &TransactionResponse{
		Transaction: *result,
	}, nil
}

func (r *RecordSaleRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

type RecordRefundRequest struct {
	Amount string `json:"amount" validate:"required"`
	Reason string `json:"reason" validate:"max=255"`
}

type RefundResponse struct {
	Refund model.Refund `json:"refund"`
}

//encore:api public path=/v1/transactions/:id/refunds method=POST
func (s *Service) RecordRefund(ctx context.Context, id int64, req *RecordRefundRequest) (*RefundResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid transaction ID"}
	}
	amount, err := ledger.ParseAmount(req.Amount)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid refund amount"}
	}

	refund, txn, err := s.business.RecordRefund(ctx, id, amount, req.Reason)
	if err != nil {
		rlog.Error("failed to record refund", "error", err, "transaction_id", id)
		return nil, err
	}

	invalidateSummary(ctx, txn.ShiftID)
	event := saleEvent(TransactionEventRefund, txn)
	event.RefundID = &refund.ID
	event.AmountCents = refund.Amount.Cents()
	event.OccurredAt = refund.CreatedAt
	publishTransactionEvent(event)

	return &RefundResponse{
		Refund: *refund,
	}, nil
}

func (r *RecordRefundRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
