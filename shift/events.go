package shift

import (
	"context"
	"time"

	"encore.dev/pubsub"

	"tillpoint.app/shift/model"
)

type TransactionEventKind string

const (
	TransactionEventSale            TransactionEventKind = "sale"
	TransactionEventRefund          TransactionEventKind = "refund"
	TransactionEventRecurringCharge TransactionEventKind = "recurring_charge"
)

// TransactionEvent is published for every write to the sales ledger.
type TransactionEvent struct {
	Kind          TransactionEventKind `json:"kind"`
	TransactionID int64                `json:"transaction_id"`
	RefundID      *int64               `json:"refund_id,omitempty"`
	LocationID    string               `json:"location_id"`
	ShiftID       *int64               `json:"shift_id,omitempty"`
	MembershipID  *int64               `json:"membership_id,omitempty"`
	PaymentMethod string               `json:"payment_method"`
	AmountCents   int64                `json:"amount_cents"`
	OccurredAt    time.Time            `json:"occurred_at"`
}

var TransactionEvents = pubsub.NewTopic[*TransactionEvent]("transaction-events", pubsub.TopicConfig{
	DeliveryGuarantee: pubsub.AtLeastOnce,
})

// ShiftEvent carries a shift after every status change, for dashboards that
// follow the drawer live.
type ShiftEvent struct {
	ShiftID    int64             `json:"shift_id"`
	LocationID string            `json:"location_id"`
	Status     model.ShiftStatus `json:"status"`
	Shift      model.Shift       `json:"shift"`
	OccurredAt time.Time         `json:"occurred_at"`
}

var ShiftEvents = pubsub.NewTopic[*ShiftEvent]("shift-events", pubsub.TopicConfig{
	DeliveryGuarantee: pubsub.AtLeastOnce,
})

func publishShiftEvent(s *model.Shift) {
	event := &ShiftEvent{
		ShiftID:    s.ID,
		LocationID: s.LocationID,
		Status:     s.Status,
		Shift:      *s,
		OccurredAt: time.Now(),
	}
	runAsync("publish shift event", func(ctx context.Context) error {
		_, err := ShiftEvents.Publish(ctx, event)
		return err
	})
}

func publishTransactionEvent(event *TransactionEvent) {
	runAsync("publish transaction event", func(ctx context.Context) error {
		_, err := TransactionEvents.Publish(ctx, event)
		return err
	})
}

func saleEvent(kind TransactionEventKind, txn *model.Transaction) *TransactionEvent {
	return &TransactionEvent{
		Kind:          kind,
		TransactionID: txn.ID,
		LocationID:    txn.LocationID,
		ShiftID:       txn.ShiftID,
		MembershipID:  txn.MembershipID,
		PaymentMethod: txn.PaymentMethod,
		AmountCents:   txn.TotalAmount.Cents(),
		OccurredAt:    txn.CreatedAt,
	}
}
