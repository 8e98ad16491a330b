package model

import (
	"time"
)

type BillingCycle struct {
	ID             int64              `json:"id"`
	MembershipID   int64              `json:"membership_id"`
	PeriodStart    time.Time          `json:"period_start"`
	PeriodEnd      time.Time          `json:"period_end"`
	AmountCents    int64              `json:"amount_cents"`
	Status         BillingCycleStatus `json:"status"`
	IdempotencyKey string             `json:"idempotency_key"`
	Invoice        *Invoice           `json:"invoice,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
}

type BillingCycleStatus string

const (
	BillingCycleStatusPending   BillingCycleStatus = "pending"
	BillingCycleStatusProcessed BillingCycleStatus = "processed"
)

type Invoice struct {
	ID                 int64         `json:"id"`
	BillingCycleID     int64         `json:"billing_cycle_id"`
	AmountCents        int64         `json:"amount_cents"`
	Status             InvoiceStatus `json:"status"`
	DueDate            time.Time     `json:"due_date"`
	ProcessorPaymentID *string       `json:"processor_payment_id,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
}

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)
