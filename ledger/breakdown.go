package ledger

import (
	"github.com/samber/lo"
)

// Sale is one transaction as seen by reconciliation. Amount is already net of
// any refunds applied to the transaction itself.
type Sale struct {
	TransactionID int64
	Method        string
	Amount        Amount
}

// Refund is a standalone refund record tied to a transaction.
type Refund struct {
	TransactionID int64
	Amount        Amount
}

// SalesBreakdown groups sales by tender and carries refunds separately.
type SalesBreakdown struct {
	Cash        Amount `json:"cash"`
	Card        Amount `json:"card"`
	GiftCard    Amount `json:"gift_card"`
	Other       Amount `json:"other"`
	Refunds     Amount `json:"refunds"`
	CashRefunds Amount `json:"cash_refunds"`
}

// Breakdown sums sales by tender. Refunds are only counted against cash when
// the refunded transaction is itself a cash sale present in sales.
func Breakdown(sales []Sale, refunds []Refund) SalesBreakdown {
	byTender := lo.GroupBy(sales, func(s Sale) Tender { return ClassifyTender(s.Method) })
	sum := func(t Tender) Amount {
		return lo.SumBy(byTender[t], func(s Sale) Amount { return s.Amount })
	}

	cashIDs := lo.Associate(byTender[TenderCash], func(s Sale) (int64, struct{}) {
		return s.TransactionID, struct{}{}
	})
	cashRefunds := lo.Filter(refunds, func(r Refund, _ int) bool {
		_, ok := cashIDs[r.TransactionID]
		return ok
	})

	return SalesBreakdown{
		Cash:        sum(TenderCash),
		Card:        sum(TenderCard),
		GiftCard:    sum(TenderGiftCard),
		Other:       sum(TenderOther),
		Refunds:     lo.SumBy(refunds, func(r Refund) Amount { return r.Amount }),
		CashRefunds: lo.SumBy(cashRefunds, func(r Refund) Amount { return r.Amount }),
	}
}

// Total is the sum of all tender buckets, excluding standalone refunds.
func (b SalesBreakdown) Total() Amount {
	return Sum(b.Cash, b.Card, b.GiftCard, b.Other)
}

// ExpectedCash is the cash the drawer should hold: the opening float plus net
// cash sales, minus standalone cash refunds. Net sales are taken first and
// refunds subtracted separately; the two are never merged.
func (b SalesBreakdown) ExpectedCash(opening Amount) Amount {
	return opening.Add(b.Cash).Sub(b.CashRefunds)
}
