package ledger

import "strings"

// Tender is the reconciliation bucket a payment method falls into.
type Tender string

const (
	TenderCash     Tender = "cash"
	TenderCard     Tender = "card"
	TenderGiftCard Tender = "gift_card"
	TenderOther    Tender = "other"
)

var tenderAliases = map[string]Tender{
	"cash":        TenderCash,
	"card":        TenderCard,
	"credit":      TenderCard,
	"credit_card": TenderCard,
	"debit":       TenderCard,
	"debit_card":  TenderCard,
	"gift_card":   TenderGiftCard,
	"giftcard":    TenderGiftCard,
	"gift":        TenderGiftCard,
}

// ClassifyTender maps a raw transaction payment method onto a Tender.
// Unknown methods are reported as TenderOther.
func ClassifyTender(method string) Tender {
	key := strings.ToLower(strings.TrimSpace(method))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	if t, ok := tenderAliases[key]; ok {
		return t
	}
	return TenderOther
}

func (t Tender) IsCash() bool { return t == TenderCash }
