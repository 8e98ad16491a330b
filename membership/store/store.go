package store

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"tillpoint.app/membership/store/billingcycles"
	"tillpoint.app/membership/store/memberships"
)

// Store combines all domain-specific repositories
type Store struct {
	Memberships   memberships.Querier
	BillingCycles billingcycles.Querier
}

// NewStore creates a new Store with all domain queriers
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		Memberships:   memberships.New(db),
		BillingCycles: billingcycles.New(db),
	}
}
