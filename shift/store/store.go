package store

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"tillpoint.app/shift/store/sales"
	"tillpoint.app/shift/store/shifts"
)

// Store combines the shift service repositories
type Store struct {
	Shifts *shifts.Queries
	Sales  *sales.Queries
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		Shifts: shifts.New(db),
		Sales:  sales.New(db),
	}
}
