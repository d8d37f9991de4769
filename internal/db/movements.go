package db

import (
	"time"
)

// Movement is a journaled strategy signal: a queued or committed deposit, a
// delivered withdrawal, a threshold/registry/pause change or an emergency
// exit. Amounts are stored as decimal strings to survive uint256 ranges.
type Movement struct {
	Id        int64     `db:"id"`
	Kind      string    `db:"kind"`
	Amount    *string   `db:"amount"`
	Recipient *string   `db:"recipient"`
	Direction *string   `db:"direction"`
	CreatedAt time.Time `db:"created_at"`
}

type MovementsSelector struct {
	Kinds      []string
	PageSize   uint64
	PageNumber uint64
}

type MovementsQ interface {
	New() MovementsQ

	Insert(movement Movement) (int64, error)
	Get(id int64) (*Movement, error)
	Select(selector MovementsSelector) ([]Movement, error)

	Transaction(f func() error) error
}
