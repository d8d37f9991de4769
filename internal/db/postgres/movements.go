package pg

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/hyle-team/staking-strategy-svc/internal/db"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gitlab.com/distributed_lab/kit/pgdb"
)

const (
	movementsTable = "movements"

	movementsId        = "id"
	movementsKind      = "kind"
	movementsAmount    = "amount"
	movementsRecipient = "recipient"
	movementsDirection = "direction"
	movementsCreatedAt = "created_at"
)

type movementsQ struct {
	db       *pgdb.DB
	selector squirrel.SelectBuilder
}

func NewMovementsQ(db *pgdb.DB) db.MovementsQ {
	return &movementsQ{
		db:       db.Clone(),
		selector: squirrel.Select("*").From(movementsTable),
	}
}

func (m *movementsQ) New() db.MovementsQ {
	return NewMovementsQ(m.db.Clone())
}

func (m *movementsQ) Insert(movement db.Movement) (int64, error) {
	stmt := squirrel.
		Insert(movementsTable).
		SetMap(map[string]interface{}{
			movementsKind:      movement.Kind,
			movementsAmount:    movement.Amount,
			movementsRecipient: movement.Recipient,
			movementsDirection: movement.Direction,
		}).
		Suffix("RETURNING id")

	var id int64
	if err := m.db.Get(&id, stmt); err != nil {
		return id, err
	}

	return id, nil
}

func (m *movementsQ) Get(id int64) (*db.Movement, error) {
	var movement db.Movement
	err := m.db.Get(&movement, m.selector.Where(squirrel.Eq{movementsId: id}))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	return &movement, err
}

func (m *movementsQ) Select(selector db.MovementsSelector) ([]db.Movement, error) {
	query := m.applySelector(selector, m.selector)

	var movements []db.Movement
	if err := m.db.Select(&movements, query); err != nil {
		return nil, err
	}

	return movements, nil
}

func (m *movementsQ) Transaction(f func() error) error {
	return m.db.Transaction(f)
}

func (m *movementsQ) applySelector(selector db.MovementsSelector, sql squirrel.SelectBuilder) squirrel.SelectBuilder {
	if len(selector.Kinds) > 0 {
		sql = sql.Where(squirrel.Expr(movementsKind+" = ANY(?)", pq.StringArray(selector.Kinds)))
	}

	if selector.PageSize > 0 {
		sql = sql.Limit(selector.PageSize).Offset(selector.PageNumber * selector.PageSize)
	}

	return sql.OrderBy(movementsId + " DESC")
}
