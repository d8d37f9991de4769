package requests

import (
	"net/http"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hyle-team/staking-strategy-svc/internal/db"
	"github.com/hyle-team/staking-strategy-svc/internal/strategy"
	"github.com/pkg/errors"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

var knownKinds = []interface{}{
	string(strategy.EventDepositQueued),
	string(strategy.EventDepositCommitted),
	string(strategy.EventWithdrawn),
	string(strategy.EventThresholdUpdated),
	string(strategy.EventClusterUpdated),
	string(strategy.EventPauseToggled),
	string(strategy.EventEmergencyExit),
}

func NewListMovements(r *http.Request) (db.MovementsSelector, error) {
	selector := db.MovementsSelector{PageSize: defaultPageSize}

	if raw := r.URL.Query().Get("kind"); raw != "" {
		kinds := strings.Split(raw, ",")
		for _, kind := range kinds {
			if err := validation.Validate(kind, validation.In(knownKinds...)); err != nil {
				return selector, errors.Wrap(err, "invalid movement kind")
			}
		}
		selector.Kinds = kinds
	}

	if raw := r.URL.Query().Get("page_size"); raw != "" {
		size, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || size == 0 || size > maxPageSize {
			return selector, errors.New("invalid page size")
		}
		selector.PageSize = size
	}

	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return selector, errors.New("invalid page number")
		}
		selector.PageNumber = page
	}

	return selector, nil
}
