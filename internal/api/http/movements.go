package http

import (
	"net/http"
	"time"

	"github.com/hyle-team/staking-strategy-svc/internal/api/ctx"
	"github.com/hyle-team/staking-strategy-svc/internal/api/requests"
	"github.com/hyle-team/staking-strategy-svc/internal/db"
	"gitlab.com/distributed_lab/ape"
	"gitlab.com/distributed_lab/ape/problems"
)

type movementResponse struct {
	Id        int64     `json:"id"`
	Kind      string    `json:"kind"`
	Amount    *string   `json:"amount,omitempty"`
	Recipient *string   `json:"recipient,omitempty"`
	Direction *string   `json:"direction,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func Movements(w http.ResponseWriter, r *http.Request) {
	selector, err := requests.NewListMovements(r)
	if err != nil {
		ape.RenderErr(w, problems.BadRequest(err)...)
		return
	}

	movements, err := ctx.Movements(r.Context()).Select(selector)
	if err != nil {
		ctx.Logger(r.Context()).WithError(err).Error("failed to select movements")
		ape.RenderErr(w, problems.InternalError())
		return
	}

	response := make([]movementResponse, len(movements))
	for i, movement := range movements {
		response[i] = newMovementResponse(movement)
	}

	ape.Render(w, response)
}

func newMovementResponse(movement db.Movement) movementResponse {
	return movementResponse{
		Id:        movement.Id,
		Kind:      movement.Kind,
		Amount:    movement.Amount,
		Recipient: movement.Recipient,
		Direction: movement.Direction,
		CreatedAt: movement.CreatedAt,
	}
}
