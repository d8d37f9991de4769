package http

import (
	"net/http"

	"github.com/hyle-team/staking-strategy-svc/internal/api/ctx"
	"gitlab.com/distributed_lab/ape"
	"gitlab.com/distributed_lab/ape/problems"
)

type balanceResponse struct {
	Current     string `json:"current"`
	Queued      string `json:"queued"`
	Harvestable string `json:"harvestable"`
}

func Balance(w http.ResponseWriter, r *http.Request) {
	s := ctx.Strategy(r.Context())

	current, err := s.CurrentBalance(r.Context())
	if err != nil {
		ctx.Logger(r.Context()).WithError(err).Error("failed to read current balance")
		ape.RenderErr(w, problems.InternalError())
		return
	}
	queued, err := s.QueuedBalance(r.Context())
	if err != nil {
		ctx.Logger(r.Context()).WithError(err).Error("failed to read queued balance")
		ape.RenderErr(w, problems.InternalError())
		return
	}
	harvestable, err := s.Harvestable(r.Context())
	if err != nil {
		ctx.Logger(r.Context()).WithError(err).Error("failed to read harvestable balance")
		ape.RenderErr(w, problems.InternalError())
		return
	}

	ape.Render(w, balanceResponse{
		Current:     current.String(),
		Queued:      queued.String(),
		Harvestable: harvestable.String(),
	})
}
