package http

import (
	"net/http"

	"github.com/hyle-team/staking-strategy-svc/internal/api/ctx"
	"gitlab.com/distributed_lab/ape"
)

type healthResponse struct {
	Ok bool `json:"ok"`
}

// Health checks that both the journal database and the chain RPC answer.
func Health(w http.ResponseWriter, r *http.Request) {
	response := healthResponse{Ok: true}

	if _, err := ctx.Movements(r.Context()).Get(0); err != nil {
		ctx.Logger(r.Context()).WithError(err).Error("movements storage unreachable")
		response.Ok = false
	}
	if _, err := ctx.Strategy(r.Context()).CooldownActive(r.Context()); err != nil {
		ctx.Logger(r.Context()).WithError(err).Error("staking pool unreachable")
		response.Ok = false
	}

	if !response.Ok {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	ape.Render(w, response)
}
