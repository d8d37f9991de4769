package http

import (
	"net/http"

	"github.com/hyle-team/staking-strategy-svc/internal/api/ctx"
	"gitlab.com/distributed_lab/ape"
	"gitlab.com/distributed_lab/ape/problems"
)

type statusResponse struct {
	Name              string `json:"name"`
	Description       string `json:"description"`
	DepositsPaused    bool   `json:"deposits_paused"`
	WithdrawalsPaused bool   `json:"withdrawals_paused"`
	DepositThreshold  string `json:"deposit_threshold"`
	RedemptionMode    string `json:"redemption_mode"`
}

const (
	redemptionModeImmediate = "immediate"
	redemptionModeCooldown  = "cooldown"
)

func Status(w http.ResponseWriter, r *http.Request) {
	s := ctx.Strategy(r.Context())

	cooldownActive, err := s.CooldownActive(r.Context())
	if err != nil {
		ctx.Logger(r.Context()).WithError(err).Error("failed to read redemption mode")
		ape.RenderErr(w, problems.InternalError())
		return
	}

	mode := redemptionModeImmediate
	if cooldownActive {
		mode = redemptionModeCooldown
	}

	ape.Render(w, statusResponse{
		Name:              s.Name(),
		Description:       s.Description(),
		DepositsPaused:    s.DepositsPaused(),
		WithdrawalsPaused: s.WithdrawalsPaused(),
		DepositThreshold:  s.DepositThreshold().String(),
		RedemptionMode:    mode,
	})
}
