package api

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hyle-team/staking-strategy-svc/internal/api/ctx"
	srvhttp "github.com/hyle-team/staking-strategy-svc/internal/api/http"
	"github.com/hyle-team/staking-strategy-svc/internal/db"
	"github.com/hyle-team/staking-strategy-svc/internal/strategy"
	"github.com/pkg/errors"
	"gitlab.com/distributed_lab/ape"
	"gitlab.com/distributed_lab/logan/v3"
)

// Server exposes the strategy's read-only surface over HTTP: health, status,
// balances and the movement journal.
type Server struct {
	listener net.Listener

	logger       *logan.Entry
	ctxExtenders []func(context.Context) context.Context
}

func NewServer(
	listener net.Listener,
	s *strategy.Strategy,
	movements db.MovementsQ,
	logger *logan.Entry,
) *Server {
	return &Server{
		listener: listener,
		logger:   logger,

		ctxExtenders: []func(context.Context) context.Context{
			ctx.LoggerProvider(logger),
			ctx.StrategyProvider(s),
			ctx.MovementsProvider(movements),
		},
	}
}

func (s *Server) Run(ctxt context.Context) error {
	srv := &http.Server{Handler: s.router()}

	// graceful shutdown
	go func() {
		<-ctxt.Done()
		shutdownDeadline, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownDeadline); err != nil {
			s.logger.WithError(err).Error("failed to shutdown http server")
		}
		s.logger.Info("http serving stopped: context canceled")
	}()

	s.logger.Info("http serving started")
	if err := srv.Serve(s.listener); !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) router() http.Handler {
	router := chi.NewRouter()
	router.Use(
		ape.LoganMiddleware(s.logger),
		ape.RecoverMiddleware(s.logger),
		ape.CtxMiddleware(s.ctxExtenders...),
	)

	router.Get("/healthz", srvhttp.Health)
	router.Route("/strategy", func(r chi.Router) {
		r.Get("/status", srvhttp.Status)
		r.Get("/balance", srvhttp.Balance)
		r.Get("/movements", srvhttp.Movements)
	})

	return router
}
