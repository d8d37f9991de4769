package ctx

import (
	"context"

	"github.com/hyle-team/staking-strategy-svc/internal/db"
	"github.com/hyle-team/staking-strategy-svc/internal/strategy"
	"gitlab.com/distributed_lab/logan/v3"
)

type ctxKey int

const (
	loggerKey ctxKey = iota
	strategyKey
	movementsKey
)

func LoggerProvider(entry *logan.Entry) func(context.Context) context.Context {
	return func(ctx context.Context) context.Context {
		return context.WithValue(ctx, loggerKey, entry)
	}
}

func Logger(ctx context.Context) *logan.Entry {
	return ctx.Value(loggerKey).(*logan.Entry)
}

func StrategyProvider(s *strategy.Strategy) func(context.Context) context.Context {
	return func(ctx context.Context) context.Context {
		return context.WithValue(ctx, strategyKey, s)
	}
}

func Strategy(ctx context.Context) *strategy.Strategy {
	return ctx.Value(strategyKey).(*strategy.Strategy)
}

func MovementsProvider(q db.MovementsQ) func(context.Context) context.Context {
	return func(ctx context.Context) context.Context {
		return context.WithValue(ctx, movementsKey, q)
	}
}

// Movements always returns a unique connection
func Movements(ctx context.Context) db.MovementsQ {
	return ctx.Value(movementsKey).(db.MovementsQ).New()
}
