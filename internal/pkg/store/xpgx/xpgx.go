// Package xpgx adapts a pgx pool to squirrel builders and struct scanning.
package xpgx

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/cenkalti/backoff/v4"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ougirez/workforce-planner/internal/pkg/logger"
)

type Pool interface {
	Getx(ctx context.Context, dst interface{}, sqlizer sq.Sqlizer) error
	Selectx(ctx context.Context, dst interface{}, sqlizer sq.Sqlizer) error
	Ping(ctx context.Context) error
	Close()
}

type pool struct {
	*pgxpool.Pool
}

// NewPool connects to url, retrying the first ping up to maxRetries times.
func NewPool(ctx context.Context, url string, maxRetries uint64) (Pool, error) {
	pgxPool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}

	err = backoff.Retry(
		func() error {
			pingErr := pgxPool.Ping(ctx)
			if pingErr != nil {
				logger.Warnf(ctx, "database ping failed: %s", pingErr.Error())
			}
			return pingErr
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewExponentialBackOff(backoff.WithInitialInterval(200*time.Millisecond)), maxRetries),
			ctx,
		),
	)
	if err != nil {
		pgxPool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	return &pool{pgxPool}, nil
}

func (p *pool) Getx(ctx context.Context, dst interface{}, sqlizer sq.Sqlizer) error {
	query, args, err := sqlizer.ToSql()
	if err != nil {
		return fmt.Errorf("ToSql: %w", err)
	}
	return pgxscan.Get(ctx, p.Pool, dst, query, args...)
}

func (p *pool) Selectx(ctx context.Context, dst interface{}, sqlizer sq.Sqlizer) error {
	query, args, err := sqlizer.ToSql()
	if err != nil {
		return fmt.Errorf("ToSql: %w", err)
	}
	return pgxscan.Select(ctx, p.Pool, dst, query, args...)
}
