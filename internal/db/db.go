package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"adopta-match/internal/config"
)

// Límites del pool dimensionados para la carga del quiz: lecturas cortas y
// upserts chicos de respuestas, sin transacciones largas.
const (
	poolMaxConns          = 10
	poolMinConns          = 1
	poolConnMaxLifetime   = 30 * time.Minute
	poolConnMaxIdleTime   = 5 * time.Minute
	poolHealthCheckPeriod = 30 * time.Second
	connectTimeout        = 5 * time.Second
	startupPingTimeout    = 3 * time.Second
)

// NewPool construye el pool de conexiones y verifica conectividad antes de
// devolverlo: un arranque con la base inaccesible falla acá, no en el primer
// request.
func NewPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	poolCfg.MaxConns = poolMaxConns
	poolCfg.MinConns = poolMinConns
	poolCfg.MaxConnLifetime = poolConnMaxLifetime
	poolCfg.MaxConnIdleTime = poolConnMaxIdleTime
	poolCfg.HealthCheckPeriod = poolHealthCheckPeriod
	poolCfg.ConnConfig.ConnectTimeout = connectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, startupPingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}
