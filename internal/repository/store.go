// Package repository selects the user store backend.
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/dtroode/wedwisely-server/internal/config"
	"github.com/dtroode/wedwisely-server/internal/model"
	"github.com/dtroode/wedwisely-server/internal/repository/memory"
	"github.com/dtroode/wedwisely-server/internal/repository/mongodb"
	"github.com/dtroode/wedwisely-server/internal/repository/postgres"
)

// CloseFunc releases whatever Open acquired.
type CloseFunc func(ctx context.Context) error

// Open returns the user store named by driver.
func Open(ctx context.Context, driver config.StoreDriver, mongo config.Mongo, pg config.Postgres) (model.UserStore, CloseFunc, error) {
	switch driver {
	case config.StoreMemory:
		return memory.NewUserRepository(), func(context.Context) error { return nil }, nil
	case config.StoreMongo:
		connectCtx, cancel := context.WithTimeout(ctx, connectTimeout(mongo.ConnectTimeout))
		defer cancel()

		conn, err := mongodb.NewConnection(connectCtx, mongo.URI, mongo.Database)
		if err != nil {
			return nil, nil, err
		}
		return mongodb.NewUserRepository(conn), conn.Close, nil
	case config.StorePostgres:
		connectCtx, cancel := context.WithTimeout(ctx, connectTimeout(pg.ConnectTimeout))
		defer cancel()

		conn, err := postgres.NewConnection(connectCtx, pg.DSN)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewUserRepository(conn.DB), conn.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", driver)
	}
}

func connectTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return 10 * time.Second
	}
	return d
}
