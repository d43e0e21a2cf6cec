package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gitlab.com/pala-software/ignition/pkg/boot"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

var name = "gitlab.com/pala-software/ignition/pkg/database"
var logger = otelslog.NewLogger(name)

type Database struct{}

func DatabaseFromEnv() *Database {
	return &Database{}
}

func (feature *Database) Provider() any {
	return func(env *boot.Environment) (
		self *Database,
		pool *pgxpool.Pool,
		err error,
	) {
		self = feature

		connStr, err := env.Require("DB")
		if err != nil {
			return
		}

		pool, err = pgxpool.New(context.Background(), connStr)
		return
	}
}

func (feature *Database) Invoker() any {
	return func(
		lifecycle *boot.Lifecycle,
		pool *pgxpool.Pool,
	) (err error) {
		lifecycle.Start.Register(func() error {
			ctx, cancel := context.WithTimeout(
				context.Background(),
				5*time.Second,
			)
			defer cancel()

			if err := pool.Ping(ctx); err != nil {
				return err
			}

			logger.Info("database connected")
			return nil
		})

		lifecycle.Shutdown.Register(func() error {
			pool.Close()
			return nil
		})

		return
	}
}
