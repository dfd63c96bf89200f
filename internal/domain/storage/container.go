package storage

import (
	"context"
	"fmt"

	"storefront/internal/domain/admins"
	"storefront/internal/domain/catalog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Container struct {
	pool    *pgxpool.Pool
	Catalog catalog.Store
	Admins  admins.Store
}

func NewContainer(db *pgxpool.Pool) *Container {
	return &Container{
		pool:    db,
		Catalog: catalog.NewRepository(db),
		Admins:  admins.NewRepository(db),
	}
}

// Ping checks the database. A container built without a pool (tests) is
// always healthy.
func (c *Container) Ping(ctx context.Context) error {
	if c.pool == nil {
		return nil
	}
	return c.pool.Ping(ctx)
}

// Tx is a tx-scoped set of repos for atomic units of work.
type Tx struct {
	Catalog catalog.Store
	Admins  admins.Store
}

// WithTx runs fn atomically; any error rolls everything back.
func (c *Container) WithTx(ctx context.Context, fn func(s *Tx) error) error {
	if c.pool == nil {
		return fmt.Errorf("storage container pool is nil")
	}

	tx, err := c.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback(ctx) // safe even if already committed
	}()

	s := &Tx{
		Catalog: catalog.NewRepository(tx),
		Admins:  admins.NewRepository(tx),
	}

	if err := fn(s); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
