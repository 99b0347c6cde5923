// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, persistence and, where relevant, event
// publishing after a successful commit.
package commands

import (
	"context"

	"smartlogix/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Handlers declare the narrowest repository surface they need.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TenantRepoFactory provides access to the tenant repository within a
	// transaction.
	TenantRepoFactory interface {
		TenantRepository() ports.TenantRepository
	}

	// UserRepoFactory provides access to the user repository within a
	// transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// CheckpointRepoFactory provides access to the import checkpoint
	// repository within a transaction.
	CheckpointRepoFactory interface {
		ImportCheckpointRepository() ports.ImportCheckpointRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// TenantUoW manages transactions for tenant-only operations.
	TenantUoW interface {
		TxManager
		TenantRepoFactory
	}

	// TenantUoWFactory creates new tenant unit of work instances.
	TenantUoWFactory interface {
		Create() TenantUoW
	}

	// AuthUoW manages transactions spanning tenants and users, used by
	// registration which may provision both in one transaction.
	AuthUoW interface {
		TxManager
		TenantRepoFactory
		UserRepoFactory
	}

	// AuthUoWFactory creates new auth unit of work instances.
	AuthUoWFactory interface {
		Create() AuthUoW
	}

	// ImportUoW manages transactions spanning orders and import
	// checkpoints. Each import chunk commits its orders and its checkpoint
	// atomically through one of these.
	ImportUoW interface {
		TxManager
		OrderRepoFactory
		CheckpointRepoFactory
	}

	// ImportUoWFactory creates new import unit of work instances.
	ImportUoWFactory interface {
		Create() ImportUoW
	}
)
