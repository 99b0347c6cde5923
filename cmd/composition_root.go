package cmd

import (
	"log/slog"
	"time"

	httpin "smartlogix/internal/adapters/in/http"
	"smartlogix/internal/adapters/out/events"
	"smartlogix/internal/adapters/out/notify"
	"smartlogix/internal/adapters/out/postgres"
	"smartlogix/internal/adapters/out/postgres/tenantrepo"
	"smartlogix/internal/adapters/out/postgres/userrepo"
	"smartlogix/internal/adapters/out/redisbroker"
	"smartlogix/internal/core/application/usecases/commands"
	"smartlogix/internal/core/application/usecases/queries"
	"smartlogix/internal/core/ports"
	"smartlogix/internal/jobs"
	"smartlogix/internal/pkg/token"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	hub        *notify.TenantHub
	broker     *redisbroker.Broker
	publisher  *events.Publisher
	issuer     *token.Issuer
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	ttl, err := time.ParseDuration(config.JWTTTL)
	if err != nil {
		return nil, err
	}

	issuer, err := token.NewIssuer(config.JWTSecret, ttl)
	if err != nil {
		return nil, err
	}

	hub := notify.NewTenantHub()

	var sink events.BrokerSink
	var broker *redisbroker.Broker
	if config.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     config.RedisAddr,
			Password: config.RedisPassword,
		})
		broker = redisbroker.NewBroker(client, config.OrderEventsTopic)
		sink = broker
	}

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		hub:        hub,
		broker:     broker,
		publisher:  events.NewPublisher(sink, hub, logger),
		issuer:     issuer,
		logger:     logger,
	}, nil
}

// Close releases resources held by outbound adapters.
func (c *CompositionRoot) Close() {
	c.hub.Close()
	if c.broker != nil {
		if err := c.broker.Close(); err != nil {
			c.logger.Error("Failed to close broker", "error", err)
		}
	}
}

// TenantRepository returns a tenant repository bound to the main
// connection, for use outside unit-of-work transactions.
func (c *CompositionRoot) TenantRepository() ports.TenantRepository {
	return tenantrepo.NewGormTenantRepository(c.gormDB, postgres.NullTracker{})
}

// UserRepository returns a user repository bound to the main connection,
// used by the HTTP layer for creator attribution lookups.
func (c *CompositionRoot) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(c.gormDB, postgres.NullTracker{})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateTransitionOrderStatusCommandHandler() commands.TransitionOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderStatusCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateImportOrdersCommandHandler() commands.ImportOrdersCommandHandler {
	var f commands.ImportUoWFactory = FuncImportUoWFactory(func() commands.ImportUoW {
		return c.uowFactory.Create()
	})
	return commands.NewImportOrdersCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCreateTenantCommandHandler() commands.CreateTenantCommandHandler {
	var f commands.TenantUoWFactory = FuncTenantUoWFactory(func() commands.TenantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTenantCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.AuthUoWFactory = FuncAuthUoWFactory(func() commands.AuthUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStatusSummaryQueryHandler() queries.GetStatusSummaryQueryHandler {
	return queries.NewGetStatusSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserForLoginQueryHandler() queries.GetUserForLoginQueryHandler {
	return queries.NewGetUserForLoginQueryHandler(c.gormDB)
}

// CreateServer assembles the HTTP server over all use case handlers.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateRegisterUserCommandHandler(),
		c.CreateCreateOrderCommandHandler(),
		c.CreateTransitionOrderStatusCommandHandler(),
		c.CreateImportOrdersCommandHandler(),
		c.CreateCreateTenantCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetOrdersQueryHandler(),
		c.CreateGetStatusSummaryQueryHandler(),
		c.CreateGetUserForLoginQueryHandler(),
		c.issuer,
		c.publisher,
		c.UserRepository(),
	)
}

// CreateJobManager assembles the scheduled jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.config.ImportInboxDir,
		c.TenantRepository(),
		c.CreateImportOrdersCommandHandler(),
		c.logger,
	)
}

// Issuer returns the token issuer shared with the HTTP middleware.
func (c *CompositionRoot) Issuer() *token.Issuer {
	return c.issuer
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncTenantUoWFactory func() commands.TenantUoW

func (f FuncTenantUoWFactory) Create() commands.TenantUoW {
	return f()
}

type FuncAuthUoWFactory func() commands.AuthUoW

func (f FuncAuthUoWFactory) Create() commands.AuthUoW {
	return f()
}

type FuncImportUoWFactory func() commands.ImportUoW

func (f FuncImportUoWFactory) Create() commands.ImportUoW {
	return f()
}
