package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smartlogix/cmd"
	httpin "smartlogix/internal/adapters/in/http"
	"smartlogix/internal/adapters/out/postgres/checkpointrepo"
	"smartlogix/internal/adapters/out/postgres/orderrepo"
	"smartlogix/internal/adapters/out/postgres/tenantrepo"
	"smartlogix/internal/adapters/out/postgres/userrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	gormDB, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}
	defer app.Close()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	if err = runWebServer(app, configs.HTTPPort); err != nil {
		log.Fatalf("Server stopped with error: %v", err)
	}
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:        goDotEnvVariable("REDIS_ADDR"),
		RedisPassword:    goDotEnvVariable("REDIS_PASSWORD"),
		OrderEventsTopic: goDotEnvVariable("ORDER_EVENTS_TOPIC"),
		JWTSecret:        goDotEnvVariable("JWT_SECRET"),
		JWTTTL:           goDotEnvVariable("JWT_TTL"),
		ImportInboxDir:   goDotEnvVariable("IMPORT_INBOX_DIR"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError turns driver duplicate-key failures into
	// gorm.ErrDuplicatedKey, which the repositories rely on.
	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	err = gormDB.AutoMigrate(
		&tenantrepo.TenantDTO{},
		&userrepo.UserDTO{},
		&orderrepo.OrderDTO{},
		&checkpointrepo.CheckpointDTO{},
	)
	if err != nil {
		return nil, err
	}

	return gormDB, nil
}

func runWebServer(app *cmd.CompositionRoot, port string) error {
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())

	server := app.CreateServer()
	server.RegisterRoutes(e, httpin.TenantBinding(app.Issuer(), app.TenantRepository()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		err := e.Start(fmt.Sprintf("0.0.0.0:%s", port))
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return group.Wait()
}
