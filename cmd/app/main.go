package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"negotiation/cmd"
	"negotiation/internal/adapters/out/postgres"
	"negotiation/internal/adapters/out/pubsub"
	"negotiation/internal/jobs"

	"github.com/bsm/redislock"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := newLogger(configs.LogLevel)

	if err := configs.Validate(); err != nil {
		logger.WithError(err).Fatal("Invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB := mustOpenDatabase(configs, logger)
	redisClient := mustConnectRedis(ctx, configs.RedisAddress, logger)
	defer redisClient.Close()

	psClient, err := pubsub.NewClient(ctx, configs.PubSubProjectID, configs.PubSubCredentialsJSON)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create pubsub client")
	}
	defer psClient.Close()

	publisher, err := pubsub.NewPublisher(psClient, configs.PubSubTopic)
	if err != nil {
		logger.WithError(err).Fatal("Failed to open pubsub topic")
	}
	defer publisher.Stop()

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	relayID := fmt.Sprintf("%s-%s", hostname(), uuid.NewString())
	jobManager := app.CreateJobManager(publisher, jobs.NewRedisLocker(redislock.New(redisClient)), relayID)
	if err := jobManager.StartAll(); err != nil {
		logger.WithError(err).Fatal("Failed to start jobs")
	}
	defer jobManager.StopAll()

	startWebServer(ctx, &app, configs, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Infof("No .env file loaded: %v", err)
	}

	config := cmd.Config{
		HTTPPort:              os.Getenv("HTTP_PORT"),
		DBHost:                os.Getenv("DB_HOST"),
		DBPort:                os.Getenv("DB_PORT"),
		DBUser:                os.Getenv("DB_USER"),
		DBPassword:            os.Getenv("DB_PASSWORD"),
		DBName:                os.Getenv("DB_NAME"),
		DBSslMode:             os.Getenv("DB_SSLMODE"),
		RedisAddress:          os.Getenv("REDIS_ADDRESS"),
		PubSubProjectID:       os.Getenv("PUBSUB_PROJECT_ID"),
		PubSubTopic:           os.Getenv("PUBSUB_TOPIC"),
		PubSubCredentialsJSON: os.Getenv("PUBSUB_CREDENTIALS_JSON"),
		LogLevel:              os.Getenv("LOG_LEVEL"),
		TimeoutSweepSchedule:  os.Getenv("TIMEOUT_SWEEP_SCHEDULE"),
		OutboxRelaySchedule:   os.Getenv("OUTBOX_RELAY_SCHEDULE"),
	}
	return config.WithDefaults()
}

func newLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logger.WithField("level", level).Warn("Unknown log level, using info")
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)
	return logger
}

func mustOpenDatabase(configs cmd.Config, logger *logrus.Logger) *gorm.DB {
	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to database")
	}

	if err := gormDB.Use(otelgorm.NewPlugin()); err != nil {
		logger.WithError(err).Warn("Failed to install otelgorm plugin")
	}

	if err := postgres.Migrate(gormDB); err != nil {
		logger.WithError(err).Fatal("Failed to migrate database")
	}
	return gormDB
}

func mustConnectRedis(ctx context.Context, address string, logger *logrus.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{Addr: address})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.WithError(err).WithField("address", address).Fatal("Failed to connect to redis")
	}
	return client
}

func hostname() string {
	name, err := os.Hostname()
	if err != nil {
		return "negotiation"
	}
	return name
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, configs cmd.Config, logger *logrus.Logger) {
	e, err := app.CreateRouter()
	if err != nil {
		logger.WithError(err).Fatal("Failed to build router")
	}
	e.Logger.SetLevel(gommonLevel(configs.LogLevel))
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			logger.WithFields(logrus.Fields{
				"component": "http",
				"method":    v.Method,
				"uri":       v.URI,
				"status":    v.Status,
				"latency":   v.Latency.String(),
			}).Debug("Request handled")
			return nil
		},
	}))

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("HTTP server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("HTTP server shutdown failed")
	}
}

func gommonLevel(level string) log.Lvl {
	switch level {
	case "debug", "trace":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error", "fatal", "panic":
		return log.ERROR
	default:
		return log.INFO
	}
}
