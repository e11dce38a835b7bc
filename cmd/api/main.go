// @title                       Auction Marketplace API
// @version                     1.0
// @description                 Users list products for auction and bid on products listed by others.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT token.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/99minutos/auction-marketplace/internal/api"
	"github.com/99minutos/auction-marketplace/internal/api/metrics"
	"github.com/99minutos/auction-marketplace/internal/core/service"
	"github.com/99minutos/auction-marketplace/internal/infrastructure/config"
	mongostore "github.com/99minutos/auction-marketplace/internal/infrastructure/db/mongo"
	"github.com/99minutos/auction-marketplace/internal/infrastructure/db/postgres"
	redisstore "github.com/99minutos/auction-marketplace/internal/infrastructure/db/redis"
	"github.com/99minutos/auction-marketplace/internal/infrastructure/http/handlers"
	"github.com/99minutos/auction-marketplace/internal/infrastructure/queue"
	miniostore "github.com/99minutos/auction-marketplace/internal/infrastructure/storage/minio"
	"github.com/99minutos/auction-marketplace/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log := logger.Init(logger.Options{Pretty: true})
		log.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "auction-marketplace",
	})

	// ── PostgreSQL ────────────────────────────────────────────
	db, err := postgres.Connect(ctx, postgres.Config{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connect")
	}
	defer postgres.Close(db)
	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("postgres migrate")
	}

	// ── MongoDB ──────────────────────────────────────────────
	mongoClient, mongoDB, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect")
	}
	defer mongoClient.Disconnect(context.Background())
	activityRepo := mongostore.NewActivityRepository(mongoDB)
	if err := activityRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("mongo indexes")
	}

	// ── Redis ────────────────────────────────────────────────
	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect")
	}
	defer rdb.Close()
	idempotency := redisstore.NewIdempotencyStore(rdb, cfg.Redis.IdempotencyTTL)

	// ── MinIO ────────────────────────────────────────────────
	pictures, err := miniostore.NewPictureStore(ctx, miniostore.Config{
		Endpoint:  cfg.Minio.Endpoint,
		AccessKey: cfg.Minio.AccessKey,
		SecretKey: cfg.Minio.SecretKey,
		Bucket:    cfg.Minio.Bucket,
		UseSSL:    cfg.Minio.UseSSL,
		PublicURL: cfg.Minio.PublicURL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("minio connect")
	}

	// ── Activity trail ───────────────────────────────────────
	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	dispatcher := queue.NewDispatcher(cfg.Activity.Workers, activityRepo, log)
	dispatcher.Start(workerCtx)

	// ── Services ─────────────────────────────────────────────
	productRepo := postgres.NewProductRepository(db)
	bidRepo := postgres.NewBidRepository(db)
	userRepo := postgres.NewUserRepository(db)
	tokens := service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	recorder := metrics.NewRecorder()
	auth := service.NewAuthService(userRepo, tokens, dispatcher)

	e := api.NewRouter(api.Dependencies{
		Products: service.NewProductService(productRepo, idempotency, pictures, dispatcher, recorder, log),
		Bids:     service.NewBidService(bidRepo, productRepo, idempotency, dispatcher, recorder, log),
		Users:    service.NewUserService(userRepo),
		Auth:     auth,
		Activity: service.NewActivityService(activityRepo),
		Verifier: auth,
		Logger:   log,
		Checks: []handlers.DependencyCheck{
			{Name: "postgres", Ping: func(ctx context.Context) error { return postgres.Ping(ctx, db) }},
			{Name: "mongodb", Ping: func(ctx context.Context) error { return mongostore.Ping(ctx, mongoDB) }},
			{Name: "redis", Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() }},
			{Name: "minio", Ping: pictures.Ping},
		},
		MaxPictureSize: cfg.Minio.MaxPictureSize,
	})

	// ── Server ───────────────────────────────────────────────
	go func() {
		log.Info().Str("port", cfg.Port).Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server error")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	// Requests are done; flush the pending audit events before closing the stores.
	cancelWorkers()
	dispatcher.Wait()
}
