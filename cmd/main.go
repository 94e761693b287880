package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/suifund/crowdfunding-gobackend/internal/config"
	"github.com/suifund/crowdfunding-gobackend/internal/db"
	"github.com/suifund/crowdfunding-gobackend/internal/events"
	"github.com/suifund/crowdfunding-gobackend/internal/handlers"
	"github.com/suifund/crowdfunding-gobackend/internal/ledger"
	"github.com/suifund/crowdfunding-gobackend/internal/lock"
	"github.com/suifund/crowdfunding-gobackend/internal/services"
	"github.com/suifund/crowdfunding-gobackend/internal/store"
	"go.uber.org/zap"
)

func main() {
	configDir := flag.String("c", ".", "Directory holding .env and config.yaml")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := config.NewLogger(&cfg.Log)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Fatal("Application stopped with error", zap.Error(err))
	}
}

// run wires storage, the ledger client and optional Kafka/Redis into the HTTP
// server and blocks until a shutdown signal arrives.
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	client, err := db.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.ConnectTimeout, logger)
	if err != nil {
		return err
	}
	defer db.Disconnect(client, 10*time.Second, logger)

	database := client.Database(cfg.Mongo.Database)
	campaignStore := store.NewCampaignStore(database)
	transactionStore := store.NewTransactionStore(database)

	indexCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := campaignStore.EnsureIndexes(indexCtx); err != nil {
		return err
	}
	if err := transactionStore.EnsureIndexes(indexCtx); err != nil {
		return err
	}
	logger.Info("Indexes ensured", zap.String("database", cfg.Mongo.Database))

	sui, err := ledger.DialSui(ctx, cfg.Ledger.RPCURL, cfg.Ledger.Timeout, logger)
	if err != nil {
		return err
	}
	defer sui.Close()

	var publisher events.Publisher = events.NopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
	} else {
		logger.Info("No Kafka brokers configured, donation events disabled")
	}
	defer publisher.Close()

	var guard services.DigestGuard
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()
		guard = lock.NewRedisDigestGuard(rdb, cfg.Lock.TTL, logger)
		logger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	} else {
		claims := lock.NewMongoDigestGuard(database, cfg.Lock.TTL, logger)
		if err := claims.EnsureIndexes(indexCtx); err != nil {
			return err
		}
		guard = claims
		logger.Info("No Redis configured, digest claims kept in MongoDB")
	}

	campaignService := services.NewCampaignService(campaignStore, logger)
	donationService := services.NewDonationService(campaignStore, transactionStore, sui, publisher, guard, logger)
	transactionService := services.NewTransactionService(transactionStore, logger)

	router := handlers.NewRouter(handlers.RouterDeps{
		Campaigns:    handlers.NewCampaignHandler(campaignService, logger),
		Donations:    handlers.NewDonationHandler(donationService, logger),
		Transactions: handlers.NewTransactionHandler(transactionService, logger),
		CORSOrigins:  cfg.Server.CORSOrigins,
		Logger:       logger,
	})

	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Server running", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Info("Shutdown signal received, stopping HTTP server")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	logger.Info("HTTP server stopped gracefully")
	return nil
}
