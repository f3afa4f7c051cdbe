package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"nft-ticket-ledger/config"
	"nft-ticket-ledger/internal/cache"
	"nft-ticket-ledger/internal/database"
	"nft-ticket-ledger/internal/handler"
	"nft-ticket-ledger/internal/queue"
	"nft-ticket-ledger/internal/repository"
	"nft-ticket-ledger/internal/repository/memory"
	"nft-ticket-ledger/internal/service"
	"nft-ticket-ledger/internal/worker"
	"nft-ticket-ledger/migrations"
	"nft-ticket-ledger/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config.LoadConfig()); err != nil {
		logger.WithComponent("server").Fatal("server exited", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	log := logger.WithComponent("server")
	if err := logger.SetLevel(cfg.Log.Level); err != nil {
		log.Warn("invalid LOG_LEVEL, keeping info", zap.String("level", cfg.Log.Level))
	}

	var rdb *redis.Client
	if cfg.UsesRedis() {
		var err error
		rdb, err = database.InitRedis(ctx, &cfg.Redis)
		if err != nil {
			return err
		}
		defer rdb.Close()
	}

	repos, instanceID, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	ledgerQueue, err := openQueue(ctx, cfg, rdb)
	if err != nil {
		return err
	}

	var soldOut cache.SoldOutCache
	if rdb != nil {
		soldOut = cache.NewRedisSoldOutCache(rdb, instanceID)
	}

	ledger := service.NewLedgerService(repos, soldOut, ledgerQueue)
	if warmed, err := ledger.WarmSoldOut(ctx); err != nil {
		log.Warn("failed to warm sold-out cache", zap.Error(err))
	} else {
		log.Info("sold-out cache warmed", zap.Int("events", warmed))
	}

	if err := worker.NewLedgerWorker(ledger, ledgerQueue).Start(ctx); err != nil {
		return err
	}

	router := gin.Default()
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
	handler.NewEventHandler(ledger, cfg.Server.CallerHeader).RegisterRoutes(router)
	handler.NewTicketHandler(ledger, cfg.Server.CallerHeader).RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening",
			zap.String("addr", cfg.Server.Addr),
			zap.String("store", cfg.Ledger.Store),
			zap.String("queue", cfg.Ledger.Queue),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openStore 依 LEDGER_STORE 建立 repository，並回傳帳本 instance id 作為快取 namespace。
// 回傳的 close 負責釋放連線。
func openStore(ctx context.Context, cfg *config.Config) (service.Repositories, string, func(), error) {
	if cfg.Ledger.Store == config.StoreMemory {
		// 記憶體帳本每次啟動都是新的帳本
		store := memory.NewStore()
		return service.Repositories{
			Tx:         store,
			Counters:   store.Counters(),
			Events:     store.Events(),
			Tickets:    store.Tickets(),
			OwnerIndex: store.OwnerIndex(),
		}, uuid.NewString(), func() {}, nil
	}

	pool, err := database.InitDatabase(ctx, &cfg.Database)
	if err != nil {
		return service.Repositories{}, "", nil, err
	}
	if err := migrations.Apply(ctx, pool); err != nil {
		pool.Close()
		return service.Repositories{}, "", nil, err
	}
	instanceID, err := database.LedgerInstanceID(ctx, pool)
	if err != nil {
		pool.Close()
		return service.Repositories{}, "", nil, err
	}
	return service.Repositories{
		Tx:         database.NewTxManager(pool),
		Counters:   repository.NewCounterRepository(pool),
		Events:     repository.NewEventRepository(pool),
		Tickets:    repository.NewTicketRepository(pool),
		OwnerIndex: repository.NewOwnerIndexRepository(pool),
	}, instanceID, pool.Close, nil
}

func openQueue(ctx context.Context, cfg *config.Config, rdb *redis.Client) (queue.LedgerQueue, error) {
	if cfg.Ledger.Queue == config.QueueRedis && rdb != nil {
		return queue.NewRedisStreamLedgerQueue(ctx, rdb, cfg.Ledger.ConsumerID, nil)
	}
	return queue.NewLedgerQueue(cfg.Ledger.QueueBuffer), nil
}
