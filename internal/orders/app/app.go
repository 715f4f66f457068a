package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/errgroup"

	"github.com/daitlovv/gozon-shop/internal/events"
	"github.com/daitlovv/gozon-shop/internal/inbox"
	httpapp "github.com/daitlovv/gozon-shop/internal/orders/app/http"
	"github.com/daitlovv/gozon-shop/internal/orders/cache"
	"github.com/daitlovv/gozon-shop/internal/orders/config"
	"github.com/daitlovv/gozon-shop/internal/orders/consumer"
	orders_http "github.com/daitlovv/gozon-shop/internal/orders/delivery/http"
	createHandler "github.com/daitlovv/gozon-shop/internal/orders/delivery/http/order/create"
	getHandler "github.com/daitlovv/gozon-shop/internal/orders/delivery/http/order/get"
	"github.com/daitlovv/gozon-shop/internal/orders/domain/models"
	orderRepository "github.com/daitlovv/gozon-shop/internal/orders/repository/order"
	orderCreationService "github.com/daitlovv/gozon-shop/internal/orders/services/order/create"
	orderRetrievalService "github.com/daitlovv/gozon-shop/internal/orders/services/order/get"
	orderSettlementService "github.com/daitlovv/gozon-shop/internal/orders/services/order/settle"
	outboxSendService "github.com/daitlovv/gozon-shop/internal/orders/services/outbox/send"
	"github.com/daitlovv/gozon-shop/internal/outbox"
	"github.com/daitlovv/gozon-shop/pkg/brokers/rabbitmq"
	"github.com/daitlovv/gozon-shop/pkg/databases/postgres"
	"github.com/daitlovv/gozon-shop/pkg/logger"
)

func Run() {
	cfg := config.InitConfig()

	log := logger.NewSlogLogger(logger.SlogEnvironment(cfg.Env))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.NewPostgresDB(ctx, log, postgresDSN(&cfg.Postgres))
	if err != nil {
		panic(fmt.Sprintf("failed to connect to postgres: %v", err))
	}

	broker, err := rabbitmq.New(ctx, log, cfg.Rabbit.URL)
	if err != nil {
		panic(fmt.Sprintf("failed to connect to rabbitmq: %v", err))
	}

	// both routes are declared here so that whichever service starts first
	// sets the topology up for the other one as well
	if err = broker.DeclareDirect(events.OrdersExchange, events.PaymentsQueue, events.PaymentRequestKey); err != nil {
		panic(fmt.Sprintf("failed to declare orders topology: %v", err))
	}
	if err = broker.DeclareDirect(events.PaymentsExchange, events.ResultsQueue, events.PaymentResultKey); err != nil {
		panic(fmt.Sprintf("failed to declare payments topology: %v", err))
	}

	outboxRepo := outbox.NewRepository(log, db.GetDB())
	orderRepo := orderRepository.NewRepository(log, db.GetDB(), outboxRepo)

	orderCache := setupCache(log)

	orderCreationSvc := orderCreationService.New(log, orderRepo)
	orderRetrievalSvc := orderRetrievalService.New(log, orderCache, orderRepo)
	orderSettlementSvc := orderSettlementService.New(log, orderRepo)

	guard := inbox.NewGuard(log, db.GetDB())
	resultConsumer := consumer.NewPaymentResultConsumer(log, broker, guard, orderSettlementSvc)

	publisher := outbox.NewPublisher(
		log,
		outboxRepo,
		outboxSendService.New(log, broker),
		time.Duration(cfg.Outbox.InitialDelaySeconds)*time.Second,
		time.Duration(cfg.Outbox.IntervalSeconds)*time.Second,
		cfg.Outbox.BatchSize,
	)

	handler := orders_http.NewHandler(
		log,
		createHandler.NewHandler(log, orderCreationSvc),
		getHandler.NewHandler(log, orderRetrievalSvc),
	)

	httpServer := httpapp.NewApp(log, handler.InitRoutes(), cfg.HTTP.Port)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error { return publisher.Run(gCtx) })
	g.Go(func() error { return resultConsumer.Run(gCtx) })

	go httpServer.RunWithPanic()

	log.Info("orders service started")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop

	log.Info("stopping orders service")

	cancel()

	if err = g.Wait(); err != nil {
		log.Error("background workers stopped with error", logger.Err(err))
	}

	if err = httpServer.Stop(context.Background()); err != nil {
		panic(fmt.Sprintf("failed to shutdown http server: %v", err))
	}

	if err = broker.Close(); err != nil {
		log.Error("failed to close rabbitmq", logger.Err(err))
	}

	if err = db.Close(); err != nil {
		panic(fmt.Sprintf("failed to close postgres: %v", err))
	}

	log.Info("orders service stopped")
}

func postgresDSN(psqlCfg *config.PostgresConfig) string {
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=%s",
		psqlCfg.Host, psqlCfg.Port, psqlCfg.User, psqlCfg.DbName, psqlCfg.Pwd, psqlCfg.SslMode)
}

func setupCache(log logger.Logger) *cache.Cache {
	hashicorpCache := expirable.NewLRU[uuid.UUID, *models.Order](256, nil, time.Minute*10)

	return cache.NewCache(hashicorpCache, log)
}
