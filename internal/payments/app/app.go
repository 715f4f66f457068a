package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/daitlovv/gozon-shop/internal/events"
	"github.com/daitlovv/gozon-shop/internal/inbox"
	"github.com/daitlovv/gozon-shop/internal/outbox"
	httpapp "github.com/daitlovv/gozon-shop/internal/payments/app/http"
	"github.com/daitlovv/gozon-shop/internal/payments/config"
	"github.com/daitlovv/gozon-shop/internal/payments/consumer"
	payments_http "github.com/daitlovv/gozon-shop/internal/payments/delivery/http"
	balanceHandler "github.com/daitlovv/gozon-shop/internal/payments/delivery/http/account/balance"
	createHandler "github.com/daitlovv/gozon-shop/internal/payments/delivery/http/account/create"
	depositHandler "github.com/daitlovv/gozon-shop/internal/payments/delivery/http/account/deposit"
	accountRepository "github.com/daitlovv/gozon-shop/internal/payments/repository/account"
	accountService "github.com/daitlovv/gozon-shop/internal/payments/services/account"
	orchestratorService "github.com/daitlovv/gozon-shop/internal/payments/services/orchestrator"
	outboxSendService "github.com/daitlovv/gozon-shop/internal/payments/services/outbox/send"
	withdrawalService "github.com/daitlovv/gozon-shop/internal/payments/services/withdrawal"
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
	accountRepo := accountRepository.NewRepository(log, db.GetDB())

	accountSvc := accountService.New(log, accountRepo)
	withdrawalSvc := withdrawalService.New(log, accountRepo)
	orchestratorSvc := orchestratorService.New(log, withdrawalSvc, outboxRepo)

	guard := inbox.NewGuard(log, db.GetDB())
	requestConsumer := consumer.NewPaymentRequestConsumer(log, broker, guard, orchestratorSvc)

	publisher := outbox.NewPublisher(
		log,
		outboxRepo,
		outboxSendService.New(log, broker),
		time.Duration(cfg.Outbox.InitialDelaySeconds)*time.Second,
		time.Duration(cfg.Outbox.IntervalSeconds)*time.Second,
		cfg.Outbox.BatchSize,
	)

	handler := payments_http.NewHandler(
		log,
		createHandler.NewHandler(log, accountSvc),
		depositHandler.NewHandler(log, accountSvc),
		balanceHandler.NewHandler(log, accountSvc),
	)

	httpServer := httpapp.NewApp(log, handler.InitRoutes(), cfg.HTTP.Port)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error { return publisher.Run(gCtx) })
	g.Go(func() error { return requestConsumer.Run(gCtx) })

	go httpServer.RunWithPanic()

	log.Info("payments service started")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop

	log.Info("stopping payments service")

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

	log.Info("payments service stopped")
}

func postgresDSN(psqlCfg *config.PostgresConfig) string {
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=%s",
		psqlCfg.Host, psqlCfg.Port, psqlCfg.User, psqlCfg.DbName, psqlCfg.Pwd, psqlCfg.SslMode)
}
