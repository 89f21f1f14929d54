package main

import (
	"context"
	stderrors "errors"
	"net/http"
	"os/signal"
	"syscall"

	dashboardapp "github.com/muhammadheryan/promo-admin/application/dashboard"
	feedapp "github.com/muhammadheryan/promo-admin/application/feed"
	productapp "github.com/muhammadheryan/promo-admin/application/product"
	ruleapp "github.com/muhammadheryan/promo-admin/application/rule"
	redisclient "github.com/muhammadheryan/promo-admin/cmd/redis"
	productRepo "github.com/muhammadheryan/promo-admin/repository/product"
	redisRepo "github.com/muhammadheryan/promo-admin/repository/redis"
	ruleRepo "github.com/muhammadheryan/promo-admin/repository/rule"
	txRepo "github.com/muhammadheryan/promo-admin/repository/tx"
	feedclient "github.com/muhammadheryan/promo-admin/thirdparty/feed"
	"github.com/muhammadheryan/promo-admin/thirdparty/rabbitmq"
	"github.com/muhammadheryan/promo-admin/transport"
	"github.com/muhammadheryan/promo-admin/utils/logger"
	validatorx "github.com/muhammadheryan/promo-admin/utils/validator"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting server", zap.String("env", cfg.Environment))
	validatorx.Init()

	db, err := connectDB(cfg)
	if err != nil {
		logger.Error("err connect db", zap.Error(err))
		return err
	}
	defer db.Close()

	// Redis is optional: without it the feed is fetched on every load and
	// list views do not survive between requests.
	if err := redisclient.New(cfg); err != nil {
		logger.Warn("redis unavailable, running without cache", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	var publisher rabbitmq.ExpirationPublisher = rabbitmq.NoopPublisher{}
	if p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password); err != nil {
		logger.Warn("rabbitmq unavailable, rule expiration disabled", zap.Error(err))
	} else {
		publisher = p
		defer p.Close()
	}

	// Initialize repositories
	RedisRepo := redisRepo.NewRepository(redisclient.Get())
	RuleRepo := ruleRepo.NewRuleRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	TxRepo := txRepo.NewTxRepository(db)

	// Initialize application layers
	FeedApp := feedapp.NewFeedApp(feedclient.NewClient(cfg.Feed.URL, cfg.Feed.Timeout), RedisRepo, cfg.Feed.CacheTTL)
	ProductApp := productapp.NewProductApp(FeedApp, RuleRepo, ProductRepo, RedisRepo, cfg.ListView.SessionTTL)
	RuleApp := ruleapp.NewRuleApp(TxRepo, RuleRepo, FeedApp, publisher)
	DashboardApp := dashboardapp.NewDashboardApp()

	httpTransport := transport.NewTransport(ProductApp, RuleApp, DashboardApp, FeedApp, cfg.Internal.APIKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	// the list reports "loading" until this finishes
	g.Go(func() error {
		_ = FeedApp.Load(gctx)
		return nil
	})

	g.Go(func() error {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down HTTP server")
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("failed server", zap.Error(err))
		return err
	}
	return nil
}
