package main

import (
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/promo-admin/thirdparty/rabbitmq"
	"github.com/muhammadheryan/promo-admin/utils/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var consumeCmd = &cobra.Command{
	Use:   "consume",
	Short: "Expire promotional rules when their delayed message arrives",
	RunE:  runConsume,
}

func runConsume(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	expirer := rabbitmq.NewRuleExpirer(cfg.Internal.APIURL, cfg.Internal.APIKey)
	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, expirer)
	if err != nil {
		logger.Error("err connect rabbitmq", zap.Error(err))
		return err
	}
	defer consumer.Close()

	logger.Info("rule expiration consumer running", zap.String("api_url", cfg.Internal.APIURL))
	return consumer.Start(ctx)
}
