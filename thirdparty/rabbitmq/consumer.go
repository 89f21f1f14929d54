package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/muhammadheryan/promo-admin/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	expirer *RuleExpirer
}

// RuleExpirer calls the internal expire endpoint of the HTTP service.
type RuleExpirer struct {
	apiURL string
	apiKey string
	client *http.Client
}

func NewRuleExpirer(apiURL, apiKey string) *RuleExpirer {
	return &RuleExpirer{
		apiURL: apiURL,
		apiKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func NewConsumer(host string, port int, user, password string, expirer *RuleExpirer) (*Consumer, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}
	return &Consumer{conn: conn, channel: channel, expirer: expirer}, nil
}

// Start consumes until ctx is done or the channel closes. It returns once
// the delivery loop exits.
func (c *Consumer) Start(ctx context.Context) error {
	// one message in flight at a time
	if err := c.channel.Qos(1, 0, false); err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		ruleExpirationQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}
			ack, requeue := c.expirer.Handle(ctx, msg.Body)
			if ack {
				_ = msg.Ack(false)
			} else {
				_ = msg.Nack(false, requeue)
			}
		}
	}
}

// Handle processes one message body. Undecodable bodies are acked so they
// do not loop; transport or 5xx failures are requeued.
func (e *RuleExpirer) Handle(ctx context.Context, body []byte) (ack bool, requeue bool) {
	var msg RuleExpirationMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		logger.Error("[RuleExpirer] unmarshal message", zap.String("error", err.Error()))
		return true, false
	}

	if err := e.expire(ctx, msg.RuleID); err != nil {
		logger.Error("[RuleExpirer] expire rule", zap.Uint64("rule_id", msg.RuleID), zap.String("error", err.Error()))
		return false, true
	}

	logger.Info("[RuleExpirer] rule expired", zap.Uint64("rule_id", msg.RuleID), zap.Int64("product_id", msg.ProductID))
	return true, false
}

func (e *RuleExpirer) expire(ctx context.Context, ruleID uint64) error {
	url := fmt.Sprintf("%s/internal/v1/rules/%d/expire", e.apiURL, ruleID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+e.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Service", "rule-expiration-consumer")

	resp, err := e.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	// 4xx (already expired, unknown rule) is final
	if resp.StatusCode < 200 || resp.StatusCode >= 500 {
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
