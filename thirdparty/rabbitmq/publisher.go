package rabbitmq

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const (
	ruleExpirationExchange   = "rule_expiration_exchange"
	ruleExpirationQueue      = "rule_expiration_queue"
	ruleExpirationRoutingKey = "rule_expiration"
)

// RuleExpirationMessage asks the consumer to expire a rule once ExpiresAt
// has passed.
type RuleExpirationMessage struct {
	RuleID    uint64    `json:"rule_id"`
	ProductID int64     `json:"product_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ExpirationPublisher interface {
	PublishRuleExpiration(msg RuleExpirationMessage) error
}

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	now     func() time.Time
}

func dial(host string, port int, user, password string) (*amqp091.Connection, *amqp091.Channel, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}
	return conn, channel, nil
}

// declareTopology declares the delayed exchange, the queue and the binding.
// The exchange type needs the rabbitmq_delayed_message_exchange plugin.
func declareTopology(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		ruleExpirationExchange, // name
		"x-delayed-message",    // type
		true,                   // durable
		false,                  // auto-delete
		false,                  // internal
		false,                  // no-wait
		amqp091.Table{"x-delayed-type": "direct"},
	)
	if err != nil {
		return err
	}

	_, err = channel.QueueDeclare(
		ruleExpirationQueue, // name
		true,                // durable
		false,               // auto-delete
		false,               // exclusive
		false,               // no-wait
		nil,
	)
	if err != nil {
		return err
	}

	return channel.QueueBind(
		ruleExpirationQueue,
		ruleExpirationRoutingKey,
		ruleExpirationExchange,
		false,
		nil,
	)
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: channel, now: time.Now}, nil
}

func (p *Publisher) PublishRuleExpiration(msg RuleExpirationMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.channel.Publish(
		ruleExpirationExchange,
		ruleExpirationRoutingKey,
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Body:         body,
			Headers: amqp091.Table{
				"x-delay": delayMillis(msg.ExpiresAt, p.now()),
			},
		},
	)
}

// delayMillis is the x-delay header value, never negative.
func delayMillis(expiresAt, now time.Time) int64 {
	d := expiresAt.Sub(now).Milliseconds()
	if d < 0 {
		return 0
	}
	return d
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}

// NoopPublisher drops messages; used when RabbitMQ is not reachable.
type NoopPublisher struct{}

func (NoopPublisher) PublishRuleExpiration(RuleExpirationMessage) error { return nil }
