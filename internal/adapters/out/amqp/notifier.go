// Package amqp publishes customer notifications to a message queue. The
// mailer that renders and delivers them is a separate consumer; the core
// only emits the fact that an order is ready.
package amqp

import (
	"context"
	"encoding/json"

	"fulfillment/internal/core/domain/model/kernel"

	amqp091 "github.com/rabbitmq/amqp091-go"
)

// readyNotification is the wire shape of one order-ready notice.
type readyNotification struct {
	OrderID string `json:"order_id"`
	Address string `json:"address"`
}

// Notifier implements ports.Notifier over an AMQP queue. A fresh channel is
// opened per publish; channels are cheap and a poisoned channel must not
// outlive one notification.
type Notifier struct {
	conn      *amqp091.Connection
	queueName string
}

// NewNotifier creates a notifier publishing to queueName and declares the
// queue so publishes cannot race the consumer's setup.
func NewNotifier(conn *amqp091.Connection, queueName string) (*Notifier, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return nil, err
	}

	return &Notifier{
		conn:      conn,
		queueName: queueName,
	}, nil
}

// NotifyOrderReady publishes an order-ready notice for the given address.
func (n *Notifier) NotifyOrderReady(ctx context.Context, address string, orderID kernel.UUID) error {
	body, err := json.Marshal(readyNotification{
		OrderID: orderID.String(),
		Address: address,
	})
	if err != nil {
		return err
	}

	ch, err := n.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	return ch.PublishWithContext(ctx,
		"",          // exchange
		n.queueName, // routing key (queue name)
		false,       // mandatory
		false,       // immediate
		amqp091.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}
