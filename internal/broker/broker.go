package broker

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Broker wraps a RabbitMQ topic exchange used for moderation events. The
// connection is re-established lazily if it drops.
type Broker struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	url      string
}

func NewBroker(rabbitMQURL, exchange string) (*Broker, error) {
	conn, err := amqp.Dial(rabbitMQURL)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &Broker{
		conn:     conn,
		channel:  ch,
		exchange: exchange,
		url:      rabbitMQURL,
	}, nil
}

func (b *Broker) ensureConnection() error {
	if b.conn != nil && !b.conn.IsClosed() {
		return nil
	}

	conn, err := amqp.Dial(b.url)
	if err != nil {
		return err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return err
	}

	b.conn = conn
	b.channel = ch
	return nil
}

// Publish marshals the message as JSON and publishes it under the given
// routing key.
func (b *Broker) Publish(message interface{}, key string) error {
	if err := b.ensureConnection(); err != nil {
		return err
	}

	body, err := json.Marshal(message)
	if err != nil {
		return err
	}

	err = b.channel.Publish(b.exchange, key, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		return err
	}

	log.Printf("published %s: %s", key, body)
	return nil
}

// DeclareAndBindQueue declares a durable queue and binds it to the exchange
// under the given routing key.
func (b *Broker) DeclareAndBindQueue(queueName, routingKey string) error {
	if err := b.ensureConnection(); err != nil {
		return err
	}

	if _, err := b.channel.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return err
	}
	return b.channel.QueueBind(queueName, routingKey, b.exchange, false, nil)
}

// Consume starts delivering messages from the given queue with auto-ack.
func (b *Broker) Consume(queueName string) (<-chan amqp.Delivery, error) {
	if err := b.ensureConnection(); err != nil {
		return nil, err
	}
	return b.channel.Consume(queueName, "", true, false, false, false, nil)
}

func (b *Broker) Close() error {
	if b.channel != nil {
		b.channel.Close()
	}
	if b.conn != nil {
		return b.conn.Close()
	}
	return nil
}
