package rabbitmq

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	POST_CREATED_QUEUE   = "post.created"
	POST_COMMENTED_QUEUE = "post.commented"
)

var queues = []string{
	POST_CREATED_QUEUE,
	POST_COMMENTED_QUEUE,
}

type MQConn struct {
	conn *amqp.Connection
	ch   *amqp.Channel
	// amqp channels must not be used for concurrent publishing
	mu sync.Mutex
}

func New(url string) (*MQConn, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	for _, queue := range queues {
		if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
			ch.Close()
			conn.Close()
			return nil, err
		}
	}

	return &MQConn{
		conn: conn,
		ch:   ch,
	}, nil
}

func (mq *MQConn) PublishJSON(ctx context.Context, queue string, v interface{}) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}

	mq.mu.Lock()
	defer mq.mu.Unlock()

	return mq.ch.PublishWithContext(ctx, "", queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
}

func (mq *MQConn) Close() error {
	if err := mq.ch.Close(); err != nil {
		mq.conn.Close()
		return err
	}
	return mq.conn.Close()
}
