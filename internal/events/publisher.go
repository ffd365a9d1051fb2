package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopfront/internal/config"
	"github.com/shopfront/internal/logger"

	"github.com/segmentio/kafka-go"
)

const defaultWriteTimeout = 5 * time.Second

// Publisher 订单事件发布接口
type Publisher interface {
	Publish(ctx context.Context, event OrderEvent) error
	Close() error
}

// NewPublisher 根据配置创建发布器，未启用时仅记录日志
func NewPublisher(cfg *config.EventsConfig) Publisher {
	if cfg == nil || !cfg.Enabled || len(cfg.Brokers) == 0 || strings.TrimSpace(cfg.Topic) == "" {
		return LogPublisher{}
	}
	return NewKafkaPublisher(cfg)
}

// KafkaPublisher 基于 kafka-go Writer 的发布器
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher 创建 Kafka 发布器
func NewKafkaPublisher(cfg *config.EventsConfig) *KafkaPublisher {
	timeout := defaultWriteTimeout
	if cfg.WriteTimeoutMS > 0 {
		timeout = time.Duration(cfg.WriteTimeoutMS) * time.Millisecond
	}
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  strings.TrimSpace(cfg.Topic),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		Compression:            kafka.Lz4,
		WriteTimeout:           timeout,
		AllowAutoTopicCreation: true,
	}
	return &KafkaPublisher{writer: writer}
}

// Publish 以订单号为 key 写入事件，同一订单的事件落在同一分区
func (p *KafkaPublisher) Publish(ctx context.Context, event OrderEvent) error {
	msg, err := buildMessage(event)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka: write failed: %w", err)
	}
	return nil
}

// Close 关闭 Writer，等待缓冲消息写出
func (p *KafkaPublisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

// LogPublisher 未启用事件投递时使用
type LogPublisher struct{}

// Publish 记录事件日志
func (LogPublisher) Publish(_ context.Context, event OrderEvent) error {
	logger.Infow("order_event_published",
		"sink", "log",
		"event_id", event.EventID,
		"type", event.Type,
		"order_no", event.OrderNo,
		"status", event.Status,
	)
	return nil
}

// Close 无需释放资源
func (LogPublisher) Close() error {
	return nil
}

func buildMessage(event OrderEvent) (kafka.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("kafka: json.Marshal failed: %w", err)
	}
	return kafka.Message{
		Key:   []byte(event.OrderNo),
		Value: data,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
			{Key: "event-id", Value: []byte(event.EventID)},
		},
	}, nil
}
