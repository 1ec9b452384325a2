package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/central-university-dev/go-tgbot/internal/domain/models"
	"github.com/central-university-dev/go-tgbot/pkg"
)

const (
	kafkaSinkName = "kafka"

	// HeaderUpdateType содержит литерал типа события.
	HeaderUpdateType = "update_type"
)

// MessageWriter — часть *kafka.Writer, нужная приёмнику.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaSink публикует одно сообщение на событие: ключ — update_id,
// значение — исходный JSON события.
type KafkaSink struct {
	writer MessageWriter
	topic  string
	logger *slog.Logger
}

func NewKafkaSink(brokers []string, topic string, logger *slog.Logger) *KafkaSink {
	if logger == nil {
		logger = pkg.DiscardLogger()
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Logger:       kafka.LoggerFunc(logger.Debug),
		ErrorLogger:  kafka.LoggerFunc(logger.Error),
	}

	return NewKafkaSinkWithWriter(writer, topic, logger)
}

func NewKafkaSinkWithWriter(writer MessageWriter, topic string, logger *slog.Logger) *KafkaSink {
	if logger == nil {
		logger = pkg.DiscardLogger()
	}

	return &KafkaSink{
		writer: writer,
		topic:  topic,
		logger: logger,
	}
}

func (s *KafkaSink) Name() string {
	return kafkaSinkName
}

func (s *KafkaSink) Publish(ctx context.Context, updates []models.Update) error {
	if len(updates) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(updates))
	now := time.Now()

	for i := range updates {
		value, err := rawUpdate(&updates[i])
		if err != nil {
			s.logger.Error("Ошибка при сериализации события",
				"error", err,
				"update_id", updates[i].UpdateID,
			)

			return fmt.Errorf("ошибка при сериализации события %d: %w", updates[i].UpdateID, err)
		}

		messages = append(messages, kafka.Message{
			Key:   []byte(strconv.FormatInt(updates[i].UpdateID, 10)),
			Value: value,
			Headers: []kafka.Header{
				{Key: HeaderUpdateType, Value: []byte(updates[i].Kind())},
			},
			Time: now,
		})
	}

	if err := s.writer.WriteMessages(ctx, messages...); err != nil {
		s.logger.Error("Ошибка при отправке событий в Kafka",
			"error", err,
			"topic", s.topic,
			"count", len(messages),
		)

		return fmt.Errorf("ошибка при отправке событий в Kafka: %w", err)
	}

	s.logger.Debug("События отправлены в Kafka",
		"topic", s.topic,
		"count", len(messages),
	)

	return nil
}

func (s *KafkaSink) Close() error {
	return s.writer.Close()
}

func rawUpdate(update *models.Update) ([]byte, error) {
	if len(update.Raw) > 0 {
		return update.Raw, nil
	}

	return json.Marshal(update)
}
