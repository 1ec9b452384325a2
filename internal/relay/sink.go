package relay

import (
	"context"
	"log/slog"
	"strings"

	"github.com/central-university-dev/go-tgbot/internal/config"
	domainerrors "github.com/central-university-dev/go-tgbot/internal/domain/errors"
	"github.com/central-university-dev/go-tgbot/internal/domain/models"
)

// Sink принимает пачку событий в порядке сервера.
type Sink interface {
	Name() string
	Publish(ctx context.Context, updates []models.Update) error
	Close() error
}

// NewSink выбирает приёмник по MESSAGE_TRANSPORT.
func NewSink(cfg *config.Config, logger *slog.Logger) (Sink, error) {
	transport := config.MessageTransport(strings.ToUpper(string(cfg.MessageTransport)))

	logger.Info("Создание приёмника событий",
		"transport", transport,
	)

	switch transport {
	case config.LogTransport:
		return NewLogSink(logger), nil
	case config.KafkaTransport:
		brokers := strings.Split(cfg.KafkaBrokers, ",")
		return NewKafkaSink(brokers, cfg.TopicUpdates, logger), nil
	default:
		return nil, &domainerrors.ErrUnknownMessageTransport{Transport: string(cfg.MessageTransport)}
	}
}
