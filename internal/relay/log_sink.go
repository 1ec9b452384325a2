package relay

import (
	"context"
	"log/slog"

	"github.com/central-university-dev/go-tgbot/internal/compat"
	"github.com/central-university-dev/go-tgbot/internal/domain/models"
	"github.com/central-university-dev/go-tgbot/pkg"
)

const logSinkName = "log"

// LogSink пишет каждое событие в журнал. Для команд дополнительно
// выводит имя команды и аргументы.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = pkg.DiscardLogger()
	}

	return &LogSink{logger: logger}
}

func (s *LogSink) Name() string {
	return logSinkName
}

func (s *LogSink) Publish(_ context.Context, updates []models.Update) error {
	for i := range updates {
		update := &updates[i]

		attrs := []any{
			"update_id", update.UpdateID,
			"update_type", update.Kind(),
		}

		if update.MappingErr != nil {
			attrs = append(attrs, "mapping_error", update.MappingErr.Error())
		}

		if update.Message != nil {
			attrs = append(attrs, "chat_id", update.Message.Chat.ID)

			if update.Message.IsCommand() {
				converted, err := compat.ToBotAPIUpdate(*update)
				if err == nil {
					attrs = append(attrs,
						"command", converted.Message.Command(),
						"arguments", converted.Message.CommandArguments(),
					)
				}
			}
		}

		s.logger.Info("Получено событие", attrs...)
	}

	return nil
}

func (s *LogSink) Close() error {
	return nil
}
