// Package relay передаёт пачки событий поллера в приёмники.
package relay

import (
	"context"
	"log/slog"

	"go.uber.org/multierr"

	"github.com/central-university-dev/go-tgbot/internal/common/metrics"
	"github.com/central-university-dev/go-tgbot/internal/domain/models"
	"github.com/central-university-dev/go-tgbot/pkg"
)

// Relay рассылает каждую пачку во все приёмники. Курсор поллера к этому моменту
// уже сдвинут, поэтому неудачная публикация теряет пачку.
type Relay struct {
	sinks  []Sink
	logger *slog.Logger
}

func New(logger *slog.Logger, sinks ...Sink) *Relay {
	if logger == nil {
		logger = pkg.DiscardLogger()
	}

	return &Relay{
		sinks:  sinks,
		logger: logger,
	}
}

// Handle подходит как tgapi.UpdateHandler. Возвращает объединённую ошибку всех
// приёмников, которые не приняли пачку.
func (r *Relay) Handle(ctx context.Context, updates []models.Update) error {
	var errs error

	for _, sink := range r.sinks {
		if err := sink.Publish(ctx, updates); err != nil {
			metrics.RecordRelayFailure(sink.Name())

			r.logger.Error("Приёмник не принял события",
				"sink", sink.Name(),
				"count", len(updates),
				"error", err,
			)

			errs = multierr.Append(errs, err)

			continue
		}

		for i := range updates {
			metrics.RecordRelayPublish(sink.Name(), updates[i].Kind())
		}
	}

	return errs
}

func (r *Relay) Close() error {
	var errs error

	for _, sink := range r.sinks {
		errs = multierr.Append(errs, sink.Close())
	}

	return errs
}
