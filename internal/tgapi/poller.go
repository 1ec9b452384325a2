package tgapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/central-university-dev/go-tgbot/internal/common/metrics"
	domainerrors "github.com/central-university-dev/go-tgbot/internal/domain/errors"
	"github.com/central-university-dev/go-tgbot/internal/domain/models"
	"github.com/central-university-dev/go-tgbot/pkg"
)

const getUpdates = "getUpdates"

// Doer отправляет собранный запрос. Его реализует *Client.
type Doer interface {
	Do(ctx context.Context, req Request) (json.RawMessage, error)
}

type PollerConfig struct {
	Limit          int
	Timeout        int
	AllowedUpdates []UpdateType
}

// UpdateHandler получает каждую непустую пачку событий в порядке сервера.
type UpdateHandler func(ctx context.Context, updates []models.Update) error

// Poller забирает события через getUpdates и хранит курсор offset только в памяти:
// новый Poller всегда начинает с нуля. Не предназначен для конкурентного использования,
// на одну очередь событий приходится один Poller в одной горутине.
type Poller struct {
	doer   Doer
	suffix string
	offset int64
	logger *slog.Logger
}

func NewPoller(doer Doer, cfg PollerConfig, logger *slog.Logger) *Poller {
	if logger == nil {
		logger = pkg.DiscardLogger()
	}

	return &Poller{
		doer:   doer,
		suffix: pollSuffix(cfg),
		logger: logger,
	}
}

// pollSuffix вычисляется один раз: фильтр событий не меняется за время жизни Poller.
func pollSuffix(cfg PollerConfig) string {
	var sb strings.Builder

	sb.WriteString("&timeout=")
	sb.WriteString(strconv.Itoa(cfg.Timeout))
	sb.WriteString("&limit=")
	sb.WriteString(strconv.Itoa(cfg.Limit))

	if len(cfg.AllowedUpdates) > 0 {
		sb.WriteString("&allowed_updates=")
		sb.WriteString(Encode(MarshalUpdateTypes(cfg.AllowedUpdates)))
	}

	return sb.String()
}

func (p *Poller) Offset() int64 {
	return p.offset
}

// Poll выполняет один getUpdates. Курсор сдвигается на last.update_id+1 только
// после успешного непустого ответа; при ошибке и пустой пачке он не меняется.
// Элемент, который не отображается в models.Update, всё равно сдвигает курсор:
// он возвращается с UpdateID, Raw и MappingErr.
func (p *Poller) Poll(ctx context.Context) ([]models.Update, error) {
	req := Request{
		Operation: getUpdates,
		Kind:      KindQuery,
		Query:     "offset=" + strconv.FormatInt(p.offset, 10) + p.suffix,
	}

	raw, err := p.doer.Do(ctx, req)
	if err != nil {
		metrics.RecordPoll(outcomeOf(err), 0, p.offset)
		return nil, err
	}

	updates, err := decodeUpdates(raw)
	if err != nil {
		metrics.RecordPoll(metrics.OutcomeDecode, 0, p.offset)
		return nil, &domainerrors.DecodeError{Operation: getUpdates, Cause: err}
	}

	if len(updates) == 0 {
		metrics.RecordPoll(metrics.OutcomeSuccess, 0, p.offset)
		return []models.Update{}, nil
	}

	for i := range updates {
		if updates[i].MappingErr != nil {
			metrics.RecordUpdateMappingFailure()
			p.logger.Warn("Событие не удалось разобрать",
				"update_id", updates[i].UpdateID,
				"error", updates[i].MappingErr,
			)
		}
	}

	p.offset = updates[len(updates)-1].UpdateID + 1
	metrics.RecordPoll(metrics.OutcomeSuccess, len(updates), p.offset)

	p.logger.Info("Получены обновления",
		"count", len(updates),
		"offset", p.offset,
	)

	return updates, nil
}

// decodeUpdates разбирает массив result поэлементно. Ошибка возвращается, только если
// result не массив или у элемента нельзя прочитать update_id.
func decodeUpdates(raw []byte) ([]models.Update, error) {
	d := jx.DecodeBytes(raw)

	if d.Next() == jx.Null {
		return nil, nil
	}

	var updates []models.Update

	err := d.Arr(func(d *jx.Decoder) error {
		elem, err := d.Raw()
		if err != nil {
			return err
		}

		elem = append(jx.Raw(nil), elem...)

		id, err := decodeUpdateID(elem)
		if err != nil {
			return err
		}

		var update models.Update
		if err := json.Unmarshal(elem, &update); err != nil {
			update = models.Update{
				UpdateID:   id,
				Raw:        json.RawMessage(elem),
				MappingErr: &domainerrors.DecodeError{Operation: getUpdates, Cause: err},
			}
		}

		updates = append(updates, update)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updates, nil
}

func decodeUpdateID(elem jx.Raw) (int64, error) {
	var (
		id    int64
		found bool
	)

	err := jx.DecodeBytes(elem).ObjBytes(func(d *jx.Decoder, key []byte) error {
		if string(key) != "update_id" {
			return d.Skip()
		}

		v, err := d.Int64()
		if err != nil {
			return err
		}

		id, found = v, true

		return nil
	})
	if err != nil {
		return 0, err
	}

	if !found {
		return 0, errors.New("update_id отсутствует")
	}

	return id, nil
}

// Run вызывает Poll, пока не отменён ctx, и передаёт каждую непустую пачку в handler.
// Первая ошибка Poll или handler завершает Run и возвращается вызывающему.
// Отмена ctx завершает Run без ошибки.
func (p *Poller) Run(ctx context.Context, handler UpdateHandler) error {
	p.logger.Info("Запуск Telegram поллера", "offset", p.offset)

	for {
		if ctx.Err() != nil {
			p.logger.Info("Остановка Telegram поллера", "offset", p.offset)
			return nil
		}

		updates, err := p.Poll(ctx)
		if err != nil {
			if ctx.Err() != nil {
				p.logger.Info("Остановка Telegram поллера", "offset", p.offset)
				return nil
			}

			p.logger.Error("Ошибка при получении обновлений", "error", err, "offset", p.offset)

			return err
		}

		if len(updates) == 0 {
			continue
		}

		if err := handler(ctx, updates); err != nil {
			p.logger.Error("Ошибка при обработке обновлений",
				"error", err,
				"count", len(updates),
				"offset", p.offset,
			)

			return err
		}
	}
}
