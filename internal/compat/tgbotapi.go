// Package compat отдаёт события поллера в типах go-telegram-bot-api,
// чтобы обработчики, написанные под эту библиотеку, работали без переделки.
package compat

import (
	"context"
	"encoding/json"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	domainerrors "github.com/central-university-dev/go-tgbot/internal/domain/errors"
	"github.com/central-university-dev/go-tgbot/internal/domain/models"
	"github.com/central-university-dev/go-tgbot/internal/tgapi"
	"github.com/central-university-dev/go-tgbot/pkg"
)

const conversion = "compat.ToBotAPIUpdate"

// ToBotAPIUpdate разбирает исходный JSON события в tgbotapi.Update.
// Если Raw пуст, событие сериализуется заново.
func ToBotAPIUpdate(update models.Update) (tgbotapi.Update, error) {
	var out tgbotapi.Update

	raw := update.Raw
	if len(raw) == 0 {
		data, err := json.Marshal(update)
		if err != nil {
			return out, &domainerrors.DecodeError{Operation: conversion, Cause: err}
		}

		raw = data
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return out, &domainerrors.DecodeError{Operation: conversion, Cause: err}
	}

	return out, nil
}

func ToBotAPIUpdates(updates []models.Update) ([]tgbotapi.Update, error) {
	out := make([]tgbotapi.Update, 0, len(updates))

	for i := range updates {
		converted, err := ToBotAPIUpdate(updates[i])
		if err != nil {
			return nil, err
		}

		out = append(out, converted)
	}

	return out, nil
}

// UpdatesChan запускает poller в отдельной горутине и возвращает канал в духе
// BotAPI.GetUpdatesChan. Событие, которое не разбирается в tgbotapi.Update, пропускается.
// Канал закрывается, когда Run завершается: по отмене ctx или по первой ошибке getUpdates.
func UpdatesChan(ctx context.Context, poller *tgapi.Poller, buffer int, logger *slog.Logger) tgbotapi.UpdatesChannel {
	if logger == nil {
		logger = pkg.DiscardLogger()
	}

	ch := make(chan tgbotapi.Update, buffer)

	go func() {
		defer close(ch)

		err := poller.Run(ctx, func(ctx context.Context, updates []models.Update) error {
			for i := range updates {
				converted, err := ToBotAPIUpdate(updates[i])
				if err != nil {
					logger.Warn("Событие пропущено",
						"update_id", updates[i].UpdateID,
						"error", err,
					)

					continue
				}

				select {
				case ch <- converted:
				case <-ctx.Done():
					return nil
				}
			}

			return nil
		})
		if err != nil {
			logger.Error("Поллер остановлен с ошибкой", "error", err)
		}
	}()

	return ch
}
