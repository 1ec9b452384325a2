package tgapi

import (
	"context"

	"github.com/central-university-dev/go-tgbot/internal/domain/models"
)

func (c *Client) GetMe(ctx context.Context) (models.User, error) {
	return callInto[models.User](ctx, c, "getMe", nil)
}

type WebhookConfig struct {
	URL            string
	Certificate    models.InputFile
	MaxConnections *int
	AllowedUpdates []UpdateType
}

// SetWebhook регистрирует webhook. С локальным сертификатом запрос уходит multipart.
func (c *Client) SetWebhook(ctx context.Context, cfg WebhookConfig) (bool, error) {
	p := NewParams().
		RequiredString("url", cfg.URL).
		OptFile("certificate", cfg.Certificate).
		OptInt("max_connections", cfg.MaxConnections)

	if len(cfg.AllowedUpdates) > 0 {
		p.String("allowed_updates", MarshalUpdateTypes(cfg.AllowedUpdates))
	}

	return callInto[bool](ctx, c, "setWebhook", p)
}

func (c *Client) DeleteWebhook(ctx context.Context) (bool, error) {
	return callInto[bool](ctx, c, "deleteWebhook", nil)
}

func (c *Client) GetWebhookInfo(ctx context.Context) (models.WebhookInfo, error) {
	return callInto[models.WebhookInfo](ctx, c, "getWebhookInfo", nil)
}
