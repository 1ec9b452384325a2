package tgapi

import (
	"context"

	domainerrors "github.com/central-university-dev/go-tgbot/internal/domain/errors"
	"github.com/central-university-dev/go-tgbot/internal/domain/models"
)

type InvoiceConfig struct {
	ChatID                    models.ChatID
	Title                     string
	Description               string
	Payload                   string
	ProviderToken             string
	StartParameter            string
	Currency                  string
	Prices                    []models.LabeledPrice
	ProviderData              string
	PhotoURL                  string
	PhotoSize                 *int
	PhotoWidth                *int
	PhotoHeight               *int
	NeedName                  bool
	NeedPhoneNumber           bool
	NeedEmail                 bool
	NeedShippingAddress       bool
	SendPhoneNumberToProvider bool
	SendEmailToProvider       bool
	IsFlexible                bool
	SendOptions
}

func (c *Client) SendInvoice(ctx context.Context, cfg InvoiceConfig) (models.Message, error) {
	p := NewParams().
		ChatID("chat_id", cfg.ChatID).
		RequiredString("title", cfg.Title).
		RequiredString("description", cfg.Description).
		RequiredString("payload", cfg.Payload).
		RequiredString("provider_token", cfg.ProviderToken).
		RequiredString("start_parameter", cfg.StartParameter).
		RequiredString("currency", cfg.Currency)

	if len(cfg.Prices) == 0 {
		p.fail(&domainerrors.ErrMissingRequiredField{FieldName: "prices"})
	}

	p.JSON("prices", cfg.Prices).
		String("provider_data", cfg.ProviderData).
		String("photo_url", cfg.PhotoURL).
		OptInt("photo_size", cfg.PhotoSize).
		OptInt("photo_width", cfg.PhotoWidth).
		OptInt("photo_height", cfg.PhotoHeight).
		Bool("need_name", cfg.NeedName).
		Bool("need_phone_number", cfg.NeedPhoneNumber).
		Bool("need_email", cfg.NeedEmail).
		Bool("need_shipping_address", cfg.NeedShippingAddress).
		Bool("send_phone_number_to_provider", cfg.SendPhoneNumberToProvider).
		Bool("send_email_to_provider", cfg.SendEmailToProvider).
		Bool("is_flexible", cfg.IsFlexible).
		sendOptions(cfg.SendOptions)

	return callInto[models.Message](ctx, c, "sendInvoice", p)
}

type ShippingConfig struct {
	ShippingQueryID string
	OK              bool
	ShippingOptions []models.ShippingOption
	ErrorMessage    string
}

// AnswerShippingQuery передаёт ok явно: при false обязателен error_message.
func (c *Client) AnswerShippingQuery(ctx context.Context, cfg ShippingConfig) (bool, error) {
	p := NewParams().
		RequiredString("shipping_query_id", cfg.ShippingQueryID).
		flag("ok", cfg.OK)

	if cfg.OK {
		p.JSON("shipping_options", cfg.ShippingOptions)
	} else {
		p.RequiredString("error_message", cfg.ErrorMessage)
	}

	return callInto[bool](ctx, c, "answerShippingQuery", p)
}

type PreCheckoutConfig struct {
	PreCheckoutQueryID string
	OK                 bool
	ErrorMessage       string
}

func (c *Client) AnswerPreCheckoutQuery(ctx context.Context, cfg PreCheckoutConfig) (bool, error) {
	p := NewParams().
		RequiredString("pre_checkout_query_id", cfg.PreCheckoutQueryID).
		flag("ok", cfg.OK)

	if !cfg.OK {
		p.RequiredString("error_message", cfg.ErrorMessage)
	}

	return callInto[bool](ctx, c, "answerPreCheckoutQuery", p)
}
