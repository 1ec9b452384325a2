package tgapi

import (
	"context"

	"github.com/central-university-dev/go-tgbot/internal/domain/models"
)

// SendOptions — общие необязательные параметры методов send*.
type SendOptions struct {
	DisableNotification bool
	ReplyToMessageID    *int64
	ReplyMarkup         models.ReplyMarkup
}

func (p *Params) sendOptions(o SendOptions) *Params {
	return p.
		Bool("disable_notification", o.DisableNotification).
		OptInt64("reply_to_message_id", o.ReplyToMessageID).
		ReplyMarkup(o.ReplyMarkup)
}

type MessageConfig struct {
	ChatID                models.ChatID
	Text                  string
	ParseMode             ParseMode
	DisableWebPagePreview bool
	SendOptions
}

func (c *Client) SendMessage(ctx context.Context, cfg MessageConfig) (models.Message, error) {
	p := NewParams().
		ChatID("chat_id", cfg.ChatID).
		RequiredString("text", cfg.Text).
		ParseMode(cfg.ParseMode).
		Bool("disable_web_page_preview", cfg.DisableWebPagePreview).
		sendOptions(cfg.SendOptions)

	return callInto[models.Message](ctx, c, "sendMessage", p)
}

type ForwardConfig struct {
	ChatID              models.ChatID
	FromChatID          models.ChatID
	MessageID           int64
	DisableNotification bool
}

func (c *Client) ForwardMessage(ctx context.Context, cfg ForwardConfig) (models.Message, error) {
	p := NewParams().
		ChatID("chat_id", cfg.ChatID).
		ChatID("from_chat_id", cfg.FromChatID).
		Int64("message_id", cfg.MessageID).
		Bool("disable_notification", cfg.DisableNotification)

	return callInto[models.Message](ctx, c, "forwardMessage", p)
}

type EditMessageTextConfig struct {
	Target                models.MessageTarget
	Text                  string
	ParseMode             ParseMode
	DisableWebPagePreview bool
	ReplyMarkup           *models.InlineKeyboardMarkup
}

// EditMessageText возвращает Message для сообщений в чате. Для inline-сообщений
// Telegram отвечает true, и возвращается нулевое значение Message.
func (c *Client) EditMessageText(ctx context.Context, cfg EditMessageTextConfig) (models.Message, error) {
	p := NewParams().
		Target(cfg.Target).
		RequiredString("text", cfg.Text).
		ParseMode(cfg.ParseMode).
		Bool("disable_web_page_preview", cfg.DisableWebPagePreview).
		ReplyMarkup(inlineMarkup(cfg.ReplyMarkup))

	return editResult(ctx, c, "editMessageText", cfg.Target, p)
}

type EditMessageCaptionConfig struct {
	Target      models.MessageTarget
	Caption     string
	ParseMode   ParseMode
	ReplyMarkup *models.InlineKeyboardMarkup
}

func (c *Client) EditMessageCaption(ctx context.Context, cfg EditMessageCaptionConfig) (models.Message, error) {
	p := NewParams().
		Target(cfg.Target).
		String("caption", cfg.Caption).
		ParseMode(cfg.ParseMode).
		ReplyMarkup(inlineMarkup(cfg.ReplyMarkup))

	return editResult(ctx, c, "editMessageCaption", cfg.Target, p)
}

func (c *Client) EditMessageReplyMarkup(
	ctx context.Context,
	target models.MessageTarget,
	markup *models.InlineKeyboardMarkup,
) (models.Message, error) {
	p := NewParams().
		Target(target).
		ReplyMarkup(inlineMarkup(markup))

	return editResult(ctx, c, "editMessageReplyMarkup", target, p)
}

func (c *Client) DeleteMessage(ctx context.Context, chatID models.ChatID, messageID int64) (bool, error) {
	p := NewParams().
		ChatID("chat_id", chatID).
		Int64("message_id", messageID)

	return callInto[bool](ctx, c, "deleteMessage", p)
}

func (c *Client) SendChatAction(ctx context.Context, chatID models.ChatID, action ChatAction) (bool, error) {
	p := NewParams().
		ChatID("chat_id", chatID).
		Raw("action", action.Literal())

	return callInto[bool](ctx, c, "sendChatAction", p)
}

type LocationConfig struct {
	ChatID     models.ChatID
	Latitude   float64
	Longitude  float64
	LivePeriod *int
	SendOptions
}

func (c *Client) SendLocation(ctx context.Context, cfg LocationConfig) (models.Message, error) {
	p := NewParams().
		ChatID("chat_id", cfg.ChatID).
		Float64("latitude", cfg.Latitude).
		Float64("longitude", cfg.Longitude).
		OptInt("live_period", cfg.LivePeriod).
		sendOptions(cfg.SendOptions)

	return callInto[models.Message](ctx, c, "sendLocation", p)
}

type EditLiveLocationConfig struct {
	Target      models.MessageTarget
	Latitude    float64
	Longitude   float64
	ReplyMarkup *models.InlineKeyboardMarkup
}

func (c *Client) EditMessageLiveLocation(ctx context.Context, cfg EditLiveLocationConfig) (models.Message, error) {
	p := NewParams().
		Target(cfg.Target).
		Float64("latitude", cfg.Latitude).
		Float64("longitude", cfg.Longitude).
		ReplyMarkup(inlineMarkup(cfg.ReplyMarkup))

	return editResult(ctx, c, "editMessageLiveLocation", cfg.Target, p)
}

func (c *Client) StopMessageLiveLocation(
	ctx context.Context,
	target models.MessageTarget,
	markup *models.InlineKeyboardMarkup,
) (models.Message, error) {
	p := NewParams().
		Target(target).
		ReplyMarkup(inlineMarkup(markup))

	return editResult(ctx, c, "stopMessageLiveLocation", target, p)
}

type VenueConfig struct {
	ChatID         models.ChatID
	Latitude       float64
	Longitude      float64
	Title          string
	Address        string
	FoursquareID   string
	FoursquareType string
	SendOptions
}

func (c *Client) SendVenue(ctx context.Context, cfg VenueConfig) (models.Message, error) {
	p := NewParams().
		ChatID("chat_id", cfg.ChatID).
		Float64("latitude", cfg.Latitude).
		Float64("longitude", cfg.Longitude).
		RequiredString("title", cfg.Title).
		RequiredString("address", cfg.Address).
		String("foursquare_id", cfg.FoursquareID).
		String("foursquare_type", cfg.FoursquareType).
		sendOptions(cfg.SendOptions)

	return callInto[models.Message](ctx, c, "sendVenue", p)
}

type ContactConfig struct {
	ChatID      models.ChatID
	PhoneNumber string
	FirstName   string
	LastName    string
	VCard       string
	SendOptions
}

func (c *Client) SendContact(ctx context.Context, cfg ContactConfig) (models.Message, error) {
	p := NewParams().
		ChatID("chat_id", cfg.ChatID).
		RequiredString("phone_number", cfg.PhoneNumber).
		RequiredString("first_name", cfg.FirstName).
		String("last_name", cfg.LastName).
		String("vcard", cfg.VCard).
		sendOptions(cfg.SendOptions)

	return callInto[models.Message](ctx, c, "sendContact", p)
}

// inlineMarkup не даёт типизированному nil превратиться в непустой интерфейс.
func inlineMarkup(markup *models.InlineKeyboardMarkup) models.ReplyMarkup {
	if markup == nil {
		return nil
	}

	return markup
}

// editResult разбирает ответ методов редактирования: Message для сообщения в чате,
// true для inline-сообщения.
func editResult(
	ctx context.Context,
	c *Client,
	operation string,
	target models.MessageTarget,
	p *Params,
) (models.Message, error) {
	if target.IsInline() {
		_, err := callInto[bool](ctx, c, operation, p)
		return models.Message{}, err
	}

	return callInto[models.Message](ctx, c, operation, p)
}
