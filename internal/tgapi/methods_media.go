package tgapi

import (
	"context"

	"github.com/central-university-dev/go-tgbot/internal/domain/models"
)

// MediaConfig — общие параметры sendPhoto, sendAudio, sendDocument и подобных.
// File с SourceLocalUpload переводит запрос в multipart.
type MediaConfig struct {
	ChatID    models.ChatID
	File      models.InputFile
	Caption   string
	ParseMode ParseMode
	SendOptions
}

func (p *Params) media(field string, cfg MediaConfig) *Params {
	return p.
		ChatID("chat_id", cfg.ChatID).
		File(field, cfg.File).
		String("caption", cfg.Caption).
		ParseMode(cfg.ParseMode)
}

func (c *Client) SendPhoto(ctx context.Context, cfg MediaConfig) (models.Message, error) {
	p := NewParams().
		media("photo", cfg).
		sendOptions(cfg.SendOptions)

	return callInto[models.Message](ctx, c, "sendPhoto", p)
}

type AudioConfig struct {
	MediaConfig
	Duration  *int
	Performer string
	Title     string
}

func (c *Client) SendAudio(ctx context.Context, cfg AudioConfig) (models.Message, error) {
	p := NewParams().
		media("audio", cfg.MediaConfig).
		OptInt("duration", cfg.Duration).
		String("performer", cfg.Performer).
		String("title", cfg.Title).
		sendOptions(cfg.SendOptions)

	return callInto[models.Message](ctx, c, "sendAudio", p)
}

func (c *Client) SendDocument(ctx context.Context, cfg MediaConfig) (models.Message, error) {
	p := NewParams().
		media("document", cfg).
		sendOptions(cfg.SendOptions)

	return callInto[models.Message](ctx, c, "sendDocument", p)
}

type VideoConfig struct {
	MediaConfig
	Duration          *int
	Width             *int
	Height            *int
	SupportsStreaming bool
}

func (c *Client) SendVideo(ctx context.Context, cfg VideoConfig) (models.Message, error) {
	p := NewParams().
		media("video", cfg.MediaConfig).
		OptInt("duration", cfg.Duration).
		OptInt("width", cfg.Width).
		OptInt("height", cfg.Height).
		Bool("supports_streaming", cfg.SupportsStreaming).
		sendOptions(cfg.SendOptions)

	return callInto[models.Message](ctx, c, "sendVideo", p)
}

type VoiceConfig struct {
	MediaConfig
	Duration *int
}

func (c *Client) SendVoice(ctx context.Context, cfg VoiceConfig) (models.Message, error) {
	p := NewParams().
		media("voice", cfg.MediaConfig).
		OptInt("duration", cfg.Duration).
		sendOptions(cfg.SendOptions)

	return callInto[models.Message](ctx, c, "sendVoice", p)
}

type VideoNoteConfig struct {
	ChatID   models.ChatID
	File     models.InputFile
	Duration *int
	Length   *int
	SendOptions
}

func (c *Client) SendVideoNote(ctx context.Context, cfg VideoNoteConfig) (models.Message, error) {
	p := NewParams().
		ChatID("chat_id", cfg.ChatID).
		File("video_note", cfg.File).
		OptInt("duration", cfg.Duration).
		OptInt("length", cfg.Length).
		sendOptions(cfg.SendOptions)

	return callInto[models.Message](ctx, c, "sendVideoNote", p)
}

type StickerConfig struct {
	ChatID models.ChatID
	File   models.InputFile
	SendOptions
}

func (c *Client) SendSticker(ctx context.Context, cfg StickerConfig) (models.Message, error) {
	p := NewParams().
		ChatID("chat_id", cfg.ChatID).
		File("sticker", cfg.File).
		sendOptions(cfg.SendOptions)

	return callInto[models.Message](ctx, c, "sendSticker", p)
}

type MediaGroupConfig struct {
	ChatID              models.ChatID
	Media               []models.InputMedia
	DisableNotification bool
	ReplyToMessageID    *int64
}

// SendMediaGroup отправляет альбом. Каждый локальный элемент получает собственную
// часть file<N>, поэтому два элемента с одним путём не перезаписывают друг друга.
func (c *Client) SendMediaGroup(ctx context.Context, cfg MediaGroupConfig) ([]models.Message, error) {
	p := NewParams().
		ChatID("chat_id", cfg.ChatID).
		Media("media", cfg.Media).
		Bool("disable_notification", cfg.DisableNotification).
		OptInt64("reply_to_message_id", cfg.ReplyToMessageID)

	return callInto[[]models.Message](ctx, c, "sendMediaGroup", p)
}

type EditMessageMediaConfig struct {
	Target      models.MessageTarget
	Media       models.InputMedia
	ReplyMarkup *models.InlineKeyboardMarkup
}

func (c *Client) EditMessageMedia(ctx context.Context, cfg EditMessageMediaConfig) (models.Message, error) {
	p := NewParams().
		Target(cfg.Target).
		SingleMedia("media", cfg.Media).
		ReplyMarkup(inlineMarkup(cfg.ReplyMarkup))

	return editResult(ctx, c, "editMessageMedia", cfg.Target, p)
}
