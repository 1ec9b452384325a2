package tgapi

import (
	"context"

	"github.com/central-university-dev/go-tgbot/internal/domain/models"
)

const stickerMimeType = "image/png"

func (c *Client) GetStickerSet(ctx context.Context, name string) (models.StickerSet, error) {
	return callInto[models.StickerSet](ctx, c, "getStickerSet", NewParams().RequiredString("name", name))
}

func stickerFile(file models.InputFile) models.InputFile {
	if file.IsLocal() && file.MimeType == "" {
		file.MimeType = stickerMimeType
	}

	return file
}

func (c *Client) UploadStickerFile(ctx context.Context, userID int64, pngSticker models.InputFile) (models.File, error) {
	p := NewParams().
		Int64("user_id", userID).
		File("png_sticker", stickerFile(pngSticker))

	return callInto[models.File](ctx, c, "uploadStickerFile", p)
}

type NewStickerSetConfig struct {
	UserID        int64
	Name          string
	Title         string
	PNGSticker    models.InputFile
	Emojis        string
	ContainsMasks bool
	MaskPosition  *models.MaskPosition
}

func (c *Client) CreateNewStickerSet(ctx context.Context, cfg NewStickerSetConfig) (bool, error) {
	p := NewParams().
		Int64("user_id", cfg.UserID).
		RequiredString("name", cfg.Name).
		RequiredString("title", cfg.Title).
		File("png_sticker", stickerFile(cfg.PNGSticker)).
		RequiredString("emojis", cfg.Emojis).
		Bool("contains_masks", cfg.ContainsMasks).
		JSON("mask_position", cfg.MaskPosition)

	return callInto[bool](ctx, c, "createNewStickerSet", p)
}

type AddStickerConfig struct {
	UserID       int64
	Name         string
	PNGSticker   models.InputFile
	Emojis       string
	MaskPosition *models.MaskPosition
}

func (c *Client) AddStickerToSet(ctx context.Context, cfg AddStickerConfig) (bool, error) {
	p := NewParams().
		Int64("user_id", cfg.UserID).
		RequiredString("name", cfg.Name).
		File("png_sticker", stickerFile(cfg.PNGSticker)).
		RequiredString("emojis", cfg.Emojis).
		JSON("mask_position", cfg.MaskPosition)

	return callInto[bool](ctx, c, "addStickerToSet", p)
}

func (c *Client) SetStickerPositionInSet(ctx context.Context, sticker string, position int) (bool, error) {
	p := NewParams().
		RequiredString("sticker", sticker).
		Int("position", position)

	return callInto[bool](ctx, c, "setStickerPositionInSet", p)
}

func (c *Client) DeleteStickerFromSet(ctx context.Context, sticker string) (bool, error) {
	return callInto[bool](ctx, c, "deleteStickerFromSet", NewParams().RequiredString("sticker", sticker))
}
