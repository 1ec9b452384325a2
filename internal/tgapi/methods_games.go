package tgapi

import (
	"context"

	"github.com/central-university-dev/go-tgbot/internal/domain/models"
)

type GameConfig struct {
	ChatID        models.ChatID
	GameShortName string
	SendOptions
}

func (c *Client) SendGame(ctx context.Context, cfg GameConfig) (models.Message, error) {
	p := NewParams().
		ChatID("chat_id", cfg.ChatID).
		RequiredString("game_short_name", cfg.GameShortName).
		sendOptions(cfg.SendOptions)

	return callInto[models.Message](ctx, c, "sendGame", p)
}

type SetGameScoreConfig struct {
	Target             models.MessageTarget
	UserID             int64
	Score              int
	Force              bool
	DisableEditMessage bool
}

func (c *Client) SetGameScore(ctx context.Context, cfg SetGameScoreConfig) (models.Message, error) {
	p := NewParams().
		Int64("user_id", cfg.UserID).
		Int("score", cfg.Score).
		Bool("force", cfg.Force).
		Bool("disable_edit_message", cfg.DisableEditMessage).
		Target(cfg.Target)

	return editResult(ctx, c, "setGameScore", cfg.Target, p)
}

func (c *Client) GetGameHighScores(
	ctx context.Context,
	userID int64,
	target models.MessageTarget,
) ([]models.GameHighScore, error) {
	p := NewParams().
		Int64("user_id", userID).
		Target(target)

	return callInto[[]models.GameHighScore](ctx, c, "getGameHighScores", p)
}
