package tgapi

import (
	"context"

	"github.com/central-university-dev/go-tgbot/internal/domain/models"
)

type CallbackConfig struct {
	CallbackQueryID string
	Text            string
	ShowAlert       bool
	URL             string
	CacheTime       *int
}

func (c *Client) AnswerCallbackQuery(ctx context.Context, cfg CallbackConfig) (bool, error) {
	p := NewParams().
		RequiredString("callback_query_id", cfg.CallbackQueryID).
		String("text", cfg.Text).
		Bool("show_alert", cfg.ShowAlert).
		String("url", cfg.URL).
		OptInt("cache_time", cfg.CacheTime)

	return callInto[bool](ctx, c, "answerCallbackQuery", p)
}

type InlineConfig struct {
	InlineQueryID     string
	Results           []models.InlineQueryResult
	CacheTime         *int
	IsPersonal        bool
	NextOffset        string
	SwitchPMText      string
	SwitchPMParameter string
}

func (c *Client) AnswerInlineQuery(ctx context.Context, cfg InlineConfig) (bool, error) {
	results := cfg.Results
	if results == nil {
		results = []models.InlineQueryResult{}
	}

	p := NewParams().
		RequiredString("inline_query_id", cfg.InlineQueryID).
		JSON("results", results).
		OptInt("cache_time", cfg.CacheTime).
		Bool("is_personal", cfg.IsPersonal).
		String("next_offset", cfg.NextOffset).
		String("switch_pm_text", cfg.SwitchPMText).
		String("switch_pm_parameter", cfg.SwitchPMParameter)

	return callInto[bool](ctx, c, "answerInlineQuery", p)
}
