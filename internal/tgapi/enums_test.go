package tgapi_test

import (
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/central-university-dev/go-tgbot/internal/domain/errors"
	"github.com/central-university-dev/go-tgbot/internal/tgapi"
)

func TestParseMode_AllValues(t *testing.T) {
	expected := map[tgapi.ParseMode]string{
		tgapi.ParseModeNone:       "",
		tgapi.ParseModeMarkdown:   "Markdown",
		tgapi.ParseModeHTML:       "HTML",
		tgapi.ParseModeMarkdownV2: "MarkdownV2",
	}

	modes := tgapi.ParseModes()
	require.Len(t, modes, len(expected))

	for _, m := range modes {
		assert.Equal(t, expected[m], m.Literal())
	}
}

func TestChatAction_AllValues(t *testing.T) {
	expected := []string{
		"typing", "upload_photo", "record_video", "upload_video", "record_audio",
		"upload_audio", "upload_document", "find_location", "record_video_note", "upload_video_note",
	}

	actions := tgapi.ChatActions()
	require.Len(t, actions, len(expected))

	seen := make(map[string]bool)
	for _, a := range actions {
		literal := a.Literal()
		assert.NotEmpty(t, literal)
		assert.False(t, seen[literal], "литерал %s повторяется", literal)
		seen[literal] = true
	}

	for _, literal := range expected {
		assert.True(t, seen[literal], "нет литерала %s", literal)
	}
}

func TestUpdateType_AllValues(t *testing.T) {
	expected := []string{
		"message", "edited_message", "channel_post", "edited_channel_post", "inline_query",
		"chosen_inline_result", "callback_query", "shipping_query", "pre_checkout_query",
	}

	types := tgapi.UpdateTypes()
	require.Len(t, types, len(expected))

	for i, u := range types {
		assert.Equal(t, expected[i], u.Literal())
	}
}

func TestEnums_UnknownValuePanics(t *testing.T) {
	assert.Panics(t, func() { _ = tgapi.ParseMode(99).Literal() })
	assert.Panics(t, func() { _ = tgapi.ChatAction(-1).Literal() })
	assert.Panics(t, func() { _ = tgapi.UpdateType(42).Literal() })
}

func TestMarshalUpdateTypes(t *testing.T) {
	assert.Equal(t, `["message","callback_query"]`,
		tgapi.MarshalUpdateTypes([]tgapi.UpdateType{tgapi.UpdateMessage, tgapi.UpdateCallbackQuery}))
	assert.Equal(t, `[]`, tgapi.MarshalUpdateTypes(nil))
	assert.Equal(t, `["pre_checkout_query"]`,
		tgapi.MarshalUpdateTypes([]tgapi.UpdateType{tgapi.UpdatePreCheckoutQuery}))
}

func TestParseUpdateTypes(t *testing.T) {
	types, err := tgapi.ParseUpdateTypes([]string{"message", "", "callback_query"})

	require.NoError(t, err)
	assert.Equal(t, []tgapi.UpdateType{tgapi.UpdateMessage, tgapi.UpdateCallbackQuery}, types)

	_, err = tgapi.ParseUpdateTypes([]string{"message", "poll"})

	var invalid *domainerrors.ErrInvalidValue
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "poll", invalid.Value)
}
