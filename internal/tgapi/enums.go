package tgapi

import (
	"fmt"

	"github.com/go-faster/jx"

	domainerrors "github.com/central-university-dev/go-tgbot/internal/domain/errors"
)

type ParseMode int

const (
	ParseModeNone ParseMode = iota
	ParseModeMarkdown
	ParseModeHTML
	ParseModeMarkdownV2

	parseModeCount
)

var parseModeLiterals = [parseModeCount]string{
	ParseModeNone:       "",
	ParseModeMarkdown:   "Markdown",
	ParseModeHTML:       "HTML",
	ParseModeMarkdownV2: "MarkdownV2",
}

// Literal возвращает значение parse_mode. Для ParseModeNone это пустая строка,
// и параметр в запрос не попадает.
func (m ParseMode) Literal() string {
	if m < 0 || m >= parseModeCount {
		panic(fmt.Sprintf("tgapi: неизвестный ParseMode %d", int(m)))
	}

	return parseModeLiterals[m]
}

func (m ParseMode) String() string {
	if m == ParseModeNone {
		return "None"
	}

	return m.Literal()
}

func ParseModes() []ParseMode {
	modes := make([]ParseMode, 0, parseModeCount)
	for m := ParseModeNone; m < parseModeCount; m++ {
		modes = append(modes, m)
	}

	return modes
}

type ChatAction int

const (
	ActionTyping ChatAction = iota
	ActionUploadPhoto
	ActionRecordVideo
	ActionUploadVideo
	ActionRecordAudio
	ActionUploadAudio
	ActionUploadDocument
	ActionFindLocation
	ActionRecordVideoNote
	ActionUploadVideoNote

	chatActionCount
)

var chatActionLiterals = [chatActionCount]string{
	ActionTyping:          "typing",
	ActionUploadPhoto:     "upload_photo",
	ActionRecordVideo:     "record_video",
	ActionUploadVideo:     "upload_video",
	ActionRecordAudio:     "record_audio",
	ActionUploadAudio:     "upload_audio",
	ActionUploadDocument:  "upload_document",
	ActionFindLocation:    "find_location",
	ActionRecordVideoNote: "record_video_note",
	ActionUploadVideoNote: "upload_video_note",
}

func (a ChatAction) Literal() string {
	if a < 0 || a >= chatActionCount {
		panic(fmt.Sprintf("tgapi: неизвестный ChatAction %d", int(a)))
	}

	return chatActionLiterals[a]
}

func (a ChatAction) String() string {
	return a.Literal()
}

func ChatActions() []ChatAction {
	actions := make([]ChatAction, 0, chatActionCount)
	for a := ActionTyping; a < chatActionCount; a++ {
		actions = append(actions, a)
	}

	return actions
}

type UpdateType int

const (
	UpdateMessage UpdateType = iota
	UpdateEditedMessage
	UpdateChannelPost
	UpdateEditedChannelPost
	UpdateInlineQuery
	UpdateChosenInlineResult
	UpdateCallbackQuery
	UpdateShippingQuery
	UpdatePreCheckoutQuery

	updateTypeCount
)

var updateTypeLiterals = [updateTypeCount]string{
	UpdateMessage:            "message",
	UpdateEditedMessage:      "edited_message",
	UpdateChannelPost:        "channel_post",
	UpdateEditedChannelPost:  "edited_channel_post",
	UpdateInlineQuery:        "inline_query",
	UpdateChosenInlineResult: "chosen_inline_result",
	UpdateCallbackQuery:      "callback_query",
	UpdateShippingQuery:      "shipping_query",
	UpdatePreCheckoutQuery:   "pre_checkout_query",
}

func (u UpdateType) Literal() string {
	if u < 0 || u >= updateTypeCount {
		panic(fmt.Sprintf("tgapi: неизвестный UpdateType %d", int(u)))
	}

	return updateTypeLiterals[u]
}

func (u UpdateType) String() string {
	return u.Literal()
}

func UpdateTypes() []UpdateType {
	types := make([]UpdateType, 0, updateTypeCount)
	for u := UpdateMessage; u < updateTypeCount; u++ {
		types = append(types, u)
	}

	return types
}

// ParseUpdateTypes переводит литералы из конфигурации в UpdateType.
func ParseUpdateTypes(literals []string) ([]UpdateType, error) {
	result := make([]UpdateType, 0, len(literals))

	for _, literal := range literals {
		if literal == "" {
			continue
		}

		found := false

		for u, known := range updateTypeLiterals {
			if known == literal {
				result = append(result, UpdateType(u))
				found = true

				break
			}
		}

		if !found {
			return nil, &domainerrors.ErrInvalidValue{FieldName: "allowed_updates", Value: literal}
		}
	}

	return result, nil
}

// MarshalUpdateTypes сериализует фильтр в JSON-массив литералов, например ["message","callback_query"].
func MarshalUpdateTypes(types []UpdateType) string {
	var e jx.Encoder

	e.ArrStart()

	for _, u := range types {
		e.Str(u.Literal())
	}

	e.ArrEnd()

	return e.String()
}
