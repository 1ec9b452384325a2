package tgapi_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/central-university-dev/go-tgbot/internal/domain/errors"
	"github.com/central-university-dev/go-tgbot/internal/domain/models"
	"github.com/central-university-dev/go-tgbot/internal/tgapi"
	"github.com/central-university-dev/go-tgbot/internal/tgapi/mocks"
	"github.com/central-university-dev/go-tgbot/pkg/ptr"
)

type recordedCall struct {
	method    string
	operation string
	query     url.Values
	form      url.Values
	files     map[string]string
}

// fakeBotAPI отвечает заданным result на каждую операцию и записывает вызовы.
type fakeBotAPI struct {
	mu      sync.Mutex
	results map[string]string
	calls   []recordedCall
}

func newFakeBotAPI(t *testing.T, results map[string]string) (*fakeBotAPI, *tgapi.Client) {
	t.Helper()

	fake := &fakeBotAPI{results: results}

	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	transport, _ := newTestTransport(t)

	client, err := tgapi.NewClient("123:SECRET", server.URL, transport, nil)
	require.NoError(t, err)

	return fake, client
}

func (f *fakeBotAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	call := recordedCall{
		method:    r.Method,
		operation: filepath.Base(r.URL.Path),
		query:     r.URL.Query(),
		files:     map[string]string{},
	}

	if r.Method == http.MethodPost {
		if err := r.ParseMultipartForm(1 << 20); err == nil {
			call.form = r.MultipartForm.Value

			for name, headers := range r.MultipartForm.File {
				file, err := headers[0].Open()
				if err != nil {
					continue
				}

				data, _ := io.ReadAll(file)
				_ = file.Close()
				call.files[name] = headers[0].Filename + ":" + headers[0].Header.Get("Content-Type") + ":" + string(data)
			}
		}
	}

	f.mu.Lock()
	f.calls = append(f.calls, call)
	result, ok := f.results[call.operation]
	f.mu.Unlock()

	if !ok {
		_, _ = w.Write([]byte(`{"ok":false,"error_code":404,"description":"Not Found"}`))
		return
	}

	_, _ = w.Write([]byte(`{"ok":true,"result":` + result + `}`))
}

func (f *fakeBotAPI) lastCall(t *testing.T) recordedCall {
	t.Helper()

	f.mu.Lock()
	defer f.mu.Unlock()

	require.NotEmpty(t, f.calls)

	return f.calls[len(f.calls)-1]
}

func TestNewClient_Validation(t *testing.T) {
	transport := mocks.NewTransport(t)

	_, err := tgapi.NewClient("", "", transport, nil)
	assert.ErrorIs(t, err, &domainerrors.ErrMissingRequiredField{})

	_, err = tgapi.NewClient("token", "", nil, nil)
	assert.ErrorIs(t, err, &domainerrors.ErrMissingRequiredField{})

	client, err := tgapi.NewClient("token", "", transport, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://api.telegram.org/file/bottoken/photos/file_1.jpg", client.FileURL("photos/file_1.jpg"))
}

func TestClient_CallRoutesByRequestKind(t *testing.T) {
	transport := mocks.NewTransport(t)

	client, err := tgapi.NewClient("TOKEN", "https://api.example.org/", transport, nil)
	require.NoError(t, err)

	transport.On("Request", mock.Anything, "https://api.example.org/botTOKEN/getMe", "").
		Return([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"Bot"}}`), nil).Once()
	transport.On("Upload", mock.Anything, "https://api.example.org/botTOKEN/sendDocument", mock.MatchedBy(func(fields []tgapi.FormField) bool {
		return len(fields) == 2 && fields[1].IsFile() && fields[1].File.Path == "/tmp/report.pdf"
	})).Return([]byte(`{"ok":true,"result":{"message_id":3,"date":0,"chat":{"id":1,"type":"private"}}}`), nil).Once()

	me, err := client.GetMe(context.Background())
	require.NoError(t, err)
	assert.True(t, me.IsBot)
	assert.Equal(t, "Bot", me.FirstName)

	msg, err := client.SendDocument(context.Background(), tgapi.MediaConfig{
		ChatID: models.ChatByID(1),
		File:   models.LocalFile("/tmp/report.pdf", "application/pdf"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), msg.MessageID)
}

func TestClient_InvalidParamsDoNotReachTransport(t *testing.T) {
	transport := mocks.NewTransport(t)

	client, err := tgapi.NewClient("TOKEN", "", transport, nil)
	require.NoError(t, err)

	_, err = client.SendMessage(context.Background(), tgapi.MessageConfig{Text: "hi"})

	assert.ErrorIs(t, err, &domainerrors.ErrMissingRequiredField{})
	transport.AssertNotCalled(t, "Request", mock.Anything, mock.Anything, mock.Anything)
}

func TestClient_SendMessage(t *testing.T) {
	fake, client := newFakeBotAPI(t, map[string]string{
		"sendMessage": `{"message_id":10,"date":1700000000,"chat":{"id":-100,"type":"supergroup"},"text":"Привет"}`,
	})

	msg, err := client.SendMessage(context.Background(), tgapi.MessageConfig{
		ChatID:    models.ChatByID(-100),
		Text:      "Привет & <b>мир</b>",
		ParseMode: tgapi.ParseModeHTML,
		SendOptions: tgapi.SendOptions{
			ReplyToMessageID: ptr.Ptr(int64(9)),
			ReplyMarkup:      models.NewInlineKeyboard([]models.InlineKeyboardButton{models.NewInlineButtonData("OK", "ok")}),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), msg.MessageID)
	assert.Equal(t, models.ChatSupergroup, msg.Chat.Type)

	call := fake.lastCall(t)
	assert.Equal(t, http.MethodGet, call.method)
	assert.Equal(t, "-100", call.query.Get("chat_id"))
	assert.Equal(t, "Привет & <b>мир</b>", call.query.Get("text"))
	assert.Equal(t, "HTML", call.query.Get("parse_mode"))
	assert.Equal(t, "9", call.query.Get("reply_to_message_id"))
	assert.JSONEq(t, `{"inline_keyboard":[[{"text":"OK","callback_data":"ok"}]]}`, call.query.Get("reply_markup"))
	assert.NotContains(t, call.query, "disable_notification")
	assert.NotContains(t, call.query, "disable_web_page_preview")
}

func TestClient_SendMessageWithoutMarkup(t *testing.T) {
	fake, client := newFakeBotAPI(t, map[string]string{
		"sendMessage": `{"message_id":1,"date":0,"chat":{"id":1,"type":"private"}}`,
	})

	_, err := client.SendMessage(context.Background(), tgapi.MessageConfig{
		ChatID: models.ChatByID(1),
		Text:   "hi",
	})
	require.NoError(t, err)

	call := fake.lastCall(t)
	assert.NotContains(t, call.query, "reply_markup")
	assert.NotContains(t, call.query, "parse_mode")
}

func TestClient_APIError(t *testing.T) {
	_, client := newFakeBotAPI(t, map[string]string{})

	_, err := client.GetChat(context.Background(), models.ChatByUsername("missing"))

	var apiErr *domainerrors.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Not Found", apiErr.Description)
	assert.Equal(t, 404, apiErr.Code)
	assert.Equal(t, "getChat", apiErr.Operation)
}

func TestClient_DecodeError(t *testing.T) {
	_, client := newFakeBotAPI(t, map[string]string{
		"getChatMembersCount": `"many"`,
	})

	_, err := client.GetChatMembersCount(context.Background(), models.ChatByID(1))

	var decodeErr *domainerrors.DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "getChatMembersCount", decodeErr.Operation)
}

func TestClient_SendPhotoUpload(t *testing.T) {
	dir := t.TempDir()
	photoPath := filepath.Join(dir, "cat.jpg")
	require.NoError(t, os.WriteFile(photoPath, []byte("JPEG"), 0o600))

	fake, client := newFakeBotAPI(t, map[string]string{
		"sendPhoto": `{"message_id":2,"date":0,"chat":{"id":42,"type":"private"},"photo":[{"file_id":"p1","width":1,"height":1}]}`,
	})

	msg, err := client.SendPhoto(context.Background(), tgapi.MediaConfig{
		ChatID:  models.ChatByID(42),
		File:    models.LocalFile(photoPath, "image/jpeg"),
		Caption: "кот",
		SendOptions: tgapi.SendOptions{
			DisableNotification: true,
		},
	})

	require.NoError(t, err)
	require.Len(t, msg.Photo, 1)

	call := fake.lastCall(t)
	assert.Equal(t, http.MethodPost, call.method)
	assert.Equal(t, []string{"42"}, call.form["chat_id"])
	assert.Equal(t, []string{"кот"}, call.form["caption"])
	assert.Equal(t, []string{"true"}, call.form["disable_notification"])
	assert.Equal(t, "cat.jpg:image/jpeg:JPEG", call.files["photo"])
	assert.Empty(t, call.query)
}

func TestClient_SendMediaGroupSamePathTwice(t *testing.T) {
	dir := t.TempDir()
	photoPath := filepath.Join(dir, "same.jpg")
	require.NoError(t, os.WriteFile(photoPath, []byte("IMG"), 0o600))

	fake, client := newFakeBotAPI(t, map[string]string{
		"sendMediaGroup": `[{"message_id":1,"date":0,"chat":{"id":1,"type":"private"}},{"message_id":2,"date":0,"chat":{"id":1,"type":"private"}}]`,
	})

	messages, err := client.SendMediaGroup(context.Background(), tgapi.MediaGroupConfig{
		ChatID: models.ChatByID(1),
		Media: []models.InputMedia{
			models.NewInputMediaPhoto(models.LocalFile(photoPath, "image/jpeg"), "a"),
			models.NewInputMediaPhoto(models.LocalFile(photoPath, "image/jpeg"), "b"),
		},
	})

	require.NoError(t, err)
	require.Len(t, messages, 2)

	call := fake.lastCall(t)
	require.Len(t, call.files, 2)
	assert.Contains(t, call.files, "file0")
	assert.Contains(t, call.files, "file1")

	var media []map[string]any
	require.NoError(t, json.Unmarshal([]byte(call.form["media"][0]), &media))
	assert.Equal(t, "attach://file0", media[0]["media"])
	assert.Equal(t, "attach://file1", media[1]["media"])
}

func TestClient_EditMessageTextInline(t *testing.T) {
	fake, client := newFakeBotAPI(t, map[string]string{
		"editMessageText": `true`,
	})

	msg, err := client.EditMessageText(context.Background(), tgapi.EditMessageTextConfig{
		Target: models.Inline("inline-1"),
		Text:   "новый текст",
	})

	require.NoError(t, err)
	assert.Zero(t, msg.MessageID)

	call := fake.lastCall(t)
	assert.Equal(t, "inline-1", call.query.Get("inline_message_id"))
	assert.NotContains(t, call.query, "chat_id")
}

func TestClient_CallerIdentifiersAreEncoded(t *testing.T) {
	fake, client := newFakeBotAPI(t, map[string]string{
		"answerCallbackQuery": `true`,
		"sendGame":            `{"message_id":3,"date":0,"chat":{"id":7,"type":"private"}}`,
		"editMessageText":     `true`,
	})

	_, err := client.AnswerCallbackQuery(context.Background(), tgapi.CallbackConfig{
		CallbackQueryID: "a&b=c+d",
	})
	require.NoError(t, err)
	assert.Equal(t, "a&b=c+d", fake.lastCall(t).query.Get("callback_query_id"))

	_, err = client.SendGame(context.Background(), tgapi.GameConfig{
		ChatID:        models.ChatByID(7),
		GameShortName: "игра & co",
	})
	require.NoError(t, err)
	assert.Equal(t, "игра & co", fake.lastCall(t).query.Get("game_short_name"))

	_, err = client.EditMessageText(context.Background(), tgapi.EditMessageTextConfig{
		Target: models.Inline("AA+/=&x"),
		Text:   "t",
	})
	require.NoError(t, err)

	call := fake.lastCall(t)
	assert.Equal(t, "AA+/=&x", call.query.Get("inline_message_id"))
	assert.NotContains(t, call.query, "x")
}

func TestClient_SendChatAction(t *testing.T) {
	fake, client := newFakeBotAPI(t, map[string]string{"sendChatAction": `true`})

	ok, err := client.SendChatAction(context.Background(), models.ChatByID(7), tgapi.ActionUploadDocument)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "upload_document", fake.lastCall(t).query.Get("action"))
}

func TestClient_AnswerInlineQueryPersonal(t *testing.T) {
	fake, client := newFakeBotAPI(t, map[string]string{"answerInlineQuery": `true`})

	_, err := client.AnswerInlineQuery(context.Background(), tgapi.InlineConfig{
		InlineQueryID: "q1",
		Results: []models.InlineQueryResult{
			models.NewInlineQueryResultArticle("1", "Заголовок", "Текст"),
		},
		IsPersonal: true,
	})
	require.NoError(t, err)

	call := fake.lastCall(t)
	assert.Equal(t, "true", call.query.Get("is_personal"))
	assert.NotContains(t, call.query, "disable_notification")
	assert.JSONEq(t,
		`[{"type":"article","id":"1","title":"Заголовок","input_message_content":{"message_text":"Текст"}}]`,
		call.query.Get("results"))
}

func TestClient_RestrictChatMemberSendsAllFlags(t *testing.T) {
	fake, client := newFakeBotAPI(t, map[string]string{"restrictChatMember": `true`})

	_, err := client.RestrictChatMember(context.Background(), tgapi.RestrictConfig{
		ChatID:      models.ChatByID(-1),
		UserID:      5,
		Permissions: models.RestrictPermissions{CanSendMessages: true},
	})
	require.NoError(t, err)

	call := fake.lastCall(t)
	assert.Equal(t, "true", call.query.Get("can_send_messages"))
	assert.Equal(t, "false", call.query.Get("can_send_media_messages"))
	assert.NotContains(t, call.query, "until_date")
}

func TestClient_SendInvoice(t *testing.T) {
	fake, client := newFakeBotAPI(t, map[string]string{
		"sendInvoice": `{"message_id":1,"date":0,"chat":{"id":1,"type":"private"}}`,
	})

	_, err := client.SendInvoice(context.Background(), tgapi.InvoiceConfig{
		ChatID:         models.ChatByID(1),
		Title:          "Подписка",
		Description:    `Месяц "Pro"`,
		Payload:        "sub-1",
		ProviderToken:  "provider",
		StartParameter: "start",
		Currency:       "RUB",
		Prices:         []models.LabeledPrice{{Label: `Pro "месяц"`, Amount: 49900}},
		ProviderData:   `{"receipt":true}`,
		NeedEmail:      true,
	})
	require.NoError(t, err)

	call := fake.lastCall(t)
	assert.JSONEq(t, `[{"label":"Pro \"месяц\"","amount":49900}]`, call.query.Get("prices"))
	assert.Equal(t, `{"receipt":true}`, call.query.Get("provider_data"))
	assert.Equal(t, "true", call.query.Get("need_email"))
	assert.NotContains(t, call.query, "is_flexible")
}

func TestClient_SetWebhookWithCertificate(t *testing.T) {
	dir := t.TempDir()
	certPath := filepath.Join(dir, "cert.pem")
	require.NoError(t, os.WriteFile(certPath, []byte("CERT"), 0o600))

	fake, client := newFakeBotAPI(t, map[string]string{"setWebhook": `true`})

	ok, err := client.SetWebhook(context.Background(), tgapi.WebhookConfig{
		URL:            "https://example.com/hook",
		Certificate:    models.LocalFile(certPath, "application/x-pem-file"),
		MaxConnections: ptr.Ptr(40),
		AllowedUpdates: []tgapi.UpdateType{tgapi.UpdateMessage},
	})

	require.NoError(t, err)
	assert.True(t, ok)

	call := fake.lastCall(t)
	assert.Equal(t, http.MethodPost, call.method)
	assert.Equal(t, []string{"https://example.com/hook"}, call.form["url"])
	assert.Equal(t, []string{"40"}, call.form["max_connections"])
	assert.Equal(t, []string{`["message"]`}, call.form["allowed_updates"])
	assert.Equal(t, "cert.pem:application/x-pem-file:CERT", call.files["certificate"])
}

func TestClient_DownloadFile(t *testing.T) {
	fake, client := newFakeBotAPI(t, map[string]string{
		"getFile": `{"file_id":"f1","file_size":4,"file_path":"documents/file_1.txt"}`,
	})

	file, err := client.GetFile(context.Background(), "f1")
	require.NoError(t, err)
	assert.Equal(t, "documents/file_1.txt", file.FilePath)
	assert.Equal(t, "f1", fake.lastCall(t).query.Get("file_id"))

	_, err = client.DownloadFile(context.Background(), "")
	assert.ErrorIs(t, err, &domainerrors.ErrMissingRequiredField{})
}
