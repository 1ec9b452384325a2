package models

// FileSource определяет, как файл попадает в запрос: ссылкой в строке запроса
// или отдельной частью multipart-тела.
type FileSource int

const (
	// SourceRemote — URL или file_id, уже известный Telegram.
	SourceRemote FileSource = iota
	// SourceLocalUpload — путь к локальному файлу, который нужно загрузить.
	SourceLocalUpload
)

func (s FileSource) String() string {
	if s == SourceLocalUpload {
		return "local"
	}

	return "remote"
}

// InputFile — файловый параметр метода. Ветку запроса выбирает Source, а не вид Ref.
type InputFile struct {
	Source   FileSource
	Ref      string
	MimeType string
}

func RemoteFile(ref string) InputFile {
	return InputFile{Source: SourceRemote, Ref: ref}
}

func LocalFile(path, mimeType string) InputFile {
	return InputFile{Source: SourceLocalUpload, Ref: path, MimeType: mimeType}
}

func (f InputFile) IsLocal() bool {
	return f.Source == SourceLocalUpload
}

type InputMediaType string

const (
	MediaPhoto     InputMediaType = "photo"
	MediaVideo     InputMediaType = "video"
	MediaAnimation InputMediaType = "animation"
	MediaAudio     InputMediaType = "audio"
	MediaDocument  InputMediaType = "document"
)

// InputMedia — элемент sendMediaGroup или новое содержимое для editMessageMedia.
type InputMedia struct {
	Type              InputMediaType
	Media             InputFile
	Caption           string
	ParseMode         string
	Width             int
	Height            int
	Duration          int
	Performer         string
	Title             string
	SupportsStreaming bool
}

func NewInputMediaPhoto(media InputFile, caption string) InputMedia {
	return InputMedia{Type: MediaPhoto, Media: media, Caption: caption}
}

func NewInputMediaVideo(media InputFile, caption string) InputMedia {
	return InputMedia{Type: MediaVideo, Media: media, Caption: caption}
}

// InlineQueryResult — элемент ответа answerInlineQuery, сериализуется как есть.
type InlineQueryResult interface {
	inlineQueryResult()
}

type InputTextMessageContent struct {
	MessageText           string `json:"message_text"`
	ParseMode             string `json:"parse_mode,omitempty"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview,omitempty"`
}

type InlineQueryResultArticle struct {
	Type                string                  `json:"type"`
	ID                  string                  `json:"id"`
	Title               string                  `json:"title"`
	InputMessageContent InputTextMessageContent `json:"input_message_content"`
	ReplyMarkup         *InlineKeyboardMarkup   `json:"reply_markup,omitempty"`
	URL                 string                  `json:"url,omitempty"`
	Description         string                  `json:"description,omitempty"`
	ThumbURL            string                  `json:"thumb_url,omitempty"`
}

func (*InlineQueryResultArticle) inlineQueryResult() {}

func NewInlineQueryResultArticle(id, title, text string) *InlineQueryResultArticle {
	return &InlineQueryResultArticle{
		Type:                "article",
		ID:                  id,
		Title:               title,
		InputMessageContent: InputTextMessageContent{MessageText: text},
	}
}

type InlineQueryResultPhoto struct {
	Type        string                `json:"type"`
	ID          string                `json:"id"`
	PhotoURL    string                `json:"photo_url"`
	ThumbURL    string                `json:"thumb_url"`
	Title       string                `json:"title,omitempty"`
	Description string                `json:"description,omitempty"`
	Caption     string                `json:"caption,omitempty"`
	ReplyMarkup *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

func (*InlineQueryResultPhoto) inlineQueryResult() {}

func NewInlineQueryResultPhoto(id, photoURL, thumbURL string) *InlineQueryResultPhoto {
	return &InlineQueryResultPhoto{Type: "photo", ID: id, PhotoURL: photoURL, ThumbURL: thumbURL}
}

type InlineQueryResultLocation struct {
	Type        string                `json:"type"`
	ID          string                `json:"id"`
	Latitude    float64               `json:"latitude"`
	Longitude   float64               `json:"longitude"`
	Title       string                `json:"title"`
	LivePeriod  int                   `json:"live_period,omitempty"`
	ReplyMarkup *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

func (*InlineQueryResultLocation) inlineQueryResult() {}

func NewInlineQueryResultLocation(id, title string, latitude, longitude float64) *InlineQueryResultLocation {
	return &InlineQueryResultLocation{Type: "location", ID: id, Title: title, Latitude: latitude, Longitude: longitude}
}
