package tgapi

import (
	"encoding/json"
	"strconv"

	"github.com/go-faster/errors"

	domainerrors "github.com/central-university-dev/go-tgbot/internal/domain/errors"
	"github.com/central-university-dev/go-tgbot/internal/domain/models"
)

const DefaultMimeType = "application/octet-stream"

type param struct {
	name   string
	value  string
	encode bool
	file   *FileValue
}

// Params — упорядоченный набор параметров метода. Первая ошибка запоминается
// и возвращается из Build, последующие вызовы её не перетирают.
type Params struct {
	items []param
	err   error
}

func NewParams() *Params {
	return &Params{}
}

func (p *Params) fail(err error) *Params {
	if p.err == nil {
		p.err = err
	}

	return p
}

func (p *Params) add(name, value string, encode bool) *Params {
	p.items = append(p.items, param{name: name, value: value, encode: encode})
	return p
}

// String добавляет свободный текст. Пустое значение пропускается.
func (p *Params) String(name, value string) *Params {
	if value == "" {
		return p
	}

	return p.add(name, value, true)
}

// RequiredString добавляет текст даже если он пустой.
func (p *Params) RequiredString(name, value string) *Params {
	return p.add(name, value, true)
}

// Raw добавляет литерал без кодирования. Только для значений перечислений и чисел,
// строки от вызывающего идут через String или RequiredString.
func (p *Params) Raw(name, value string) *Params {
	return p.add(name, value, false)
}

func (p *Params) Int64(name string, value int64) *Params {
	return p.add(name, strconv.FormatInt(value, 10), false)
}

func (p *Params) Int(name string, value int) *Params {
	return p.add(name, strconv.Itoa(value), false)
}

func (p *Params) Float64(name string, value float64) *Params {
	return p.add(name, strconv.FormatFloat(value, 'f', -1, 64), false)
}

func (p *Params) OptInt(name string, value *int) *Params {
	if value == nil {
		return p
	}

	return p.Int(name, *value)
}

func (p *Params) OptInt64(name string, value *int64) *Params {
	if value == nil {
		return p
	}

	return p.Int64(name, *value)
}

func (p *Params) OptFloat64(name string, value *float64) *Params {
	if value == nil {
		return p
	}

	return p.Float64(name, *value)
}

// Bool добавляет параметр только для true.
func (p *Params) Bool(name string, value bool) *Params {
	if !value {
		return p
	}

	return p.add(name, "true", false)
}

// JSON добавляет вложенный объект компактным JSON. nil и null пропускаются.
func (p *Params) JSON(name string, value any) *Params {
	if value == nil {
		return p
	}

	data, err := json.Marshal(value)
	if err != nil {
		return p.fail(errors.Wrapf(err, "сериализация параметра %s", name))
	}

	if len(data) == 0 || string(data) == "null" {
		return p
	}

	return p.add(name, string(data), true)
}

// ReplyMarkup добавляет разметку, только если она задана.
func (p *Params) ReplyMarkup(markup models.ReplyMarkup) *Params {
	if markup == nil {
		return p
	}

	return p.JSON("reply_markup", markup)
}

func (p *Params) ChatID(name string, chatID models.ChatID) *Params {
	if chatID.IsZero() {
		return p.fail(&domainerrors.ErrMissingRequiredField{FieldName: name})
	}

	if chatID.Username != "" {
		return p.add(name, chatID.Username, true)
	}

	return p.Int64(name, chatID.ID)
}

// Target адресует сообщение для методов редактирования.
func (p *Params) Target(target models.MessageTarget) *Params {
	if target.IsInline() {
		return p.RequiredString("inline_message_id", target.InlineMessageID)
	}

	if target.MessageID == 0 {
		return p.fail(&domainerrors.ErrMissingRequiredField{FieldName: "message_id"})
	}

	return p.ChatID("chat_id", target.ChatID).Int64("message_id", target.MessageID)
}

func (p *Params) ParseMode(mode ParseMode) *Params {
	literal := mode.Literal()
	if literal == "" {
		return p
	}

	return p.Raw("parse_mode", literal)
}

// File добавляет файловый параметр: ссылку строкой или локальный файл частью multipart.
func (p *Params) File(name string, file models.InputFile) *Params {
	if file.Ref == "" {
		return p.fail(&domainerrors.ErrMissingRequiredField{FieldName: name})
	}

	if !file.IsLocal() {
		return p.add(name, file.Ref, true)
	}

	p.items = append(p.items, param{name: name, file: newFileValue(file)})

	return p
}

// OptFile добавляет файл, только если ссылка задана.
func (p *Params) OptFile(name string, file models.InputFile) *Params {
	if file.Ref == "" {
		return p
	}

	return p.File(name, file)
}

func (p *Params) Err() error {
	return p.err
}

func (p *Params) hasUpload() bool {
	for _, item := range p.items {
		if item.file != nil {
			return true
		}
	}

	return false
}

func newFileValue(file models.InputFile) *FileValue {
	mimeType := file.MimeType
	if mimeType == "" {
		mimeType = DefaultMimeType
	}

	return &FileValue{Path: file.Ref, MimeType: mimeType}
}
