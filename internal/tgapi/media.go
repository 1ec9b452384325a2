package tgapi

import (
	"strconv"

	domainerrors "github.com/central-university-dev/go-tgbot/internal/domain/errors"
	"github.com/central-university-dev/go-tgbot/internal/domain/models"
)

const attachScheme = "attach://"

type inputMediaWire struct {
	Type              models.InputMediaType `json:"type"`
	Media             string                `json:"media"`
	Caption           string                `json:"caption,omitempty"`
	ParseMode         string                `json:"parse_mode,omitempty"`
	Width             int                   `json:"width,omitempty"`
	Height            int                   `json:"height,omitempty"`
	Duration          int                   `json:"duration,omitempty"`
	Performer         string                `json:"performer,omitempty"`
	Title             string                `json:"title,omitempty"`
	SupportsStreaming bool                  `json:"supports_streaming,omitempty"`
}

// AttachName возвращает имя multipart-части для локального элемента на позиции index.
// Имя зависит от позиции, а не от пути, поэтому одинаковые пути не конфликтуют.
func AttachName(index int) string {
	return "file" + strconv.Itoa(index)
}

// Media добавляет массив элементов sendMediaGroup. Локальные элементы становятся
// частями file<N>, а в JSON на них ссылается attach://file<N>.
func (p *Params) Media(name string, items []models.InputMedia) *Params {
	if len(items) == 0 {
		return p.fail(&domainerrors.ErrMissingRequiredField{FieldName: name})
	}

	wire := make([]inputMediaWire, 0, len(items))
	files := make([]param, 0)

	for i, item := range items {
		encoded, file, ok := p.mediaItem(name, i, item)
		if !ok {
			return p
		}

		wire = append(wire, encoded)

		if file != nil {
			files = append(files, *file)
		}
	}

	p.JSON(name, wire)
	p.items = append(p.items, files...)

	return p
}

// SingleMedia добавляет один элемент для editMessageMedia.
func (p *Params) SingleMedia(name string, item models.InputMedia) *Params {
	encoded, file, ok := p.mediaItem(name, 0, item)
	if !ok {
		return p
	}

	p.JSON(name, encoded)

	if file != nil {
		p.items = append(p.items, *file)
	}

	return p
}

func (p *Params) mediaItem(name string, index int, item models.InputMedia) (inputMediaWire, *param, bool) {
	if item.Media.Ref == "" {
		p.fail(&domainerrors.ErrMissingRequiredField{FieldName: name + "[" + strconv.Itoa(index) + "].media"})
		return inputMediaWire{}, nil, false
	}

	encoded := inputMediaWire{
		Type:              item.Type,
		Media:             item.Media.Ref,
		Caption:           item.Caption,
		ParseMode:         item.ParseMode,
		Width:             item.Width,
		Height:            item.Height,
		Duration:          item.Duration,
		Performer:         item.Performer,
		Title:             item.Title,
		SupportsStreaming: item.SupportsStreaming,
	}

	if !item.Media.IsLocal() {
		return encoded, nil, true
	}

	partName := AttachName(index)
	encoded.Media = attachScheme + partName

	return encoded, &param{name: partName, file: newFileValue(item.Media)}, true
}
