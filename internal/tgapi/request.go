package tgapi

import (
	"strings"
)

type RequestKind string

const (
	KindQuery  RequestKind = "query"
	KindUpload RequestKind = "upload"
)

// FileValue — локальный файл для multipart-части.
type FileValue struct {
	Path     string
	MimeType string
}

// FormField — часть multipart-запроса: либо текст, либо файл.
type FormField struct {
	Name string
	Text string
	File *FileValue
}

func TextField(name, value string) FormField {
	return FormField{Name: name, Text: value}
}

func FileField(name, path, mimeType string) FormField {
	if mimeType == "" {
		mimeType = DefaultMimeType
	}

	return FormField{Name: name, File: &FileValue{Path: path, MimeType: mimeType}}
}

func (f FormField) IsFile() bool {
	return f.File != nil
}

// Request — готовый к отправке вызов: строка запроса для GET
// либо упорядоченные части для multipart POST.
type Request struct {
	Operation string
	Kind      RequestKind
	Query     string
	Fields    []FormField
}

func (r Request) IsUpload() bool {
	return r.Kind == KindUpload
}

// Build выбирает вид запроса: любой локальный файл делает его multipart,
// иначе все параметры идут в строку запроса.
func Build(operation string, params *Params) (Request, error) {
	if params == nil {
		params = NewParams()
	}

	if params.err != nil {
		return Request{}, params.err
	}

	if params.hasUpload() {
		return Request{
			Operation: operation,
			Kind:      KindUpload,
			Fields:    buildFields(params.items),
		}, nil
	}

	return Request{
		Operation: operation,
		Kind:      KindQuery,
		Query:     buildQuery(params.items),
	}, nil
}

func buildQuery(items []param) string {
	var sb strings.Builder

	for i, item := range items {
		if i > 0 {
			sb.WriteByte('&')
		}

		sb.WriteString(item.name)
		sb.WriteByte('=')

		if item.encode {
			sb.WriteString(Encode(item.value))
		} else {
			sb.WriteString(item.value)
		}
	}

	return sb.String()
}

func buildFields(items []param) []FormField {
	fields := make([]FormField, 0, len(items))

	for _, item := range items {
		if item.file != nil {
			fields = append(fields, FormField{Name: item.name, File: item.file})
			continue
		}

		fields = append(fields, TextField(item.name, item.value))
	}

	return fields
}
