package errors

import (
	"errors"
	"fmt"
	"regexp"
)

var botTokenPattern = regexp.MustCompile(`/bot[^/\s"]+`)

// MaskToken скрывает токен бота в тексте ошибки.
func MaskToken(text string) string {
	return botTokenPattern.ReplaceAllString(text, "/bot[MASKED_TOKEN]")
}

// ErrNetworkClosed возвращается при обращении к уже освобождённому сетевому ресурсу.
var ErrNetworkClosed = errors.New("сетевой ресурс уже закрыт")

// TransportError описывает сбой до получения конверта ответа:
// соединение, TLS, протокол или чтение тела.
type TransportError struct {
	Operation string
	Cause     error
}

func (e *TransportError) Error() string {
	return MaskToken(fmt.Sprintf("ошибка транспорта при вызове %s: %v", e.Operation, e.Cause))
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

func (e *TransportError) Is(target error) bool {
	_, ok := target.(*TransportError)
	return ok
}

// APIError соответствует конверту с ok=false. Description может быть пустым.
type APIError struct {
	Operation       string
	Description     string
	Code            int
	RetryAfter      int
	MigrateToChatID int64
}

func (e *APIError) Error() string {
	if e.Operation == "" {
		return "ошибка Telegram API: " + e.Description
	}

	return fmt.Sprintf("ошибка Telegram API при вызове %s: %s", e.Operation, e.Description)
}

func (e *APIError) Is(target error) bool {
	_, ok := target.(*APIError)
	return ok
}

// DecodeError возникает, когда успешный результат не удаётся отобразить в типизированное значение.
type DecodeError struct {
	Operation string
	Cause     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("ошибка при декодировании результата %s: %v", e.Operation, e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

func (e *DecodeError) Is(target error) bool {
	_, ok := target.(*DecodeError)
	return ok
}

type ErrMissingRequiredField struct {
	FieldName string
}

func (e *ErrMissingRequiredField) Error() string {
	return fmt.Sprintf("отсутствует обязательное поле: %s", e.FieldName)
}

func (e *ErrMissingRequiredField) Is(target error) bool {
	_, ok := target.(*ErrMissingRequiredField)
	return ok
}

type ErrInvalidValue struct {
	FieldName string
	Value     string
}

func (e *ErrInvalidValue) Error() string {
	return fmt.Sprintf("некорректное значение '%s' для поля '%s'", e.Value, e.FieldName)
}

func (e *ErrInvalidValue) Is(target error) bool {
	_, ok := target.(*ErrInvalidValue)
	return ok
}

type ErrUnknownMessageTransport struct {
	Transport string
}

func (e *ErrUnknownMessageTransport) Error() string {
	return fmt.Sprintf("неизвестный транспорт сообщений: %s", e.Transport)
}
