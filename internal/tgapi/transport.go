package tgapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-resty/resty/v2"

	domainerrors "github.com/central-university-dev/go-tgbot/internal/domain/errors"
	"github.com/central-university-dev/go-tgbot/pkg"
)

// Transport выполняет запросы к Bot API. Статус HTTP не проверяется:
// успех или отказ определяется только конвертом в теле ответа.
type Transport interface {
	Request(ctx context.Context, endpoint, query string) ([]byte, error)
	Upload(ctx context.Context, endpoint string, fields []FormField) ([]byte, error)
}

// HTTPTransport — Transport поверх resty без повторов и без собственного таймаута.
// Единственный срок запроса задаёт context вызывающего.
type HTTPTransport struct {
	client  *resty.Client
	network *Network
	logger  *slog.Logger
}

func NewHTTPTransport(network *Network, logger *slog.Logger) *HTTPTransport {
	if logger == nil {
		logger = pkg.DiscardLogger()
	}

	maxRedirects := network.maxRedirects
	if maxRedirects <= 0 {
		maxRedirects = 10
	}

	client := resty.New()
	client.SetTransport(network.RoundTripper())
	client.SetRetryCount(0)
	client.SetRedirectPolicy(resty.FlexibleRedirectPolicy(maxRedirects))
	client.SetLogger(&restyLogger{logger: logger})

	return &HTTPTransport{
		client:  client,
		network: network,
		logger:  logger,
	}
}

func (t *HTTPTransport) Request(ctx context.Context, endpoint, query string) ([]byte, error) {
	operation := operationOf(endpoint)

	if t.network.Closed() {
		return nil, &domainerrors.TransportError{Operation: operation, Cause: domainerrors.ErrNetworkClosed}
	}

	target := endpoint
	if query != "" {
		target = endpoint + "?" + query
	}

	t.logger.Debug("Отправка запроса к Telegram API", "operation", operation, "kind", KindQuery)

	resp, err := t.client.R().SetContext(ctx).Get(target)
	if err != nil {
		return nil, &domainerrors.TransportError{Operation: operation, Cause: err}
	}

	return resp.Body(), nil
}

func (t *HTTPTransport) Upload(ctx context.Context, endpoint string, fields []FormField) ([]byte, error) {
	operation := operationOf(endpoint)

	if t.network.Closed() {
		return nil, &domainerrors.TransportError{Operation: operation, Cause: domainerrors.ErrNetworkClosed}
	}

	parts, closers, err := multipartFields(fields)
	defer func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}()

	if err != nil {
		return nil, &domainerrors.TransportError{Operation: operation, Cause: err}
	}

	t.logger.Debug("Отправка multipart-запроса к Telegram API",
		"operation", operation,
		"kind", KindUpload,
		"parts", len(parts),
	)

	resp, err := t.client.R().
		SetContext(ctx).
		SetMultipartFields(parts...).
		Post(endpoint)
	if err != nil {
		return nil, &domainerrors.TransportError{Operation: operation, Cause: err}
	}

	return resp.Body(), nil
}

// multipartFields строит части в порядке полей. Файлы открываются сразу,
// закрыть их должен вызывающий после отправки.
func multipartFields(fields []FormField) ([]*resty.MultipartField, []io.Closer, error) {
	parts := make([]*resty.MultipartField, 0, len(fields))
	closers := make([]io.Closer, 0)

	for _, field := range fields {
		if !field.IsFile() {
			parts = append(parts, &resty.MultipartField{
				Param:  field.Name,
				Reader: strings.NewReader(field.Text),
			})

			continue
		}

		file, err := os.Open(field.File.Path)
		if err != nil {
			return nil, closers, errors.Wrapf(err, "открытие файла для поля %s", field.Name)
		}

		closers = append(closers, file)

		parts = append(parts, &resty.MultipartField{
			Param:       field.Name,
			FileName:    filepath.Base(field.File.Path),
			ContentType: field.File.MimeType,
			Reader:      file,
		})
	}

	return parts, closers, nil
}

func operationOf(endpoint string) string {
	if i := strings.LastIndexByte(endpoint, '/'); i >= 0 {
		return endpoint[i+1:]
	}

	return endpoint
}

type restyLogger struct {
	logger *slog.Logger
}

func (l *restyLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error(domainerrors.MaskToken(fmt.Sprintf(format, v...)))
}

func (l *restyLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn(domainerrors.MaskToken(fmt.Sprintf(format, v...)))
}

func (l *restyLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug(domainerrors.MaskToken(fmt.Sprintf(format, v...)))
}
