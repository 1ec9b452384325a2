package tgapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/central-university-dev/go-tgbot/internal/common/metrics"
	"github.com/central-university-dev/go-tgbot/internal/config"
	domainerrors "github.com/central-university-dev/go-tgbot/internal/domain/errors"
	"github.com/central-university-dev/go-tgbot/pkg"
)

const tracerName = "github.com/central-university-dev/go-tgbot/internal/tgapi"

// Client превращает вызов метода в Request, отправляет его через Transport
// и разбирает конверт ответа. Безопасен для конкурентного использования,
// если таков Transport.
type Client struct {
	token     string
	apiURL    string
	transport Transport
	logger    *slog.Logger
	tracer    trace.Tracer
}

func NewClient(token, apiURL string, transport Transport, logger *slog.Logger) (*Client, error) {
	if token == "" {
		return nil, &domainerrors.ErrMissingRequiredField{FieldName: "TELEGRAM_BOT_TOKEN"}
	}

	if transport == nil {
		return nil, &domainerrors.ErrMissingRequiredField{FieldName: "transport"}
	}

	if apiURL == "" {
		apiURL = config.DefaultAPIURL
	}

	if logger == nil {
		logger = pkg.DiscardLogger()
	}

	return &Client{
		token:     token,
		apiURL:    strings.TrimRight(apiURL, "/"),
		transport: transport,
		logger:    logger,
		tracer:    otel.Tracer(tracerName),
	}, nil
}

func (c *Client) endpoint(operation string) string {
	return c.apiURL + "/bot" + c.token + "/" + operation
}

// Call собирает запрос из params и возвращает сырой result успешного ответа.
func (c *Client) Call(ctx context.Context, operation string, params *Params) (json.RawMessage, error) {
	req, err := Build(operation, params)
	if err != nil {
		metrics.RecordAPIRequest(operation, string(KindQuery), metrics.OutcomeInvalid, 0)
		return nil, errors.Wrapf(err, "построение запроса %s", operation)
	}

	return c.Do(ctx, req)
}

// Do отправляет уже собранный запрос.
func (c *Client) Do(ctx context.Context, req Request) (json.RawMessage, error) {
	ctx, span := c.tracer.Start(ctx, "tgapi."+req.Operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("tgapi.operation", req.Operation),
			attribute.String("tgapi.kind", string(req.Kind)),
		),
	)
	defer span.End()

	start := time.Now()

	var (
		body []byte
		err  error
	)

	if req.IsUpload() {
		body, err = c.transport.Upload(ctx, c.endpoint(req.Operation), req.Fields)
	} else {
		body, err = c.transport.Request(ctx, c.endpoint(req.Operation), req.Query)
	}

	var result json.RawMessage
	if err == nil {
		result, err = DecodeEnvelope(req.Operation, body)
	}

	outcome := outcomeOf(err)
	metrics.RecordAPIRequest(req.Operation, string(req.Kind), outcome, time.Since(start))
	span.SetAttributes(attribute.String("tgapi.outcome", outcome))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		c.logger.Debug("Вызов Telegram API завершился ошибкой",
			"operation", req.Operation,
			"kind", req.Kind,
			"outcome", outcome,
			"error", err,
		)

		return nil, err
	}

	return result, nil
}

// FileURL возвращает ссылку для скачивания файла по file_path из getFile.
func (c *Client) FileURL(filePath string) string {
	return c.apiURL + "/file/bot" + c.token + "/" + strings.TrimLeft(filePath, "/")
}

// DownloadFile скачивает файл. Тело возвращается как есть, без конверта.
func (c *Client) DownloadFile(ctx context.Context, filePath string) ([]byte, error) {
	if filePath == "" {
		return nil, &domainerrors.ErrMissingRequiredField{FieldName: "file_path"}
	}

	return c.transport.Request(ctx, c.FileURL(filePath), "")
}

func callInto[T any](ctx context.Context, c *Client, operation string, params *Params) (T, error) {
	var out T

	raw, err := c.Call(ctx, operation, params)
	if err != nil {
		return out, err
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return out, &domainerrors.DecodeError{Operation: operation, Cause: err}
	}

	return out, nil
}

func outcomeOf(err error) string {
	if err == nil {
		return metrics.OutcomeSuccess
	}

	var (
		apiErr       *domainerrors.APIError
		transportErr *domainerrors.TransportError
	)

	switch {
	case errors.As(err, &apiErr):
		return metrics.OutcomeAPIError
	case errors.As(err, &transportErr):
		return metrics.OutcomeTransport
	default:
		return metrics.OutcomeDecode
	}
}
