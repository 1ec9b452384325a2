package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-faster/errors"

	"github.com/central-university-dev/go-tgbot/internal/common/metrics"
	"github.com/central-university-dev/go-tgbot/internal/config"
	domainerrors "github.com/central-university-dev/go-tgbot/internal/domain/errors"
	"github.com/central-university-dev/go-tgbot/internal/domain/models"
	"github.com/central-university-dev/go-tgbot/internal/relay"
	"github.com/central-university-dev/go-tgbot/internal/tgapi"
	"github.com/central-university-dev/go-tgbot/pkg"
	"github.com/central-university-dev/go-tgbot/pkg/ptr"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка запуска сервиса: %v\n", err)
		os.Exit(1)
	}
}

func startMetricsServer(ctx context.Context, port int, network *tgapi.Network, appLogger *slog.Logger) {
	server := metrics.NewMetricsServer(port, appLogger, network.Ready)

	go func() {
		if err := server.Start(ctx); err != nil {
			appLogger.Error("Ошибка при запуске сервера метрик",
				"error", err,
			)
		}
	}()
}

// setupWebhook либо регистрирует webhook, либо снимает его, чтобы работал getUpdates.
// Возвращает true, если события будут приходить на webhook.
func setupWebhook(ctx context.Context, client *tgapi.Client, cfg *config.Config, allowed []tgapi.UpdateType,
	appLogger *slog.Logger) (bool, error) {
	if cfg.WebhookURL != "" {
		webhook := tgapi.WebhookConfig{
			URL:            cfg.WebhookURL,
			AllowedUpdates: allowed,
		}

		if cfg.WebhookMaxConnections > 0 {
			webhook.MaxConnections = ptr.Ptr(cfg.WebhookMaxConnections)
		}

		if cfg.WebhookCertificate != "" {
			webhook.Certificate = models.LocalFile(cfg.WebhookCertificate, "application/x-pem-file")
		}

		if _, err := client.SetWebhook(ctx, webhook); err != nil {
			return false, fmt.Errorf("ошибка регистрации webhook: %w", err)
		}

		appLogger.Info("Webhook зарегистрирован", "url", cfg.WebhookURL)

		return true, nil
	}

	if cfg.DeleteWebhookOnStart {
		if _, err := client.DeleteWebhook(ctx); err != nil {
			return false, fmt.Errorf("ошибка удаления webhook: %w", err)
		}

		appLogger.Info("Webhook удалён, используется long polling")
	}

	return false, nil
}

// restartDelay решает, стоит ли снова запускать поллер после ошибки Run.
// Повторяются только сбои транспорта и ответы с retry_after.
func restartDelay(err error, base time.Duration) (time.Duration, bool) {
	var apiErr *domainerrors.APIError
	if errors.As(err, &apiErr) {
		if apiErr.RetryAfter > 0 {
			return time.Duration(apiErr.RetryAfter) * time.Second, true
		}

		return 0, false
	}

	if errors.Is(err, domainerrors.ErrNetworkClosed) {
		return 0, false
	}

	var transportErr *domainerrors.TransportError
	if errors.As(err, &transportErr) {
		return base, true
	}

	return 0, false
}

func runPoller(ctx context.Context, poller *tgapi.Poller, handler tgapi.UpdateHandler, retryDelay time.Duration,
	appLogger *slog.Logger) error {
	for {
		err := poller.Run(ctx, handler)
		if err == nil {
			return nil
		}

		delay, ok := restartDelay(err, retryDelay)
		if !ok {
			return err
		}

		appLogger.Warn("Поллер будет перезапущен",
			"error", err,
			"delay", delay,
			"offset", poller.Offset(),
		)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(delay):
		}
	}
}

//nolint:funlen // Длина функции обусловлена последовательной инициализацией всех компонентов.
func run() error {
	cfg := config.LoadConfig()

	appLogger := pkg.NewLogger(os.Stdout, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	network := tgapi.OpenNetwork(cfg, appLogger)
	defer func() {
		if err := network.Close(); err != nil {
			appLogger.Error("Ошибка при закрытии сетевого ресурса",
				"error", err,
			)
		}
	}()

	transport := tgapi.NewHTTPTransport(network, appLogger)

	client, err := tgapi.NewClient(cfg.TelegramBotToken, cfg.TelegramAPIURL, transport, appLogger)
	if err != nil {
		return fmt.Errorf("ошибка создания клиента Bot API: %w", err)
	}

	startCtx, startCancel := context.WithTimeout(ctx, 30*time.Second)
	defer startCancel()

	me, err := client.GetMe(startCtx)
	if err != nil {
		appLogger.Error("Ошибка при проверке токена бота",
			"error", err,
		)

		return fmt.Errorf("ошибка вызова getMe: %w", err)
	}

	appLogger.Info("Бот авторизован",
		"id", me.ID,
		"username", me.Username,
	)

	allowed, err := tgapi.ParseUpdateTypes(cfg.PollAllowedUpdates)
	if err != nil {
		return fmt.Errorf("ошибка в POLL_ALLOWED_UPDATES: %w", err)
	}

	webhookMode, err := setupWebhook(startCtx, client, cfg, allowed, appLogger)
	if err != nil {
		appLogger.Error("Ошибка при настройке webhook",
			"error", err,
		)

		return err
	}

	startMetricsServer(ctx, cfg.BotMetricsPort, network, appLogger)

	if webhookMode {
		appLogger.Info("Ожидание сигнала завершения")
		<-ctx.Done()
		appLogger.Info("Получен сигнал завершения")

		return nil
	}

	sink, err := relay.NewSink(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("ошибка создания приёмника событий: %w", err)
	}

	updatesRelay := relay.New(appLogger, sink)
	defer func() {
		if err := updatesRelay.Close(); err != nil {
			appLogger.Error("Ошибка при закрытии приёмников событий",
				"error", err,
			)
		}
	}()

	poller := tgapi.NewPoller(client, tgapi.PollerConfig{
		Limit:          cfg.PollLimit,
		Timeout:        cfg.PollTimeout,
		AllowedUpdates: allowed,
	}, appLogger)

	if err := runPoller(ctx, poller, updatesRelay.Handle, cfg.PollRetryDelay, appLogger); err != nil {
		return fmt.Errorf("поллер остановлен: %w", err)
	}

	appLogger.Info("Сервис успешно остановлен")

	return nil
}
