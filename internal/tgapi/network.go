package tgapi

import (
	"log/slog"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/central-university-dev/go-tgbot/internal/common/httputil"
	"github.com/central-university-dev/go-tgbot/internal/config"
	domainerrors "github.com/central-university-dev/go-tgbot/internal/domain/errors"
	"github.com/central-university-dev/go-tgbot/pkg"
)

// Network владеет общим для процесса HTTP-транспортом: пулом соединений и TLS.
// Создаётся один раз через OpenNetwork и освобождается один раз через Close.
type Network struct {
	base      *http.Transport
	tripper   http.RoundTripper
	closed    atomic.Bool
	closeOnce sync.Once
	logger    *slog.Logger

	maxRedirects int
}

func OpenNetwork(cfg *config.Config, logger *slog.Logger) *Network {
	if cfg == nil {
		cfg = config.Default()
	}

	if logger == nil {
		logger = pkg.DiscardLogger()
	}

	base := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        cfg.MaxIdleConns,
		IdleConnTimeout:     cfg.IdleConnTimeout,
		TLSHandshakeTimeout: cfg.TLSHandshakeTimeout,
	}

	n := &Network{
		base:         base,
		logger:       logger,
		maxRedirects: cfg.MaxRedirects,
	}

	var tripper http.RoundTripper = base
	if cfg.CBEnabled {
		tripper = httputil.NewCircuitBreakerTransport(cfg, base, logger, "telegram")
	}

	n.tripper = &guardedRoundTripper{network: n, next: tripper}

	logger.Debug("Сетевой ресурс открыт", "circuit_breaker", cfg.CBEnabled)

	return n
}

func (n *Network) RoundTripper() http.RoundTripper {
	return n.tripper
}

func (n *Network) Closed() bool {
	return n.closed.Load()
}

// Ready сообщает, можно ли ещё отправлять запросы. Подходит как проверка готовности.
func (n *Network) Ready() error {
	if n.Closed() {
		return domainerrors.ErrNetworkClosed
	}

	return nil
}

// Close освобождает соединения. Повторный вызов ничего не делает.
func (n *Network) Close() error {
	n.closeOnce.Do(func() {
		n.closed.Store(true)
		n.base.CloseIdleConnections()
		n.logger.Debug("Сетевой ресурс закрыт")
	})

	return nil
}

type guardedRoundTripper struct {
	network *Network
	next    http.RoundTripper
}

func (g *guardedRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if g.network.Closed() {
		return nil, domainerrors.ErrNetworkClosed
	}

	return g.next.RoundTrip(req)
}
