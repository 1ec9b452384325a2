package httputil

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/central-university-dev/go-tgbot/internal/config"
)

// CircuitBreakerTransport размыкает цепь только по ошибкам RoundTrip.
// Код HTTP-ответа не учитывается: Bot API сообщает об ошибках в теле ответа.
type CircuitBreakerTransport struct {
	breaker *gobreaker.CircuitBreaker
	next    http.RoundTripper
	logger  *slog.Logger
	name    string
}

func NewCircuitBreakerTransport(
	cfg *config.Config,
	next http.RoundTripper,
	logger *slog.Logger,
	serviceName string,
) *CircuitBreakerTransport {
	if next == nil {
		next = http.DefaultTransport
	}

	settings := gobreaker.Settings{
		Name:        serviceName + "_circuit_breaker",
		MaxRequests: uint32(cfg.CBPermittedCallsInHalfOpen), //nolint:gosec // G115: Значение из конфига
		Interval:    time.Duration(cfg.CBSlidingWindowSize) * time.Second,
		Timeout:     cfg.CBWaitDurationInOpenState,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests == 0 {
				return false
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)

			return counts.Requests >= uint32(cfg.CBMinimumRequiredCalls) && //nolint:gosec // G115: Значение из конфига
				failureRatio >= float64(cfg.CBFailureRateThreshold)/100.0
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if logger != nil {
				logger.Warn("Изменение состояния circuit breaker",
					"name", name,
					"from", from.String(),
					"to", to.String(),
				)
			}
		},
	}

	return &CircuitBreakerTransport{
		breaker: gobreaker.NewCircuitBreaker(settings),
		next:    next,
		logger:  logger,
		name:    serviceName,
	}
}

func (t *CircuitBreakerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	result, err := t.breaker.Execute(func() (interface{}, error) {
		return t.next.RoundTrip(req)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			if t.logger != nil {
				t.logger.Warn("Circuit breaker is open",
					"service", t.name,
					"operation", operationFromPath(req.URL.Path),
				)
			}
		}

		return nil, err
	}

	return result.(*http.Response), nil
}

func (t *CircuitBreakerTransport) State() gobreaker.State {
	return t.breaker.State()
}

// operationFromPath возвращает последний сегмент пути, не раскрывая токен из /bot<token>/.
func operationFromPath(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[i+1:]
		}
	}

	return path
}
