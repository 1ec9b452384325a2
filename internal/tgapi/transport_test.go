package tgapi_test

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/central-university-dev/go-tgbot/internal/config"
	domainerrors "github.com/central-university-dev/go-tgbot/internal/domain/errors"
	"github.com/central-university-dev/go-tgbot/internal/tgapi"
)

func newTestTransport(t *testing.T) (*tgapi.HTTPTransport, *tgapi.Network) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	network := tgapi.OpenNetwork(config.Default(), logger)

	t.Cleanup(func() { _ = network.Close() })

	return tgapi.NewHTTPTransport(network, logger), network
}

func TestHTTPTransport_RequestSendsRawQuery(t *testing.T) {
	var gotMethod, gotPath, gotRawQuery string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotRawQuery = r.URL.RawQuery

		_, _ = w.Write([]byte(`{"ok":true,"result":true}`))
	}))
	defer server.Close()

	transport, _ := newTestTransport(t)

	body, err := transport.Request(context.Background(), server.URL+"/botTOKEN/sendMessage", "chat_id=1&text=a%20b%2Bc")

	require.NoError(t, err)
	assert.Equal(t, `{"ok":true,"result":true}`, string(body))
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "/botTOKEN/sendMessage", gotPath)
	assert.Equal(t, "chat_id=1&text=a%20b%2Bc", gotRawQuery)
}

func TestHTTPTransport_EmptyBodyIsNotError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	transport, _ := newTestTransport(t)

	body, err := transport.Request(context.Background(), server.URL+"/botTOKEN/getMe", "")

	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestHTTPTransport_StatusIsNotInspected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":401,"description":"Unauthorized"}`))
	}))
	defer server.Close()

	transport, _ := newTestTransport(t)

	body, err := transport.Request(context.Background(), server.URL+"/botTOKEN/getMe", "")

	require.NoError(t, err)
	assert.Contains(t, string(body), "Unauthorized")
}

func TestHTTPTransport_FollowsRedirects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/old/getMe", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/new/getMe", http.StatusFound)
	})
	mux.HandleFunc("/new/getMe", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true,"result":{"id":1}}`))
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	transport, _ := newTestTransport(t)

	body, err := transport.Request(context.Background(), server.URL+"/old/getMe", "")

	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true,"result":{"id":1}}`, string(body))
}

func TestHTTPTransport_ConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	endpoint := server.URL + "/botSECRET123/getMe"
	server.Close()

	transport, _ := newTestTransport(t)

	_, err := transport.Request(context.Background(), endpoint, "")

	require.Error(t, err)

	var transportErr *domainerrors.TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, "getMe", transportErr.Operation)
	assert.NotContains(t, err.Error(), "SECRET123", "токен не должен попадать в текст ошибки")
}

func TestHTTPTransport_ContextDeadline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}

		_, _ = w.Write([]byte(`{"ok":true,"result":[]}`))
	}))
	defer server.Close()

	transport, _ := newTestTransport(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := transport.Request(ctx, server.URL+"/botTOKEN/getUpdates", "offset=0")

	assert.ErrorIs(t, err, &domainerrors.TransportError{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestHTTPTransport_ClosedNetwork(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true,"result":true}`))
	}))
	defer server.Close()

	transport, network := newTestTransport(t)
	require.NoError(t, network.Ready())

	require.NoError(t, network.Close())
	require.NoError(t, network.Close(), "повторный Close не должен падать")
	assert.True(t, network.Closed())
	assert.ErrorIs(t, network.Ready(), domainerrors.ErrNetworkClosed)

	_, err := transport.Request(context.Background(), server.URL+"/botTOKEN/getMe", "")
	assert.ErrorIs(t, err, domainerrors.ErrNetworkClosed)
	assert.ErrorIs(t, err, &domainerrors.TransportError{})

	_, err = transport.Upload(context.Background(), server.URL+"/botTOKEN/sendPhoto", nil)
	assert.ErrorIs(t, err, domainerrors.ErrNetworkClosed)
}

func TestHTTPTransport_UploadMultipart(t *testing.T) {
	dir := t.TempDir()
	photoPath := filepath.Join(dir, "cat.jpg")
	require.NoError(t, os.WriteFile(photoPath, []byte("JPEGDATA"), 0o600))

	type part struct {
		name        string
		fileName    string
		contentType string
		body        string
	}

	var (
		gotMethod string
		parts     []part
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method

		mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "multipart/form-data" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		reader := multipart.NewReader(r.Body, params["boundary"])

		for {
			p, err := reader.NextPart()
			if err == io.EOF {
				break
			}

			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}

			data, _ := io.ReadAll(p)
			parts = append(parts, part{
				name:        p.FormName(),
				fileName:    p.FileName(),
				contentType: p.Header.Get("Content-Type"),
				body:        string(data),
			})
		}

		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1}}`))
	}))
	defer server.Close()

	transport, _ := newTestTransport(t)

	fields := []tgapi.FormField{
		tgapi.TextField("chat_id", "42"),
		tgapi.FileField("photo", photoPath, "image/jpeg"),
		tgapi.TextField("caption", "кот & пёс"),
	}

	body, err := transport.Upload(context.Background(), server.URL+"/botTOKEN/sendPhoto", fields)

	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true,"result":{"message_id":1}}`, string(body))
	assert.Equal(t, http.MethodPost, gotMethod)

	require.Len(t, parts, 3)

	assert.Equal(t, part{name: "chat_id", body: "42"}, parts[0])
	assert.Equal(t, part{name: "photo", fileName: "cat.jpg", contentType: "image/jpeg", body: "JPEGDATA"}, parts[1])
	assert.Equal(t, part{name: "caption", body: "кот & пёс"}, parts[2])
}

func TestHTTPTransport_UploadMissingFile(t *testing.T) {
	transport, _ := newTestTransport(t)

	fields := []tgapi.FormField{tgapi.FileField("photo", "/nonexistent/cat.jpg", "image/jpeg")}

	_, err := transport.Upload(context.Background(), "http://127.0.0.1:1/botTOKEN/sendPhoto", fields)

	var transportErr *domainerrors.TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, "sendPhoto", transportErr.Operation)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestHTTPTransport_CircuitBreaker(t *testing.T) {
	cfg := config.Default()
	cfg.CBEnabled = true
	cfg.CBMinimumRequiredCalls = 1
	cfg.CBFailureRateThreshold = 100
	cfg.CBWaitDurationInOpenState = time.Minute

	network := tgapi.OpenNetwork(cfg, nil)
	defer network.Close()

	transport := tgapi.NewHTTPTransport(network, nil)

	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	endpoint := server.URL + "/botTOKEN/getMe"
	server.Close()

	_, err := transport.Request(context.Background(), endpoint, "")
	require.ErrorIs(t, err, &domainerrors.TransportError{})

	_, err = transport.Request(context.Background(), endpoint, "")
	require.ErrorIs(t, err, &domainerrors.TransportError{})
	assert.Contains(t, err.Error(), "circuit breaker is open")
}
