package marketdata_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/infra/marketdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient() *marketdata.Client {
	return marketdata.NewClient(marketdata.Config{Timeout: 2 * time.Second, UserAgent: "test-agent"}, slog.Default())
}

func TestGetJSON_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`{"name":"bitcoin"}`))
	}))
	defer srv.Close()

	var out struct {
		Name string `json:"name"`
	}
	require.NoError(t, newClient().GetJSON(context.Background(), srv.URL, &out))
	assert.Equal(t, "bitcoin", out.Name)
}

func TestGetJSON_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{}`, wantErr: marketdata.ErrNetwork},
		{name: "too many requests", status: http.StatusTooManyRequests, body: ``, wantErr: marketdata.ErrNetwork},
		{name: "empty body", status: http.StatusOK, body: ``, wantErr: marketdata.ErrEmptyResponse},
		{name: "whitespace body", status: http.StatusOK, body: " \n", wantErr: marketdata.ErrEmptyResponse},
		{name: "malformed json", status: http.StatusOK, body: `{"name":`, wantErr: marketdata.ErrDecode},
		{name: "wrong shape", status: http.StatusOK, body: `[1,2,3]`, wantErr: marketdata.ErrDecode},
		{name: "null body", status: http.StatusOK, body: " null\n", wantErr: marketdata.ErrDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			var out struct {
				Name string `json:"name"`
			}
			err := newClient().GetJSON(context.Background(), srv.URL, &out)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestGetJSON_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	var out map[string]any
	err := newClient().GetJSON(context.Background(), url, &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, marketdata.ErrNetwork)
}

func TestGetJSON_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out map[string]any
	err := newClient().GetJSON(ctx, srv.URL, &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, marketdata.ErrNetwork)
}
