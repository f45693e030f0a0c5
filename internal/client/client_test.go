package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"hermes/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchAllSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/transferencia":
			w.Write([]byte(`[{"segmento":"Suporte","codigo":"123","produto":"Modem X","transferencia_telefone":"1234","transferencia_blip":"Fila1"}]`))
		case "/api/phaseout":
			w.Write([]byte(`[{"item":"A1","descricao_subs_dir":"Novo"}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	got := New(srv.URL+"/api/", time.Second).FetchAll(context.Background())

	require.False(t, got.Failed())
	assert.Equal(t, []models.TransferRecord{{
		Segmento: "Suporte", Codigo: "123", Produto: "Modem X",
		TransferenciaTelefone: "1234", TransferenciaBlip: "Fila1",
	}}, got.Transfers)
	assert.Equal(t, []models.PhaseoutRecord{{Item: "A1", DescricaoSubsDir: "Novo"}}, got.Phaseouts)
}

func TestFetchAllOneDatasetFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/transferencia" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"erro":"Falha ao ler os dados de transferência."}`))
			return
		}
		w.Write([]byte(`[{"item":"A1"}]`))
	}))
	defer srv.Close()

	got := New(srv.URL+"/api", time.Second).FetchAll(context.Background())

	require.True(t, got.Failed())
	var statusErr *HTTPStatusError
	require.True(t, errors.As(got.TransferErr, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, "Falha ao ler os dados de transferência.", statusErr.Message)
	assert.Equal(t, models.Transfer, statusErr.Dataset)
	assert.NotNil(t, got.Transfers)
	assert.Empty(t, got.Transfers)

	assert.NoError(t, got.PhaseoutErr)
	assert.Equal(t, []models.PhaseoutRecord{{Item: "A1"}}, got.Phaseouts)
}

func TestFetchAllFailureDoesNotCancelSlowerDataset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/transferencia" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`[{"item":"A1"},{"item":"B2"}]`))
	}))
	defer srv.Close()

	got := New(srv.URL, 5*time.Second).FetchAll(context.Background())

	var statusErr *HTTPStatusError
	require.ErrorAs(t, got.TransferErr, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
	require.NoError(t, got.PhaseoutErr)
	assert.Len(t, got.Phaseouts, 2)
}

func TestFetchAllRunsConcurrently(t *testing.T) {
	var (
		mu      sync.Mutex
		arrived int
		both    = make(chan struct{})
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		arrived++
		if arrived == 2 {
			close(both)
		}
		mu.Unlock()

		select {
		case <-both:
			w.Write([]byte(`[]`))
		case <-time.After(2 * time.Second):
			w.WriteHeader(http.StatusGatewayTimeout)
		}
	}))
	defer srv.Close()

	got := New(srv.URL, 5*time.Second).FetchAll(context.Background())
	assert.False(t, got.Failed())
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url, time.Second).Phaseouts(context.Background())

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, models.Phaseout, netErr.Dataset)
}

func TestMalformedBodyIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second).Transfers(context.Background())
	var netErr *NetworkError
	assert.True(t, errors.As(err, &netErr))
}

func TestHTTPStatusErrorWithoutPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second).Transfers(context.Background())
	var statusErr *HTTPStatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, "", statusErr.Message)
	assert.Equal(t, "transferencia: HTTP error 502", statusErr.Error())
}
