package suggestion

import (
	"context"
	"net/http"
	"strings"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitPostsForm(t *testing.T) {
	var got http.Header
	var fields map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		fields = map[string]string{
			"name":    r.FormValue("name"),
			"email":   r.FormValue("email"),
			"message": r.FormValue("message"),
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	err := NewSender(srv.URL, time.Second).Submit(context.Background(), Suggestion{
		Name:    "Ana",
		Email:   "ana@example.com",
		Message: "Incluir coluna de horário",
	})
	require.NoError(t, err)

	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.Contains(t, got.Get("Content-Type"), "multipart/form-data")
	assert.Equal(t, map[string]string{
		"name":    "Ana",
		"email":   "ana@example.com",
		"message": "Incluir coluna de horário",
	}, fields)
}

func TestSubmitRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	err := NewSender(srv.URL, time.Second).Submit(context.Background(), Suggestion{Message: "x"})
	assert.ErrorIs(t, err, ErrRejected)
}

func TestSubmitDrainsBodyAndReusesConnection(t *testing.T) {
	var addrs []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		addrs = append(addrs, r.RemoteAddr)
		if len(addrs) == 2 {
			w.WriteHeader(http.StatusBadRequest)
		}
		w.Write([]byte(`{"next":"` + strings.Repeat("x", 32<<10) + `"}`))
	}))
	defer srv.Close()

	s := NewSender(srv.URL, time.Second)
	require.NoError(t, s.Submit(context.Background(), Suggestion{Message: "a"}))
	assert.ErrorIs(t, s.Submit(context.Background(), Suggestion{Message: "b"}), ErrRejected)
	require.NoError(t, s.Submit(context.Background(), Suggestion{Message: "c"}))

	require.Len(t, addrs, 3)
	assert.Equal(t, addrs[0], addrs[1])
	assert.Equal(t, addrs[1], addrs[2])
}

func TestSubmitConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := NewSender(url, time.Second).Submit(context.Background(), Suggestion{Message: "x"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRejected)
}

func TestSubmitNotConfigured(t *testing.T) {
	s := NewSender("", time.Second)
	assert.False(t, s.Enabled())
	assert.ErrorIs(t, s.Submit(context.Background(), Suggestion{}), ErrNotConfigured)
}
