package app

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight-dev/finsight/internal/model"
)

func TestLoginValidation(t *testing.T) {
	ta := newTestApp(t, chi.NewRouter())

	err := ta.Login(context.Background(), "not-an-email", "secret1")
	require.Error(t, err)
	err = ta.Login(context.Background(), "a@b.com", "short")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "minimal 6")
}

func TestLoginEstablishesSession(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/auth/login", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"access_token":"tok-login"}`))
	})
	r.Get("/auth/me", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "Bearer tok-login", req.Header.Get("Authorization"))
		w.Write([]byte(`{"id":12,"name":"Ani"}`))
	})

	ta := newTestApp(t, r)
	ta.Session.Clear()

	require.NoError(t, ta.Login(context.Background(), "ani@example.com", "secret1"))
	assert.Equal(t, 12, ta.Session.UserID())
	assert.Equal(t, "Ani", ta.Session.UserName())
	assert.Equal(t, "tok-login", ta.Store.Token(), "token persisted")
	assert.Contains(t, ta.notify.String(), "Selamat datang, Ani")
}

func TestBootstrapWithoutToken(t *testing.T) {
	ta := newTestApp(t, chi.NewRouter())
	ta.Session.Clear()

	_, ok := ta.Bootstrap(context.Background())
	assert.False(t, ok)
}

func TestBootstrapRestoresLastPage(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/auth/me", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"id":7,"name":"Budi"}`))
	})

	ta := newTestApp(t, r)
	ta.Session.Clear()
	require.NoError(t, ta.Store.SetToken("stored-token"))
	require.NoError(t, ta.Store.SetLastPage("community"))

	page, ok := ta.Bootstrap(context.Background())
	require.True(t, ok)
	assert.Equal(t, PageCommunity, page)
	assert.Equal(t, "Budi", ta.Session.UserName())
}

func TestBootstrapInvalidTokenForcesLogout(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/auth/me", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Token tidak valid"}`))
	})

	ta := newTestApp(t, r)
	require.NoError(t, ta.Store.SetToken("expired"))

	_, ok := ta.Bootstrap(context.Background())
	assert.False(t, ok)
	assert.False(t, ta.Session.Authenticated())
	assert.Empty(t, ta.Store.Token(), "invalid token cleared from durable storage")
}

func TestBootstrapUnknownLastPageDefaultsToDashboard(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/auth/me", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"id":7,"name":"Budi"}`))
	})

	ta := newTestApp(t, r)
	require.NoError(t, ta.Store.SetToken("tok"))
	require.NoError(t, ta.Store.SetLastPage("old-removed-page"))

	page, ok := ta.Bootstrap(context.Background())
	require.True(t, ok)
	assert.Equal(t, PageDashboard, page)
}

func TestLogoutClearsEverything(t *testing.T) {
	ta := newTestApp(t, chi.NewRouter())
	require.NoError(t, ta.Store.SetToken("tok"))
	ta.setTransactions([]model.Transaction{{ID: 1}})

	require.NoError(t, ta.Logout())
	assert.False(t, ta.Session.Authenticated())
	assert.Empty(t, ta.Transactions())
	assert.Empty(t, ta.Store.Token())
}
