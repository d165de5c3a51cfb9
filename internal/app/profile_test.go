package app

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderProfile(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/auth/me", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"id":7,"name":"Budi"}`))
	})

	ta := newTestApp(t, r)
	require.NoError(t, ta.RenderProfile(context.Background()))
	assert.Contains(t, ta.out.String(), "Budi")
}

func TestUpdateProfileSyncsSession(t *testing.T) {
	r := chi.NewRouter()
	r.Put("/auth/update-profile", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"id":7,"name":"Budi Santoso"}`))
	})

	ta := newTestApp(t, r)
	require.NoError(t, ta.UpdateProfile(context.Background(), "Budi Santoso"))
	assert.Equal(t, "Budi Santoso", ta.Session.UserName())
	assert.Contains(t, ta.notify.String(), "Profil berhasil diperbarui.")
}

func TestUpdateProfileRequiresName(t *testing.T) {
	ta := newTestApp(t, chi.NewRouter())
	assert.Error(t, ta.UpdateProfile(context.Background(), ""))
}

func TestChangePassword(t *testing.T) {
	r := chi.NewRouter()
	r.Put("/auth/change-password", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	ta := newTestApp(t, r)
	require.NoError(t, ta.ChangePassword(context.Background(), "lama123", "baru123"))
	assert.Contains(t, ta.notify.String(), "Password berhasil diganti.")
}

func TestChangePasswordValidatesNewPassword(t *testing.T) {
	ta := newTestApp(t, chi.NewRouter())
	assert.Error(t, ta.ChangePassword(context.Background(), "lama123", "123"))
}

func TestChangePasswordWrongCurrentShowsDetail(t *testing.T) {
	r := chi.NewRouter()
	r.Put("/auth/change-password", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"Password saat ini salah"}`))
	})

	ta := newTestApp(t, r)
	require.Error(t, ta.ChangePassword(context.Background(), "salah", "baru123"))
	assert.Contains(t, ta.notify.String(), "Password saat ini salah")
}
