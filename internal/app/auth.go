package app

import (
	"context"
	"fmt"
)

// Login exchanges credentials for a session and persists the token.
func (a *App) Login(ctx context.Context, email, password string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	if err := validatePassword(password); err != nil {
		return err
	}

	token, err := a.API.Login(ctx, email, password)
	if err != nil {
		a.notifyFailure(err, "Gagal masuk. Periksa koneksi dan coba lagi.")
		return err
	}
	return a.establishSession(ctx, token)
}

// Register creates an account; the backend returns a token, so a successful
// registration logs the user straight in.
func (a *App) Register(ctx context.Context, name, email, password string) error {
	if err := required("nama", name); err != nil {
		return err
	}
	if err := validateEmail(email); err != nil {
		return err
	}
	if err := validatePassword(password); err != nil {
		return err
	}

	token, err := a.API.Register(ctx, name, email, password)
	if err != nil {
		a.notifyFailure(err, "Gagal mendaftar. Periksa koneksi dan coba lagi.")
		return err
	}
	return a.establishSession(ctx, token)
}

func (a *App) establishSession(ctx context.Context, token string) error {
	a.Session.SetToken(token)
	if err := a.Store.SetToken(token); err != nil {
		return fmt.Errorf("persisting token: %w", err)
	}

	user, err := a.API.Me(ctx)
	if err != nil {
		a.notifyFailure(err, "Gagal memuat profil pengguna.")
		return err
	}
	a.Session.SetUser(user.ID, user.Name)
	a.Notify.Success("Selamat datang, %s!", user.Name)
	return nil
}

// Logout clears the session and all durable auth state.
func (a *App) Logout() error {
	a.Session.Clear()
	a.setTransactions(nil)
	if err := a.Charts.CloseAll(); err != nil {
		return err
	}
	if err := a.Store.ClearToken(); err != nil {
		return fmt.Errorf("clearing token: %w", err)
	}
	a.Notify.Info("Anda telah keluar.")
	return nil
}

// Bootstrap is the startup auto-login: when a durable token exists it
// fetches the current user and restores the last visited page. Any failure
// forces a logout. This is the only automatic state transition in the
// client.
func (a *App) Bootstrap(ctx context.Context) (Page, bool) {
	token := a.Store.Token()
	if token == "" {
		return "", false
	}

	a.Session.SetToken(token)
	user, err := a.API.Me(ctx)
	if err != nil {
		a.Session.Clear()
		_ = a.Store.ClearToken()
		return "", false
	}
	a.Session.SetUser(user.ID, user.Name)

	page, ok := ValidPage(a.Store.LastPage())
	if !ok {
		page = PageDashboard
	}
	return page, true
}
