package app

import (
	"context"
	"fmt"
)

// RenderProfile shows the current user's profile fields.
func (a *App) RenderProfile(ctx context.Context) error {
	user, err := a.API.Me(ctx)
	if err != nil {
		a.notifyFailure(err, "Gagal memuat profil.")
		return err
	}

	fmt.Fprintln(a.Out, headingStyle.Render("Profil"))
	fmt.Fprintf(a.Out, "ID   : %d\n", user.ID)
	fmt.Fprintf(a.Out, "Nama : %s\n", user.Name)
	return nil
}

// UpdateProfile changes the display name and keeps the session in sync.
func (a *App) UpdateProfile(ctx context.Context, name string) error {
	if err := required("nama", name); err != nil {
		return err
	}

	user, err := a.API.UpdateProfile(ctx, name)
	if err != nil {
		a.notifyFailure(err, "Gagal memperbarui profil.")
		return err
	}

	a.Session.SetUser(user.ID, user.Name)
	a.Notify.Success("Profil berhasil diperbarui.")
	return nil
}

// ChangePassword validates the new password locally, then asks the backend
// to replace it.
func (a *App) ChangePassword(ctx context.Context, current, newPassword string) error {
	if err := required("password saat ini", current); err != nil {
		return err
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	if err := a.API.ChangePassword(ctx, current, newPassword); err != nil {
		a.notifyFailure(err, "Gagal mengganti password.")
		return err
	}

	a.Notify.Success("Password berhasil diganti.")
	return nil
}
