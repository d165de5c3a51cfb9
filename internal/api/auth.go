package api

import (
	"context"
	"net/http"

	"github.com/finsight-dev/finsight/internal/model"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var resp tokenResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

// Register creates an account and returns a bearer token for it.
func (c *Client) Register(ctx context.Context, name, email, password string) (string, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var resp tokenResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", body, &resp); err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

// Me fetches the authenticated user's identity.
func (c *Client) Me(ctx context.Context) (model.User, error) {
	var u model.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, "", &u); err != nil {
		return model.User{}, err
	}
	return u, nil
}

// UpdateProfile changes the user's display name.
func (c *Client) UpdateProfile(ctx context.Context, name string) (model.User, error) {
	body := map[string]string{"name": name}
	var u model.User
	if err := c.doJSON(ctx, http.MethodPut, "/auth/update-profile", body, &u); err != nil {
		return model.User{}, err
	}
	return u, nil
}

// ChangePassword replaces the account password.
func (c *Client) ChangePassword(ctx context.Context, current, newPassword string) error {
	body := map[string]string{"current_password": current, "new_password": newPassword}
	return c.doJSON(ctx, http.MethodPut, "/auth/change-password", body, nil)
}
