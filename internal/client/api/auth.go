package api

import (
	"context"

	"github.com/yujian0924/dali-climbing-website-sub000/internal/client/models"
)

// AuthAPI covers account and profile endpoints. Persisting the returned
// credentials is the caller's job (the store does it via the session
// layer); these functions are pure pass-throughs.
type AuthAPI struct {
	c *Client
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

func (a *AuthAPI) Register(ctx context.Context, req RegisterRequest) (*models.Credentials, error) {
	return postJSON[models.Credentials](ctx, a.c, "/auth/register", req)
}

func (a *AuthAPI) Login(ctx context.Context, req LoginRequest) (*models.Credentials, error) {
	return postJSON[models.Credentials](ctx, a.c, "/auth/login", req)
}

func (a *AuthAPI) Logout(ctx context.Context) error {
	return a.c.Post(ctx, "/auth/logout", nil, nil)
}

// Me returns the profile of the authenticated user.
func (a *AuthAPI) Me(ctx context.Context) (*models.User, error) {
	return getJSON[models.User](ctx, a.c, "/auth/me", nil)
}

func (a *AuthAPI) UpdateProfile(ctx context.Context, user models.User) (*models.User, error) {
	return putJSON[models.User](ctx, a.c, "/auth/profile", user)
}

func (a *AuthAPI) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	return a.c.Put(ctx, "/auth/password", req, nil)
}
