package cli

import (
	"context"
	"os"

	"github.com/yujian0924/dali-climbing-website-sub000/internal/client/api"
)

func (a *App) Register(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	nickname, err := GetSimpleText(a.reader, "Enter nickname", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.store.Register(ctx, api.RegisterRequest{Email: email, Password: password, Nickname: nickname}); err != nil {
		printlnFn("Registration failed:", a.store.Auth().Error)
		return err
	}
	printlnFn("Welcome,", nickname)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.store.Login(ctx, email, password); err != nil {
		printlnFn("Login failed:", a.store.Auth().Error)
		return err
	}
	printlnFn("Login successful")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.store.Logout(ctx); err != nil {
		printlnFn("Logout failed:", a.store.Auth().Error)
		return err
	}
	printlnFn("Logged out")
	return nil
}

func (a *App) Me(ctx context.Context) error {
	if err := a.store.FetchProfile(ctx); err != nil {
		printlnFn("error:", a.store.Auth().Error)
		return err
	}
	user := a.store.Auth().User
	printlnFn("Nickname:", user.Nickname)
	if user.Level != "" {
		printlnFn("Level:", user.Level)
	}
	if user.Bio != "" {
		printlnFn("Bio:", user.Bio)
	}
	printlnFn("Logged climbs:", len(user.Records))
	return nil
}
