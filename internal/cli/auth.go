package cli

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/badgergram/badgerclient/internal/api"
	"github.com/badgergram/badgerclient/internal/models"
)

func (a *App) Login(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	user, err := a.client.Login(ctx, email, password)
	if err != nil {
		var srvErr *api.ServerError
		if errors.As(err, &srvErr) {
			log.Printf("Login unsuccessful: %s", srvErr.Message)
		} else {
			log.Printf("Login unsuccessful: %v", err)
		}
		return
	}

	a.user = user
	log.Printf("Logged in as %s", user.Name)
	a.sync.RefreshAll(ctx)
}

func (a *App) Signup(ctx context.Context) {
	name, err := GetSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	user, err := a.client.Signup(ctx, models.SignupRequest{Name: name, Email: email, Password: password})
	if err != nil {
		log.Printf("Signup unsuccessful: %v", err)
		return
	}

	a.user = user
	log.Printf("Welcome, %s", user.Name)
	a.sync.RefreshAll(ctx)
}

// Logout revokes the session, then resets the cached view. The token
// store and the synchronizer are cleared by their respective owners in
// response to the same event.
func (a *App) Logout(ctx context.Context) {
	if err := a.client.Logout(ctx); err != nil {
		log.Printf("logout: %v", err)
	}
	a.sync.ClearState()
	a.user = nil
	log.Println("Logged out")
}
