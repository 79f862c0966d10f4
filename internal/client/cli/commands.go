package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/studydash/internal/client/credentials"
	"github.com/dmitrijs2005/studydash/internal/client/loader"
	"github.com/dmitrijs2005/studydash/internal/client/models"
	"github.com/dmitrijs2005/studydash/internal/client/tui"
	"golang.org/x/sync/errgroup"
)

var errNotSignedIn = errors.New("not signed in")

// Dashboard loads and prints the dashboard. The returned error is the
// state's Err; the failure has already been printed and reported.
func (a *App) Dashboard(ctx context.Context) error {
	st := a.dashboard.Load(ctx)
	a.println(a.renderer.Dashboard(st, a.config.UserDisplayName, a.presentOptions()))
	return st.Err
}

// Notes loads and prints the note list.
func (a *App) Notes(ctx context.Context) error {
	st := a.notes.Load(ctx)
	a.println(a.renderer.Notes(st))
	return st.Err
}

// Refresh reloads both views concurrently and prints them in order. A
// failing view does not cancel the other one.
func (a *App) Refresh(ctx context.Context) error {
	var (
		g    errgroup.Group
		dash loader.State[*models.DashboardStats]
		nts  loader.State[[]models.NoteSummary]
	)
	g.Go(func() error {
		dash = a.dashboard.Load(ctx)
		return dash.Err
	})
	g.Go(func() error {
		nts = a.notes.Load(ctx)
		return nts.Err
	})
	err := g.Wait()

	a.println(a.renderer.Dashboard(dash, a.config.UserDisplayName, a.presentOptions()))
	a.println()
	a.println(a.renderer.Notes(nts))
	return err
}

// Login asks for an ID token and stores it under the configured key. The
// token must be a well-formed, unexpired JWT; its signature is left to the
// backend.
func (a *App) Login(ctx context.Context) error {
	token, err := a.readToken()
	if err != nil {
		a.println("Error reading token:", err)
		return err
	}
	if token == "" {
		a.println("No token entered.")
		return errNotSignedIn
	}

	claims, err := credentials.Inspect(token)
	if err != nil {
		a.println("That does not look like an ID token.")
		return err
	}
	if claims.Expired(a.now()) {
		a.println("Token expired at", claims.ExpiresAt.Format(time.RFC3339))
		return fmt.Errorf("token expired at %s", claims.ExpiresAt.Format(time.RFC3339))
	}

	if err := a.store.Set(ctx, a.config.CredentialKey, token); err != nil {
		a.logger.Error(ctx, "failed to store token", "error", err)
		a.println("Error saving token:", err)
		return err
	}

	a.logger.Info(ctx, "signed in", "subject", claims.Subject)
	a.println("Signed in as", displayIdentity(claims))
	return nil
}

// Logout removes the stored token. Signing out twice is not an error.
func (a *App) Logout(ctx context.Context) error {
	if err := a.store.Delete(ctx, a.config.CredentialKey); err != nil {
		a.logger.Error(ctx, "failed to remove token", "error", err)
		a.println("Error signing out:", err)
		return err
	}
	a.println("Signed out.")
	return nil
}

// WhoAmI prints the claims of the stored token.
func (a *App) WhoAmI(ctx context.Context) error {
	claims, err := a.currentClaims(ctx)
	if err != nil {
		if errors.Is(err, errNotSignedIn) {
			a.println(loader.AuthMissingMessage)
		} else {
			a.println("Error:", err)
		}
		return err
	}

	a.println("Subject:", claims.Subject)
	if claims.Name != "" {
		a.println("Name:   ", claims.Name)
	}
	if claims.Email != "" {
		a.println("Email:  ", claims.Email)
	}
	if !claims.ExpiresAt.IsZero() {
		expiry := claims.ExpiresAt.Format(time.RFC3339)
		if claims.Expired(a.now()) {
			expiry += " (expired)"
		}
		a.println("Expires:", expiry)
	}
	return nil
}

// TUI runs the full-screen interface until the user quits it.
func (a *App) TUI(ctx context.Context) error {
	err := tui.Run(ctx, tui.Deps{
		Dashboard:   a.dashboard,
		Notes:       a.notes,
		Renderer:    a.renderer,
		DisplayName: a.config.UserDisplayName,
		Options:     a.presentOptions(),
	})
	if err != nil {
		a.logger.Error(ctx, "tui exited with error", "error", err)
	}
	return err
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	_, ok, err := a.store.Get(ctx, a.config.CredentialKey)
	return err == nil && ok
}

func (a *App) currentClaims(ctx context.Context) (credentials.Claims, error) {
	token, ok, err := a.store.Get(ctx, a.config.CredentialKey)
	if err != nil {
		return credentials.Claims{}, err
	}
	if !ok {
		return credentials.Claims{}, errNotSignedIn
	}
	return credentials.Inspect(token)
}

func displayIdentity(c credentials.Claims) string {
	switch {
	case c.Email != "":
		return c.Email
	case c.Name != "":
		return c.Name
	case c.Subject != "":
		return c.Subject
	}
	return "unknown user"
}
