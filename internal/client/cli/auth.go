package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/mindanalyzer/internal/client/services"
	"github.com/dmitrijs2005/mindanalyzer/internal/client/ui"
	"github.com/dmitrijs2005/mindanalyzer/internal/common"
	"github.com/dmitrijs2005/mindanalyzer/internal/i18n"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// errBusy is returned when a control refuses a second submission.
var errBusy = errors.New("request already in progress")

var errAlreadyLoggedIn = errors.New("already logged in")

// Register prompts for username, email and password and creates an
// account. On success the greeting is printed; on failure the localized
// reason. The password is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	if err := a.ensureLoggedOut(); err != nil {
		return err
	}
	if !a.register.Begin() {
		a.println(a.message(i18n.KeyErrBusy))
		return errBusy
	}
	defer a.register.End()

	username, err := getSimpleText(a.reader, a.message(i18n.KeyUsernameLabel), a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, a.message(i18n.KeyEmailLabel), a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.message(i18n.KeyPasswordLabel), a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.println(a.register.Label())
	s, err := a.authService.Register(ctx, username, email, password, a.lang())
	if err != nil {
		a.logger.Info(ctx, "registration failed", "error", err)
		a.println(ui.ErrorMessage(a.catalog, a.lang(), err, i18n.KeyErrRegistrationFailed))
		return err
	}

	a.println(ui.Greeting(a.catalog, a.lang(), s))
	return nil
}

// Login prompts for credentials and authenticates. An empty username
// reuses the one from the last successful login.
func (a *App) Login(ctx context.Context) error {
	if err := a.ensureLoggedOut(); err != nil {
		return err
	}
	if !a.login.Begin() {
		a.println(a.message(i18n.KeyErrBusy))
		return errBusy
	}
	defer a.login.End()

	prompt := a.message(i18n.KeyUsernameLabel)
	last := a.authService.LastUsername(ctx)
	if last != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, last)
	}

	username, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if username == "" {
		username = last
	}

	password, err := getPassword(a.message(i18n.KeyPasswordLabel), a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.println(a.login.Label())
	s, err := a.authService.Login(ctx, username, password, a.lang())
	if err != nil {
		a.logger.Info(ctx, "login failed", "error", err)
		a.println(ui.ErrorMessage(a.catalog, a.lang(), err, i18n.KeyErrLoginFailed))
		return err
	}

	a.println(ui.Greeting(a.catalog, a.lang(), s))
	return nil
}

// Logout always succeeds; it is a no-op when already logged out.
func (a *App) Logout(ctx context.Context) error {
	a.authService.Logout(ctx)
	a.println(a.message(i18n.KeyLoggedOutNotice))
	return nil
}

// ensureLoggedIn prints the not-logged-in notice when there is no session.
func (a *App) ensureLoggedIn() error {
	if a.isLoggedIn() {
		return nil
	}
	a.println(ui.ErrorMessage(a.catalog, a.lang(), services.ErrNotLoggedIn, i18n.KeyErrNotLoggedIn))
	return services.ErrNotLoggedIn
}

// ensureLoggedOut refuses register and login while a session is active.
func (a *App) ensureLoggedOut() error {
	if !a.isLoggedIn() {
		return nil
	}
	a.println(a.message(i18n.KeyErrAlreadyLoggedIn))
	return errAlreadyLoggedIn
}
