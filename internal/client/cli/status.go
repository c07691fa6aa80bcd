package cli

import (
	"context"
	"time"

	"github.com/dmitrijs2005/mindanalyzer/internal/client/ui"
	"github.com/dmitrijs2005/mindanalyzer/internal/i18n"
)

// Status prints who is logged in and, for JWT tokens, when the token
// expires. The expiry is informational only.
func (a *App) Status(_ context.Context) error {
	if !a.isLoggedIn() {
		a.println(a.message(i18n.KeyLoggedOut))
		return nil
	}

	a.println(ui.Greeting(a.catalog, a.lang(), a.authService.Session()))
	if exp, ok := a.authService.TokenExpiry(); ok {
		a.println(a.message(i18n.KeyTokenExpiresAt, exp.Local().Format(time.DateTime)))
	}
	return nil
}
