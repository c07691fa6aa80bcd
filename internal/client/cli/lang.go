package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/mindanalyzer/internal/client/ui"
	"github.com/dmitrijs2005/mindanalyzer/internal/i18n"
)

// SetLanguage switches the UI language, remembers the choice and
// re-renders the session greeting in the new language.
func (a *App) SetLanguage(ctx context.Context, code string) error {
	if _, ok := i18n.Parse(code); !ok {
		a.println(a.message(i18n.KeyErrUnknownLanguage, code))
		return fmt.Errorf("unknown language %q", code)
	}

	lang := a.languageService.Apply(ctx, code)
	a.relabel()

	a.println(a.message(i18n.KeyLanguageSwitched, a.catalog.T(lang, i18n.KeyLanguageName)))
	a.println(ui.Labels(a.catalog, lang).VisibleDisclaimer())
	if g := ui.Greeting(a.catalog, lang, a.authService.Session()); g != "" {
		a.println(g)
	}
	return nil
}
