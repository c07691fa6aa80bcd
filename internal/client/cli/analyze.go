package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/mindanalyzer/internal/client/services"
	"github.com/dmitrijs2005/mindanalyzer/internal/client/ui"
	"github.com/dmitrijs2005/mindanalyzer/internal/i18n"
)

var getMultiline = GetMultiline

// Analyze submits text for analysis and prints the result rows. Without
// text it prompts for a multi-line entry.
func (a *App) Analyze(ctx context.Context, text string) error {
	if err := a.ensureLoggedIn(); err != nil {
		return err
	}

	if !a.submit.Begin() {
		a.println(a.message(i18n.KeyErrBusy))
		return errBusy
	}
	defer a.submit.End()

	if text == "" {
		prompt := a.message(i18n.KeyTextLabel) + "\n" + a.message(i18n.KeyTextPrompt)
		var err error
		if text, err = getMultiline(a.reader, prompt, a.out); err != nil {
			return err
		}
	}

	a.println(a.message(i18n.KeyLoading))
	res, err := a.analysisService.Analyze(ctx, text, a.lang())
	if err != nil {
		a.logger.Info(ctx, "analysis failed", "error", err)
		a.println(ui.ErrorMessage(a.catalog, a.lang(), err, i18n.KeyErrAnalysisFailed))
		if errors.Is(err, services.ErrSessionExpired) {
			a.println(a.message(i18n.KeyHelpLoggedOut))
		}
		return err
	}

	for _, row := range ui.Result(a.catalog, a.lang(), res).Rows() {
		fmt.Fprintf(a.out, "%s %s\n", row.Label, row.Value)
	}
	return nil
}
