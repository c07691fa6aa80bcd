package ui

import (
	"errors"

	"github.com/dmitrijs2005/mindanalyzer/internal/client/client"
	"github.com/dmitrijs2005/mindanalyzer/internal/client/models"
	"github.com/dmitrijs2005/mindanalyzer/internal/client/services"
	"github.com/dmitrijs2005/mindanalyzer/internal/i18n"
)

// Greeting is the logged-in banner. It is empty when logged out and
// generic when only a restored token is known.
func Greeting(c i18n.Catalog, lang i18n.Language, s models.Session) string {
	if s.State() != models.LoggedIn {
		return ""
	}
	if name := s.Username(); name != "" {
		return c.Tf(lang, i18n.KeyGreeting, name)
	}
	return c.T(lang, i18n.KeyGreetingAnon)
}

var validationKeys = map[string]i18n.Key{
	services.FieldUsername: i18n.KeyErrUsernameRequired,
	services.FieldEmail:    i18n.KeyErrEmailRequired,
	services.FieldPassword: i18n.KeyErrPasswordRequired,
	services.FieldText:     i18n.KeyErrTextRequired,
}

// ErrorMessage turns an error from a service into inline feedback.
// Server-supplied text is shown verbatim; errors that carry nothing
// displayable use fallback.
func ErrorMessage(c i18n.Catalog, lang i18n.Language, err error, fallback i18n.Key) string {
	if err == nil {
		return ""
	}

	var ve *services.ValidationError
	if errors.As(err, &ve) {
		if ve.Reason == services.ReasonInvalidEmail {
			return c.T(lang, i18n.KeyErrEmailInvalid)
		}
		if key, ok := validationKeys[ve.Field]; ok {
			return c.T(lang, key)
		}
		return c.T(lang, i18n.KeyErrInvalid)
	}

	switch {
	case errors.Is(err, services.ErrNotLoggedIn):
		return c.T(lang, i18n.KeyErrNotLoggedIn)
	case errors.Is(err, services.ErrSessionExpired):
		return c.T(lang, i18n.KeyErrSessionExpired)
	case errors.Is(err, client.ErrUnavailable):
		return c.T(lang, i18n.KeyErrNetwork)
	}

	var se *client.ServerError
	if errors.As(err, &se) && se.HasMessage() {
		return se.Text()
	}

	return c.T(lang, fallback)
}
