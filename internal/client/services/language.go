package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/mindanalyzer/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/mindanalyzer/internal/common"
	"github.com/dmitrijs2005/mindanalyzer/internal/i18n"
	"github.com/dmitrijs2005/mindanalyzer/internal/logging"
)

// LanguageService owns the active UI language and its persistence in two
// stores: a durable one that survives restarts and a session-scoped one.
type LanguageService interface {
	// Detect picks the startup language from the saved preference (durable
	// store first, then session store), then the given locales, then the
	// default. It makes the result active.
	Detect(ctx context.Context, locales []string) i18n.Language
	// Apply normalizes lang, saves it to both stores and makes it active.
	// Store failures are logged; the language still changes.
	Apply(ctx context.Context, lang string) i18n.Language
	Current() i18n.Language
}

type languageService struct {
	durable metadata.Repository
	session metadata.Repository
	logger  logging.Logger

	mu      sync.RWMutex
	current i18n.Language
}

func NewLanguageService(durable, session metadata.Repository, logger logging.Logger) LanguageService {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &languageService{
		durable: durable,
		session: session,
		logger:  logger,
		current: i18n.Default,
	}
}

func (s *languageService) Detect(ctx context.Context, locales []string) i18n.Language {
	saved := s.saved(ctx)
	lang := i18n.Detect(saved, locales)

	s.mu.Lock()
	s.current = lang
	s.mu.Unlock()

	s.logger.Debug(ctx, "language detected", "saved", saved, "language", lang.String())
	return lang
}

// saved returns the first valid stored preference.
func (s *languageService) saved(ctx context.Context) string {
	for _, store := range []metadata.Repository{s.durable, s.session} {
		if store == nil {
			continue
		}
		v, err := store.Get(ctx, common.PreferredLanguageKey)
		if err != nil {
			s.logger.Warn(ctx, "failed to read language preference", "error", err)
			continue
		}
		if _, ok := i18n.Parse(string(v)); ok {
			return string(v)
		}
	}
	return ""
}

func (s *languageService) Apply(ctx context.Context, lang string) i18n.Language {
	l := i18n.Normalize(lang)

	for _, store := range []metadata.Repository{s.durable, s.session} {
		if store == nil {
			continue
		}
		if err := store.Set(ctx, common.PreferredLanguageKey, []byte(l.String())); err != nil {
			s.logger.Warn(ctx, "failed to save language preference", "error", err)
		}
	}

	s.mu.Lock()
	s.current = l
	s.mu.Unlock()

	return l
}

func (s *languageService) Current() i18n.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
