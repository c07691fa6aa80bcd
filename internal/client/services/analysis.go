package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/mindanalyzer/internal/client/client"
	"github.com/dmitrijs2005/mindanalyzer/internal/client/models"
	"github.com/dmitrijs2005/mindanalyzer/internal/i18n"
	"github.com/dmitrijs2005/mindanalyzer/internal/logging"
)

// AnalysisService submits text for analysis on behalf of the logged-in user.
type AnalysisService interface {
	Analyze(ctx context.Context, text string, lang i18n.Language) (*models.AnalysisResult, error)
}

type analysisService struct {
	client   client.Client
	sessions SessionStore
	logger   logging.Logger
}

func NewAnalysisService(c client.Client, sessions SessionStore, logger logging.Logger) AnalysisService {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &analysisService{client: c, sessions: sessions, logger: logger}
}

// Analyze requires a session, then non-empty text. A 401 from the backend
// ends the session and is reported as ErrSessionExpired whatever the body
// said; every other failure leaves the session alone.
func (s *analysisService) Analyze(ctx context.Context, text string, lang i18n.Language) (*models.AnalysisResult, error) {
	token := s.sessions.Session().Token
	if token == "" {
		return nil, ErrNotLoggedIn
	}
	if strings.TrimSpace(text) == "" {
		return nil, required(FieldText)
	}

	res, err := s.client.Analyze(ctx, token, models.AnalysisRequest{
		Text:     text,
		Language: lang.String(),
	})
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			s.sessions.Expire(ctx, token)
			return nil, fmt.Errorf("%w: %w", ErrSessionExpired, err)
		}
		return nil, fmt.Errorf("analyze: %w", err)
	}

	s.logger.Debug(ctx, "analysis finished", "sentiment", res.Sentiment)
	return res, nil
}
