package client

import (
	"context"

	"github.com/dmitrijs2005/mindanalyzer/internal/client/models"
)

// Client is the backend API used by the services layer.
type Client interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Analyze(ctx context.Context, token string, req models.AnalysisRequest) (*models.AnalysisResult, error)
}

// API paths relative to the server URL.
const (
	RegisterPath = "/api/auth/register"
	LoginPath    = "/api/auth/login"
	AnalyzePath  = "/api/analyze"
)
