package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/mindanalyzer/internal/client/models"
	"github.com/dmitrijs2005/mindanalyzer/internal/client/repositories/metadata"
)

// fakeClient implements client.Client for service tests.
type fakeClient struct {
	RegisterRet *models.AuthResponse
	RegisterErr error
	LoginRet    *models.AuthResponse
	LoginErr    error
	AnalyzeRet  *models.AnalysisResult
	AnalyzeErr  error

	Calls           int
	LastRegister    models.RegisterRequest
	LastLogin       models.LoginRequest
	LastAnalyze     models.AnalysisRequest
	LastAnalyzeAuth string
}

func (f *fakeClient) Register(_ context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	f.Calls++
	f.LastRegister = req
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) Login(_ context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	f.Calls++
	f.LastLogin = req
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Analyze(_ context.Context, token string, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	f.Calls++
	f.LastAnalyzeAuth = token
	f.LastAnalyze = req
	return f.AnalyzeRet, f.AnalyzeErr
}

var errStoreDown = errors.New("store unavailable")

// brokenRepo fails every call.
type brokenRepo struct{}

var _ metadata.Repository = brokenRepo{}

func (brokenRepo) Get(context.Context, string) ([]byte, error)      { return nil, errStoreDown }
func (brokenRepo) Set(context.Context, string, []byte) error        { return errStoreDown }
func (brokenRepo) SetMany(context.Context, map[string][]byte) error { return errStoreDown }
func (brokenRepo) Delete(context.Context, string) error             { return errStoreDown }
