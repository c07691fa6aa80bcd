package cli

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/mindanalyzer/internal/client/client"
	"github.com/dmitrijs2005/mindanalyzer/internal/client/models"
	"github.com/dmitrijs2005/mindanalyzer/internal/client/services"
	"github.com/dmitrijs2005/mindanalyzer/internal/common"
	"github.com/dmitrijs2005/mindanalyzer/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loggedInApp returns an App with a restored token and English UI.
func loggedInApp(t *testing.T, fc *fakeClient) *testApp {
	t.Helper()
	ctx := context.Background()
	app := newTestApp(t, fc, "")
	require.NoError(t, app.durable.Set(ctx, common.AuthTokenKey, []byte("t1")))
	_, err := app.authService.Restore(ctx)
	require.NoError(t, err)
	app.languageService.Apply(ctx, "en")
	app.relabel()
	return app
}

func TestAnalyze_PrintsResult(t *testing.T) {
	fc := &fakeClient{analyzeRet: &models.AnalysisResult{
		Sentiment:       "positive",
		ConfidenceScore: 0.87,
		Entities:        models.Entities{Emotions: []string{"joy"}},
	}}
	app := loggedInApp(t, fc)

	require.NoError(t, app.Analyze(context.Background(), "I feel great today"))

	out := app.buf.String()
	assert.Contains(t, out, "Sentiment: positive")
	assert.Contains(t, out, "Confidence: 87.0%")
	assert.Contains(t, out, "joy")
	assert.Contains(t, out, "Cognitive Patterns: None detected")
	assert.Equal(t, "en", fc.lastAnalyze.Language)
	assert.False(t, app.submit.Busy())
}

func TestAnalyze_PromptsWhenTextOmitted(t *testing.T) {
	fc := &fakeClient{analyzeRet: &models.AnalysisResult{Sentiment: "neutral"}}
	app := loggedInApp(t, fc)

	orig := getMultiline
	getMultiline = func(*bufio.Reader, string, io.Writer) (string, error) { return "line one\nline two", nil }
	t.Cleanup(func() { getMultiline = orig })

	require.NoError(t, app.Analyze(context.Background(), ""))
	assert.Equal(t, "line one\nline two", fc.lastAnalyze.Text)
}

func TestAnalyze_NotLoggedIn(t *testing.T) {
	fc := &fakeClient{}
	app := newTestApp(t, fc, "")

	require.ErrorIs(t, app.Analyze(context.Background(), "text"), services.ErrNotLoggedIn)
	assert.Zero(t, fc.calls)
}

func TestAnalyze_UnauthorizedLogsOut(t *testing.T) {
	fc := &fakeClient{analyzeErr: &client.ServerError{StatusCode: http.StatusUnauthorized}}
	app := loggedInApp(t, fc)

	require.ErrorIs(t, app.Analyze(context.Background(), "text"), services.ErrSessionExpired)
	assert.False(t, app.isLoggedIn())
	assert.Contains(t, app.buf.String(), app.catalog.T(i18n.English, i18n.KeyErrSessionExpired))
}

func TestAnalyze_NetworkErrorReenablesControl(t *testing.T) {
	fc := &fakeClient{analyzeErr: client.ErrUnavailable}
	app := loggedInApp(t, fc)

	require.Error(t, app.Analyze(context.Background(), "text"))
	assert.Contains(t, app.buf.String(), app.catalog.T(i18n.English, i18n.KeyErrNetwork))
	assert.False(t, app.submit.Busy())
	assert.Equal(t, app.catalog.T(i18n.English, i18n.KeySubmitButton), app.submit.Label())
	assert.True(t, app.isLoggedIn())
}

func TestAnalyze_RefusedWhileBusy(t *testing.T) {
	fc := &fakeClient{}
	app := loggedInApp(t, fc)
	require.True(t, app.submit.Begin())

	require.ErrorIs(t, app.Analyze(context.Background(), "text"), errBusy)
	assert.Zero(t, fc.calls)
}
