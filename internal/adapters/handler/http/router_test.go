package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-wellness/internal/adapters/export"
	adapterHTTP "github.com/comitanigiacomo/kanso-wellness/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-wellness/internal/adapters/metrics"
	"github.com/comitanigiacomo/kanso-wellness/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-wellness/internal/core/domain"
	"github.com/comitanigiacomo/kanso-wellness/internal/core/services"
)

var testNow = time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC)

type testServer struct {
	router *gin.Engine
	repo   *repository.PreferenceRepository
	auth   *services.AuthService
}

func setupServer(t *testing.T, authEnabled bool) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewPreferenceRepository(repository.NewInMemoryPreferenceStore(), nil)
	clock := services.FixedClock(testNow, time.UTC)

	tokens := services.NewTokenService("handler-secret", "kanso-test", time.Hour, repo)
	authSvc := services.NewAuthService(repo, tokens)
	analytics := services.NewAnalyticsService(services.AnalyticsRepositories{
		Habits: repo, Moods: repo, Water: repo, Meditation: repo, Settings: repo,
	}, clock, nil)
	reports := services.NewReportService(analytics, map[string]services.ReportExporter{
		domain.FormatCSV: export.NewCSVExporter(),
		domain.FormatPDF: export.NewPDFExporter(),
	})

	habits := services.NewHabitService(repo, clock, nil)
	moods := services.NewMoodService(repo, clock)
	goals := services.NewGoalService(repo, clock)

	deps := adapterHTTP.RouterDependencies{
		AuthHandler:      adapterHTTP.NewAuthHandler(authSvc),
		HabitHandler:     adapterHTTP.NewHabitHandler(habits),
		MoodHandler:      adapterHTTP.NewMoodHandler(moods),
		GoalHandler:      adapterHTTP.NewGoalHandler(goals),
		WellnessHandler:  adapterHTTP.NewWellnessHandler(services.NewWellnessService(repo, repo, clock)),
		AnalyticsHandler: adapterHTTP.NewAnalyticsHandler(analytics, reports),
		DataHandler:      adapterHTTP.NewDataHandler(services.NewDataService(habits, moods, goals, clock)),
		Metrics:          metrics.New(),
		StartTime:        testNow,
	}
	if authEnabled {
		deps.Tokens = tokens
	}

	return &testServer{router: adapterHTTP.NewRouter(deps), repo: repo, auth: authSvc}
}

func (s *testServer) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestRouter_Infrastructure(t *testing.T) {
	s := setupServer(t, false)

	t.Run("Success: Health with no backends", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/health", nil, "")
		assert.Equal(t, http.StatusOK, w.Code)

		body := decode[map[string]string](t, w)
		assert.Equal(t, "disabled", body["database"])
		assert.Equal(t, "disabled", body["redis"])
	})

	t.Run("Success: Metrics exposed", func(t *testing.T) {
		s.do(t, http.MethodGet, "/api/v1/habits", nil, "")
		w := s.do(t, http.MethodGet, "/metrics", nil, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `path="/api/v1/habits"`)
	})

	t.Run("Success: CORS preflight", func(t *testing.T) {
		w := s.do(t, http.MethodOptions, "/api/v1/habits", nil, "")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Success: Request id echoed", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/health", nil, "")
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})
}

func TestRouter_AuthEnabled(t *testing.T) {
	s := setupServer(t, true)

	w := s.do(t, http.MethodGet, "/api/v1/habits", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/auth/pin", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode[map[string]bool](t, w)["pin_set"])

	w = s.do(t, http.MethodPost, "/api/v1/auth/token", map[string]string{"pin": "1234"}, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, http.MethodPost, "/api/v1/auth/pin", map[string]string{"pin": "12"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/api/v1/auth/pin", map[string]string{"pin": "2468"}, "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(t, http.MethodPost, "/api/v1/auth/token", map[string]string{"pin": "0000"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodPost, "/api/v1/auth/token", map[string]string{"pin": "2468"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	token := decode[map[string]string](t, w)["token"]
	require.NotEmpty(t, token)

	w = s.do(t, http.MethodGet, "/api/v1/habits", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodDelete, "/api/v1/auth/pin", map[string]string{"current": "2468"}, "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/habits", nil, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code, "tokens die with the pin")
}
