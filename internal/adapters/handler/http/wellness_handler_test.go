package http_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/domain"
)

func TestWellnessHandler_Water(t *testing.T) {
	s := setupServer(t, false)

	w := s.do(t, http.MethodPost, "/api/v1/water", map[string]int{"glasses": 3}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, decode[domain.Hydration](t, w).Glasses)

	w = s.do(t, http.MethodPost, "/api/v1/water", map[string]int{"millilitres": 500}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, decode[domain.Hydration](t, w).Glasses)

	w = s.do(t, http.MethodPost, "/api/v1/water", map[string]int{}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodDelete, "/api/v1/water/glass", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 4, decode[domain.Hydration](t, w).Glasses)

	w = s.do(t, http.MethodPut, "/api/v1/water/goal", map[string]int{"glasses": 4}, "")
	require.Equal(t, http.StatusOK, w.Code)
	h := decode[domain.Hydration](t, w)
	assert.Equal(t, 4, h.Goal)
	assert.Equal(t, 100, h.Percent)

	w = s.do(t, http.MethodPut, "/api/v1/water/goal", map[string]int{"glasses": 25}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/water?date=2026-03-08", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, decode[domain.Hydration](t, w).Glasses)
}

func TestWellnessHandler_Meditation(t *testing.T) {
	s := setupServer(t, false)

	w := s.do(t, http.MethodPost, "/api/v1/meditation/sessions", map[string]any{"type": "guided", "minutes": 15}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	session := decode[domain.MeditationSession](t, w)
	assert.True(t, session.Completed)
	assert.Equal(t, testNow.UnixMilli(), session.StartTime)

	yesterday := testNow.Add(-24 * time.Hour)
	w = s.do(t, http.MethodPost, "/api/v1/meditation/sessions", map[string]any{"type": "sleep", "minutes": 20, "start": yesterday, "completed": false}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.do(t, http.MethodPost, "/api/v1/meditation/sessions", map[string]any{"type": "focus", "minutes": 500}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/meditation/sessions", nil, "")
	assert.Len(t, decode[[]domain.MeditationSession](t, w), 2)

	w = s.do(t, http.MethodGet, "/api/v1/meditation/summary", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	sum := decode[domain.MeditationSummary](t, w)
	assert.Equal(t, 1, sum.TotalSessions)
	assert.Equal(t, 15, sum.MinutesToday)
}
