package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skipit-studio/skipit-api/internal/cache"
	domain "github.com/skipit-studio/skipit-api/internal/domain/schedule"
	ucSchedule "github.com/skipit-studio/skipit-api/internal/usecase/schedule"
)

type stubRepo struct {
	ws  *domain.WeeklySchedule
	err error
}

func (s *stubRepo) GetSchedule(context.Context, string) (*domain.WeeklySchedule, error) {
	return s.ws, s.err
}
func (s *stubRepo) SaveSchedule(context.Context, *domain.WeeklySchedule) error { return nil }
func (s *stubRepo) UpdateManualOverride(context.Context, string, *domain.ManualOverride) error {
	return nil
}
func (s *stubRepo) PatchDay(context.Context, string, domain.Weekday, domain.DayPatch) error {
	return nil
}

type noopCache struct{}

func (noopCache) Get(context.Context, string) (*cache.StatusEntry, error) { return nil, nil }
func (noopCache) Set(context.Context, string, cache.StatusEntry) error    { return nil }
func (noopCache) Invalidate(context.Context, string) error                { return nil }

func statusRouter(repo domain.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	getStatus := ucSchedule.NewGetStatus(repo, noopCache{}, "UTC")
	getSchedule := ucSchedule.NewGetSchedule(repo)
	h := NewPublicHandler(getStatus, getSchedule)

	r := gin.New()
	r.GET("/api/public/:barberId/status", h.Status)
	r.GET("/api/public/:barberId/schedule", h.Schedule)
	return r
}

func TestPublicStatusOverrideOpen(t *testing.T) {
	ws := domain.DefaultWeekly("b1")
	ov := domain.OverrideOpen
	ws.ManualOverride = &ov

	r := statusRouter(&stubRepo{ws: ws})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/public/b1/status", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Open           bool    `json:"open"`
		ManualOverride *string `json:"manual_override"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Open)
	require.NotNil(t, body.ManualOverride)
	assert.Equal(t, "open", *body.ManualOverride)
}

func TestPublicStatusDegradesToClosedOnBackendFailure(t *testing.T) {
	r := statusRouter(&stubRepo{err: errors.New("database down")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/public/b1/status", nil)
	r.ServeHTTP(w, req)

	// Still 200: the badge shows closed instead of an error page.
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Open     bool `json:"open"`
		Degraded bool `json:"degraded"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Open)
	assert.True(t, body.Degraded)
}

func TestPublicScheduleFallsBackToDefault(t *testing.T) {
	r := statusRouter(&stubRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/public/b1/schedule", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var ws domain.WeeklySchedule
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ws))
	assert.Equal(t, "b1", ws.BarberID)
	assert.Len(t, ws.Days, 7)
	assert.False(t, ws.Days[domain.Monday].Active)
}
