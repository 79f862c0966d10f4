package devapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/studydash/internal/client/api"
	"github.com/dmitrijs2005/studydash/internal/client/models"
	"github.com/dmitrijs2005/studydash/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSource struct{}

func (failingSource) DashboardStats(context.Context, string) (*models.DashboardStats, error) {
	return nil, errors.New("database not connected")
}

func (failingSource) Notes(context.Context, string) ([]models.NoteSummary, error) {
	return nil, errors.New("database not connected")
}

func newTestServer(t *testing.T, src Source) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewRouter(NewVerifier(testSecret), src, logging.Nop()))
	t.Cleanup(srv.Close)
	return srv
}

func mint(t *testing.T) string {
	t.Helper()
	tok, err := Mint(testSecret, Identity{UID: "u-1"}, time.Hour)
	require.NoError(t, err)
	return tok
}

func TestStatus_Unauthenticated(t *testing.T) {
	srv := newTestServer(t, Sample())

	resp, err := http.Get(srv.URL + "/api/status")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "running", body["status"])
	assert.Equal(t, ServiceName, body["service"])
}

func TestAuth_MissingAndInvalid(t *testing.T) {
	srv := newTestServer(t, Sample())
	c := api.New(srv.URL)

	_, err := c.DashboardStats(context.Background(), "")
	var se *api.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.Status)
	assert.Equal(t, "Authorization token missing", se.Message)

	_, err = c.MyNotes(context.Background(), "not-a-jwt")
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusForbidden, se.Status)
	assert.Contains(t, se.Message, "Invalid or expired token: ")
	assert.ErrorIs(t, err, api.ErrUnauthorized)
}

func TestDashboardStats_ServesSample(t *testing.T) {
	srv := newTestServer(t, Sample())

	stats, err := api.New(srv.URL).DashboardStats(context.Background(), mint(t))
	require.NoError(t, err)

	assert.Equal(t, 87.5, *stats.StudyTimeHours)
	assert.Equal(t, 0, *stats.DaysStreak)
	assert.Len(t, stats.WeeklyProgress, 7)
	require.Len(t, stats.TopicMastery, 4)
	assert.Equal(t, -2.0, *stats.TopicMastery[2].Change)
}

func TestMyNotes_ServesSample(t *testing.T) {
	srv := newTestServer(t, Sample())

	notes, err := api.New(srv.URL).MyNotes(context.Background(), mint(t))
	require.NoError(t, err)

	require.Len(t, notes, 2)
	assert.Equal(t, "eigenvalues.pdf", notes[0].Filename)
	assert.Empty(t, notes[1].Topics)
}

func TestMyNotes_EmptyFixture(t *testing.T) {
	srv := newTestServer(t, Fixed{})

	notes, err := api.New(srv.URL).MyNotes(context.Background(), mint(t))
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestSourceFailure_Is500WithMessage(t *testing.T) {
	srv := newTestServer(t, failingSource{})

	_, err := api.New(srv.URL).DashboardStats(context.Background(), mint(t))

	var se *api.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusInternalServerError, se.Status)
	assert.Equal(t, "Failed to retrieve dashboard stats: database not connected", se.Message)
}

func TestRateLimit(t *testing.T) {
	srv := newTestServer(t, Sample())

	var last int
	for i := 0; i <= RequestsPerMinute; i++ {
		resp, err := http.Get(srv.URL + "/api/status")
		require.NoError(t, err)
		resp.Body.Close()
		last = resp.StatusCode
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
}
