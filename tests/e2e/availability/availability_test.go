//go:build e2e

package availability_test

import (
	"net/http"
	"testing"
	"time"

	"open-classrooms/internal/handler/dto/response"
	"open-classrooms/internal/infra/cache"
	"open-classrooms/tests/common/builder"
	"open-classrooms/tests/common/httptest"
	"open-classrooms/tests/common/redistest"
	"open-classrooms/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	openClassroomsURL = "/api/open-classrooms"
	lastUpdatedURL    = "/api/last-updated"
	cooldownURL       = "/api/cooldown-status"
	refreshURL        = "/api/refresh"
)

type AvailabilitySuite struct {
	e2e.SharedSuite
	loc *time.Location
}

func (s *AvailabilitySuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	loc, err := s.Config.Cache.Location()
	require.NoError(s.T(), err)
	s.loc = loc
}

func TestAvailabilitySuite(t *testing.T) {
	suite.Run(t, new(AvailabilitySuite))
}

func (s *AvailabilitySuite) TestOpenClassrooms() {
	s.Run("Normal case: empty cache is filled on first read", func() {
		t := s.T()
		today := time.Now().In(s.loc)
		s.Upstream.SetPayload(builder.NewBookingsBuilder(today).
			WithBooking("342", "09:00", "12:00").
			WithBooking("342", "12:10", "15:00").
			Build())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, openClassroomsURL, nil)

		var got response.OpenClassroomsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		s.Equal(int64(1), s.Upstream.Calls())
		s.Require().Contains(got.Buildings, "CAS")
		s.Require().Contains(got.Buildings, "CGS")
		s.Len(got.Buildings["CAS"].Classrooms, 54)
		s.Len(got.Buildings["CGS"].Classrooms, 23)

		var room342 *response.ClassroomResponse
		for i, c := range got.Buildings["CAS"].Classrooms {
			if c.ID == "342" {
				room342 = &got.Buildings["CAS"].Classrooms[i]
			}
		}
		s.Require().NotNil(room342)
		// the ten-minute gap between bookings is too short to list
		s.Equal([]response.SlotResponse{
			{Start: "07:00", End: "09:00"},
			{Start: "15:00", End: "23:00"},
		}, room342.Availability)

		s.Require().NotNil(got.LastUpdated)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, lastUpdatedURL, nil)
		body := httptest.DecodeJSONMap(t, w)
		s.Equal(*got.LastUpdated, body["last_updated"])
	})

	s.Run("Normal case: cached data is served without calling upstream", func() {
		t := s.T()

		httptest.PerformRequest(t, s.Router, http.MethodGet, openClassroomsURL, nil)
		httptest.PerformRequest(t, s.Router, http.MethodGet, openClassroomsURL, nil)

		s.Equal(int64(1), s.Upstream.Calls())
		s.NotEmpty(redistest.RawValue(t, s.Redis, cache.SnapshotKey))
	})

	s.Run("Abnormal case: upstream down on empty cache degrades to empty object", func() {
		t := s.T()
		s.Upstream.SetFailing(true)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, openClassroomsURL, nil)

		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`{}`, w.Body.String())
		s.Empty(redistest.RawValue(t, s.Redis, cache.SnapshotKey))
		s.Empty(redistest.RawValue(t, s.Redis, cache.LastRefreshKey))
	})
}

func (s *AvailabilitySuite) TestRefresh() {
	s.Run("Abnormal case: refresh five minutes after the last one is rejected", func() {
		t := s.T()
		redistest.SeedLastRefresh(t, s.Redis, time.Now().In(s.loc).Add(-5*time.Minute))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, nil)

		body := httptest.AssertErrorResponse(t, w, http.StatusTooManyRequests, "Refresh cooldown active. Please wait")
		s.Require().NotNil(body.RemainingMinutes)
		s.InDelta(25.0, *body.RemainingMinutes, 0.2)
		s.Equal(int64(0), s.Upstream.Calls())
	})

	s.Run("Normal case: refresh after the window, then the window starts over", func() {
		t := s.T()
		redistest.SeedLastRefresh(t, s.Redis, time.Now().In(s.loc).Add(-35*time.Minute))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, nil)
		var got response.RefreshResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		s.Equal("Data refreshed successfully", got.Message)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, nil)
		body := httptest.AssertErrorResponse(t, w, http.StatusTooManyRequests, "more minutes")
		s.Require().NotNil(body.RemainingMinutes)
		s.InDelta(30.0, *body.RemainingMinutes, 0.2)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, cooldownURL, nil)
		var status response.CooldownStatusResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &status)
		s.True(status.InCooldown)
	})

	s.Run("Abnormal case: upstream failure leaves stored state untouched", func() {
		t := s.T()
		seeded := time.Now().In(s.loc).Add(-time.Hour)
		redistest.SeedLastRefresh(t, s.Redis, seeded)
		before := redistest.RawValue(t, s.Redis, cache.LastRefreshKey)
		s.Upstream.SetFailing(true)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, nil)

		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Failed to refresh data")
		s.Equal(before, redistest.RawValue(t, s.Redis, cache.LastRefreshKey))
		s.Empty(redistest.RawValue(t, s.Redis, cache.SnapshotKey))
	})
}

func (s *AvailabilitySuite) TestHealth() {
	s.Run("Normal case: redis reachable", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/health", nil)
		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`{"status":"ok","redis":"ok"}`, w.Body.String())
	})
}
