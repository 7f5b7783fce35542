//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"open-classrooms/internal/domain/availability"
	"open-classrooms/internal/handler/api"
	resdto "open-classrooms/internal/handler/dto/response"
	"open-classrooms/internal/pkg/errs"
	"open-classrooms/internal/usecase/queries"
	"open-classrooms/tests/common/httptest"
	queriesmock "open-classrooms/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var errStoreDown = errs.Mark(errors.New("redis: connection refused"), errs.ErrStoreUnavailable)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
	handler     *api.AvailabilityHandler
	loc         *time.Location
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockQueries)

	loc, err := time.LoadLocation("America/New_York")
	s.Require().NoError(err)
	s.loc = loc

	s.router.GET("/api/open-classrooms", s.handler.GetOpenClassrooms)
	s.router.GET("/api/last-updated", s.handler.GetLastUpdated)
	s.router.GET("/api/cooldown-status", s.handler.GetCooldownStatus)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestGetOpenClassrooms() {
	url := "/api/open-classrooms"
	updated := time.Date(2025, 3, 10, 8, 0, 0, 0, s.loc)

	s.Run("success: buildings with classrooms and timestamp", func() {
		s.mockQueries.EXPECT().GetAvailability(gomock.Any()).Return(&queries.OpenClassrooms{
			Buildings: map[string]queries.BuildingView{
				"CAS": {Code: "CAS", Name: "College of Arts & Sciences", Classrooms: []queries.ClassroomView{
					{ID: "116", Name: "CAS 116", Availability: []availability.Slot{}},
					{ID: "342", Name: "CAS 342", Availability: []availability.Slot{{Start: "09:00", End: "10:30"}}},
				}},
			},
			LastUpdated: &updated,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response resdto.OpenClassroomsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Contains(response.Buildings, "CAS")
		cas := response.Buildings["CAS"]
		s.Equal("College of Arts & Sciences", cas.Name)
		s.Require().Len(cas.Classrooms, 2)
		s.Equal([]resdto.SlotResponse{{Start: "09:00", End: "10:30"}}, cas.Classrooms[1].Availability)
		s.Require().NotNil(response.LastUpdated)
		s.Equal("2025-03-10T08:00:00-04:00", *response.LastUpdated)

		// an empty list, never null
		s.Contains(rec.Body.String(), `"availability":[]`)
	})

	s.Run("success: null last_updated", func() {
		s.mockQueries.EXPECT().GetAvailability(gomock.Any()).
			Return(&queries.OpenClassrooms{Buildings: map[string]queries.BuildingView{}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		body := httptest.DecodeJSONMap(s.T(), rec)
		s.Contains(body, "last_updated")
		s.Nil(body["last_updated"])
	})

	s.Run("degraded: empty object on failure", func() {
		s.mockQueries.EXPECT().GetAvailability(gomock.Any()).Return(nil, errStoreDown).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{}`, rec.Body.String())
	})
}

func (s *AvailabilityHandlerTestSuite) TestGetLastUpdated() {
	url := "/api/last-updated"

	s.Run("success: timestamp with offset", func() {
		updated := time.Date(2025, 7, 1, 12, 30, 0, 0, s.loc)
		s.mockQueries.EXPECT().GetLastUpdated(gomock.Any()).Return(&updated, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"last_updated":"2025-07-01T12:30:00-04:00"}`, rec.Body.String())
	})

	s.Run("success: never refreshed", func() {
		s.mockQueries.EXPECT().GetLastUpdated(gomock.Any()).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		s.JSONEq(`{"last_updated":null}`, rec.Body.String())
	})

	s.Run("degraded: null on failure", func() {
		s.mockQueries.EXPECT().GetLastUpdated(gomock.Any()).Return(nil, errStoreDown).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"last_updated":null}`, rec.Body.String())
	})
}

func (s *AvailabilityHandlerTestSuite) TestGetCooldownStatus() {
	url := "/api/cooldown-status"

	s.Run("success: in cooldown", func() {
		s.mockQueries.EXPECT().GetCooldownStatus(gomock.Any()).
			Return(&queries.CooldownStatus{InCooldown: true, RemainingMinutes: 12.5}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response resdto.CooldownStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.InCooldown)
		s.InDelta(12.5, response.RemainingMinutes, 1e-9)
	})

	s.Run("degraded: not in cooldown on failure", func() {
		s.mockQueries.EXPECT().GetCooldownStatus(gomock.Any()).Return(nil, errStoreDown).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"in_cooldown":false,"remaining_minutes":0}`, rec.Body.String())
	})
}
