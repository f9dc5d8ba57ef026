//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"hass-backend/internal/domain/principal"
	"hass-backend/internal/handler/api"
	"hass-backend/internal/pkg/errs"
	"hass-backend/internal/usecase/commands"
	"hass-backend/internal/usecase/queries"
	"hass-backend/tests/common/httptest"
	commandsmock "hass-backend/tests/mock/commands"
	queriesmock "hass-backend/tests/mock/queries"
)

type WorkerHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	mockRequestCmds *commandsmock.MockRequestCommands
	mockRequestQs   *queriesmock.MockRequestQueries
	mockCatalogQs   *queriesmock.MockCatalogQueries
	handler         *api.WorkerHandler
	workerID        uuid.UUID
}

func (s *WorkerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockRequestCmds = commandsmock.NewMockRequestCommands(s.mockCtrl)
	s.mockRequestQs = queriesmock.NewMockRequestQueries(s.mockCtrl)
	s.mockCatalogQs = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewWorkerHandler(s.mockRequestQs, s.mockCatalogQs, s.mockRequestCmds)
	s.workerID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("principal_id", s.workerID)
		c.Set("principal_role", principal.RoleWorker)
		c.Next()
	}

	s.router.GET("/worker/requests", authMiddleware, s.handler.ListRequests)
	s.router.GET("/worker/requests/:id", authMiddleware, s.handler.GetRequest)
	s.router.GET("/worker/requests/:id/preferences", authMiddleware, s.handler.ListPreferenceDates)
	s.router.GET("/worker/requests/:id/visit", authMiddleware, s.handler.GetVisit)
	s.router.GET("/worker/requests/:id/qualified-workers", authMiddleware, s.handler.QualifiedWorkers)
	s.router.POST("/worker/requests/:id/accept", authMiddleware, s.handler.AcceptRequest)
	s.router.POST("/worker/requests/:id/complete", authMiddleware, s.handler.CompleteVisit)
	s.router.GET("/worker/summary/stock", authMiddleware, s.handler.StockSummary)
	s.router.GET("/worker/summary/requests", authMiddleware, s.handler.RequestCounts)
}

func (s *WorkerHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWorkerHandlerSuite(t *testing.T) {
	suite.Run(t, new(WorkerHandlerTestSuite))
}

func (s *WorkerHandlerTestSuite) TestListRequests() {
	views := []*queries.RequestView{
		{ID: uuid.New(), Type: "install", Status: "pending", CreatedAt: time.Now(), SubscriptionID: uuid.New()},
		{ID: uuid.New(), Type: "repair", Status: "scheduled", CreatedAt: time.Now(), SubscriptionID: uuid.New()},
	}
	s.mockRequestQs.EXPECT().ListAll(gomock.Any()).Return(views, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/worker/requests", nil, "bearer-token")
	s.Equal(http.StatusOK, rec.Code)

	var body []map[string]any
	httptest.DecodeResponseBody(s.T(), rec.Body, &body)
	s.Len(body, 2)
	s.Equal("install", body[0]["type"])
}

func (s *WorkerHandlerTestSuite) TestGetRequest() {
	reqID := uuid.New()

	s.Run("success", func() {
		view := &queries.RequestView{ID: reqID, Type: "repair", Status: "pending", CreatedAt: time.Now(), SubscriptionID: uuid.New()}
		s.mockRequestQs.EXPECT().GetByID(gomock.Any(), reqID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/worker/requests/"+reqID.String(), nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 404 for an unknown request", func() {
		s.mockRequestQs.EXPECT().GetByID(gomock.Any(), reqID).Return(nil, errs.ErrRequestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/worker/requests/"+reqID.String(), nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/worker/requests/not-a-uuid", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *WorkerHandlerTestSuite) TestAcceptRequest() {
	reqID := uuid.New()
	url := "/worker/requests/" + reqID.String() + "/accept"

	s.Run("success: schedules the visit and returns 201", func() {
		visitDate := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)
		result := &commands.AcceptResult{VisitID: uuid.New(), VisitDate: visitDate}
		s.mockRequestCmds.EXPECT().
			AcceptRequest(gomock.Any(), reqID, s.workerID, gomock.Any()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		s.Equal(http.StatusCreated, rec.Code)

		var body map[string]any
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal(result.VisitID.String(), body["visit_id"])
	})

	s.Run("error: 409 when a visit is already scheduled", func() {
		s.mockRequestCmds.EXPECT().
			AcceptRequest(gomock.Any(), reqID, s.workerID, gomock.Any()).
			Return(nil, errs.ErrVisitAlreadyScheduled).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("error: 409 when the status transition is invalid", func() {
		s.mockRequestCmds.EXPECT().
			AcceptRequest(gomock.Any(), reqID, s.workerID, gomock.Any()).
			Return(nil, errs.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *WorkerHandlerTestSuite) TestCompleteVisit() {
	reqID := uuid.New()
	url := "/worker/requests/" + reqID.String() + "/complete"

	s.Run("success: returns 204", func() {
		s.mockRequestCmds.EXPECT().
			CompleteVisit(gomock.Any(), reqID, gomock.Any()).
			Return(nil).Times(1)

		body := map[string]any{"problem_detail": "leaking hose", "solution_detail": "replaced hose"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when there is no visit on file", func() {
		s.mockRequestCmds.EXPECT().
			CompleteVisit(gomock.Any(), reqID, gomock.Any()).
			Return(errs.ErrVisitNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *WorkerHandlerTestSuite) TestQualifiedWorkers() {
	reqID := uuid.New()
	url := "/worker/requests/" + reqID.String() + "/qualified-workers"

	workers := []*queries.WorkerView{
		{ID: uuid.New(), Name: "Tanaka", Specialty: "washing_machine", Phone: "090-0000-0001"},
	}
	s.mockRequestQs.EXPECT().QualifiedWorkers(gomock.Any(), reqID).Return(workers, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
	s.Equal(http.StatusOK, rec.Code)

	var body []map[string]any
	httptest.DecodeResponseBody(s.T(), rec.Body, &body)
	s.Len(body, 1)
	s.Equal("washing_machine", body[0]["specialty"])
}

func (s *WorkerHandlerTestSuite) TestSummaries() {
	s.Run("stock summary", func() {
		summary := []*queries.StockSummaryView{
			{ModelID: uuid.New(), ModelName: "EcoWash 500", Category: "washing_machine", StockCount: 3, SubscribedCount: 7},
		}
		s.mockCatalogQs.EXPECT().StockSummary(gomock.Any()).Return(summary, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/worker/summary/stock", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("request counts", func() {
		s.mockRequestQs.EXPECT().
			Counts(gomock.Any()).
			Return(&queries.RequestCountsView{Pending: 4, Scheduled: 2}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/worker/summary/requests", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)

		var body map[string]int64
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal(int64(4), body["pending"])
		s.Equal(int64(2), body["scheduled"])
	})
}
