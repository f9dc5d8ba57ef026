//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"hass-backend/internal/domain/principal"
	"hass-backend/internal/handler/api"
	"hass-backend/internal/pkg/errs"
	"hass-backend/tests/common/httptest"
	commandsmock "hass-backend/tests/mock/commands"
	queriesmock "hass-backend/tests/mock/queries"
)

type CustomerHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRequestCommands
	handler      *api.CustomerHandler
	customerID   uuid.UUID
}

func (s *CustomerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRequestCommands(s.mockCtrl)
	s.handler = api.NewCustomerHandler(
		queriesmock.NewMockCustomerQueries(s.mockCtrl),
		queriesmock.NewMockSubscriptionQueries(s.mockCtrl),
		queriesmock.NewMockRequestQueries(s.mockCtrl),
		s.mockCommands,
	)
	s.customerID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("principal_id", s.customerID)
		c.Set("principal_role", principal.RoleCustomer)
		c.Next()
	}

	s.router.POST("/requests/:id/cancel", authMiddleware, s.handler.CancelRequest)
}

func (s *CustomerHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCustomerHandlerSuite(t *testing.T) {
	suite.Run(t, new(CustomerHandlerTestSuite))
}

func (s *CustomerHandlerTestSuite) TestCancelRequest() {
	requestID := uuid.New()
	url := "/requests/" + requestID.String() + "/cancel"

	s.Run("success: cancels on behalf of the authenticated customer", func() {
		s.mockCommands.EXPECT().
			CancelRequest(gomock.Any(), s.customerID, requestID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when the request is not the customer's own", func() {
		s.mockCommands.EXPECT().
			CancelRequest(gomock.Any(), s.customerID, requestID).
			Return(errs.ErrRequestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 409 once the visit happened", func() {
		s.mockCommands.EXPECT().
			CancelRequest(gomock.Any(), s.customerID, requestID).
			Return(errs.ErrAlreadyVisited).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("error: 400 Bad Request for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/requests/not-a-uuid/cancel", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
