//go:build e2e

package company_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"hass-backend/tests/common/dbtest"
	"hass-backend/tests/common/httptest"
	"hass-backend/tests/e2e"
)

type companySuite struct {
	e2e.SharedSuite
}

func TestCompanySuite(t *testing.T) {
	suite.Run(t, new(companySuite))
}

func (s *companySuite) login() string {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/company/login", map[string]any{
		"login_id": dbtest.CompanyLoginID,
		"password": dbtest.SeedPassword,
	}, "")
	require.Equal(s.T(), http.StatusOK, rec.Code, rec.Body.String())

	var body map[string]any
	httptest.DecodeResponseBody(s.T(), rec.Body, &body)
	return body["access_token"].(string)
}

// plants a subscription directly so list queries have data without walking
// the whole install flow
func (s *companySuite) plantSubscription(customerID uuid.UUID, serial string, termYears int, beginDate *time.Time) uuid.UUID {
	ctx := context.Background()
	subID := uuid.New()

	_, err := s.DB.Exec(ctx, "UPDATE products SET status = 'installed' WHERE serial_number = $1", serial)
	require.NoError(s.T(), err)

	_, err = s.DB.Exec(ctx,
		"INSERT INTO subscriptions (id, term_years, begin_date, customer_id, serial_number) VALUES ($1, $2, $3, $4, $5)",
		subID, termYears, beginDate, customerID, serial)
	require.NoError(s.T(), err)

	_, err = s.DB.Exec(ctx,
		"INSERT INTO requests (id, type, status, subscription_id) VALUES ($1, 'install', 'visited', $2)",
		uuid.New(), subID)
	require.NoError(s.T(), err)

	return subID
}

func (s *companySuite) TestCompanyViews() {
	s.Run("active subscriptions and the customer roster", func() {
		token := s.login()
		customerID := dbtest.CreateTestCustomer(s.T(), s.DB, "companyview01")

		begin := time.Now().UTC().AddDate(0, -6, 0)
		s.plantSubscription(customerID, "SN-W001", 2, &begin)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/subscriptions", nil, token)
		require.Equal(s.T(), http.StatusOK, rec.Code, rec.Body.String())
		var subs []map[string]any
		httptest.DecodeResponseBody(s.T(), rec.Body, &subs)
		require.Len(s.T(), subs, 1)
		require.Equal(s.T(), "SN-W001", subs[0]["serial_number"])

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/customers", nil, token)
		require.Equal(s.T(), http.StatusOK, rec.Code)
		var customers []map[string]any
		httptest.DecodeResponseBody(s.T(), rec.Body, &customers)
		require.Len(s.T(), customers, 1)
	})

	s.Run("expiring lists only run-out terms without a return request", func() {
		token := s.login()
		customerID := dbtest.CreateTestCustomer(s.T(), s.DB, "companyview02")

		// one-year term begun two years ago: expired
		expiredBegin := time.Now().UTC().AddDate(-2, 0, 0)
		expiredID := s.plantSubscription(customerID, "SN-W001", 1, &expiredBegin)

		// begun last month: still running
		freshBegin := time.Now().UTC().AddDate(0, -1, 0)
		s.plantSubscription(customerID, "SN-W002", 1, &freshBegin)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/subscriptions/expiring", nil, token)
		require.Equal(s.T(), http.StatusOK, rec.Code, rec.Body.String())
		var expiring []map[string]any
		httptest.DecodeResponseBody(s.T(), rec.Body, &expiring)
		require.Len(s.T(), expiring, 1)
		require.Equal(s.T(), expiredID.String(), expiring[0]["id"])

		// once a return request is filed the subscription drops off the list
		_, err := s.DB.Exec(context.Background(),
			"INSERT INTO requests (id, type, status, subscription_id) VALUES ($1, 'return', 'pending', $2)",
			uuid.New(), expiredID)
		require.NoError(s.T(), err)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/subscriptions/expiring", nil, token)
		require.Equal(s.T(), http.StatusOK, rec.Code)
		httptest.DecodeResponseBody(s.T(), rec.Body, &expiring)
		require.Empty(s.T(), expiring)
	})

	s.Run("customer routes are closed to the company role", func() {
		token := s.login()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/customers/me/subscriptions", nil, token)
		require.Equal(s.T(), http.StatusForbidden, rec.Code)
	})
}

func (s *companySuite) TestReturnHandling() {
	s.Run("the company files the return for an expired subscription", func() {
		token := s.login()
		customerID := dbtest.CreateTestCustomer(s.T(), s.DB, "companyreturn01")

		expiredBegin := time.Now().UTC().AddDate(-2, 0, 0)
		expiredID := s.plantSubscription(customerID, "SN-W001", 1, &expiredBegin)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/subscriptions/"+expiredID.String()+"/return", map[string]any{
			"preferred_dates": []string{"2026-10-01T10:00:00Z"},
		}, token)
		require.Equal(s.T(), http.StatusCreated, rec.Code, rec.Body.String())

		// the filed return takes the subscription off the expiring list
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/subscriptions/expiring", nil, token)
		require.Equal(s.T(), http.StatusOK, rec.Code)
		var expiring []map[string]any
		httptest.DecodeResponseBody(s.T(), rec.Body, &expiring)
		require.Empty(s.T(), expiring)
	})

	s.Run("scheduling visits stays with the worker role", func() {
		token := s.login()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/worker/requests/"+uuid.NewString()+"/accept", map[string]any{}, token)
		require.Equal(s.T(), http.StatusForbidden, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/worker/requests/"+uuid.NewString()+"/complete", map[string]any{}, token)
		require.Equal(s.T(), http.StatusForbidden, rec.Code)
	})
}
