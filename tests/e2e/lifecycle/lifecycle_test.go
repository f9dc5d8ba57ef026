//go:build e2e

package lifecycle_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"hass-backend/tests/common/dbtest"
	"hass-backend/tests/common/httptest"
	"hass-backend/tests/e2e"
)

const (
	signupURL    = "/api/auth/customer/signup"
	subscribeURL = "/api/subscriptions"
	repairURL    = "/api/requests/repair"
)

type lifecycleSuite struct {
	e2e.SharedSuite
}

func TestLifecycleSuite(t *testing.T) {
	suite.Run(t, new(lifecycleSuite))
}

func (s *lifecycleSuite) signupAndLoginCustomer(loginID string) string {
	body := map[string]any{
		"login_id":       loginID,
		"password":       dbtest.SeedPassword,
		"name":           "Yamada Taro",
		"main_phone":     "080-1234-5678",
		"street_address": "4-5-6 Shibuya",
	}
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, signupURL, body, "")
	require.Equal(s.T(), http.StatusCreated, rec.Code, rec.Body.String())

	return s.login("customer", loginID)
}

func (s *lifecycleSuite) login(role, loginID string) string {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/"+role+"/login", map[string]any{
		"login_id": loginID,
		"password": dbtest.SeedPassword,
	}, "")
	require.Equal(s.T(), http.StatusOK, rec.Code, rec.Body.String())

	var body map[string]any
	httptest.DecodeResponseBody(s.T(), rec.Body, &body)
	token, ok := body["access_token"].(string)
	require.True(s.T(), ok, "no access token in login response")
	return token
}

func (s *lifecycleSuite) subscribe(customerToken string, termYears int, dates ...string) map[string]any {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, subscribeURL, map[string]any{
		"model_id":        dbtest.WashingMachineModelID.String(),
		"term_years":      termYears,
		"preferred_dates": dates,
	}, customerToken)
	require.Equal(s.T(), http.StatusCreated, rec.Code, rec.Body.String())

	var body map[string]any
	httptest.DecodeResponseBody(s.T(), rec.Body, &body)
	return body
}

func (s *lifecycleSuite) TestInstallLifecycle() {
	s.Run("subscribe, accept and complete the install", func() {
		customerToken := s.signupAndLoginCustomer("lifecycle01")
		workerToken := s.login("worker", dbtest.WorkerLoginID)

		subscribed := s.subscribe(customerToken, 2, "2026-09-10T10:00:00Z", "2026-09-08T10:00:00Z")
		requestID := subscribed["request_id"].(string)
		serial := subscribed["serial_number"].(string)

		// the unit is now held for this subscription
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/worker/products/"+serial, nil, workerToken)
		require.Equal(s.T(), http.StatusOK, rec.Code)
		var productBody map[string]any
		httptest.DecodeResponseBody(s.T(), rec.Body, &productBody)
		require.Equal(s.T(), "reserved", productBody["status"])

		// worker accepts without an explicit date, the earliest preference wins
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/worker/requests/"+requestID+"/accept", map[string]any{}, workerToken)
		require.Equal(s.T(), http.StatusCreated, rec.Code, rec.Body.String())
		var acceptBody map[string]any
		httptest.DecodeResponseBody(s.T(), rec.Body, &acceptBody)
		visitDate, err := time.Parse(time.RFC3339, acceptBody["visit_date"].(string))
		require.NoError(s.T(), err)
		require.True(s.T(), visitDate.Equal(time.Date(2026, 9, 8, 10, 0, 0, 0, time.UTC)))

		// completing the install moves the unit to installed
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/worker/requests/"+requestID+"/complete", map[string]any{}, workerToken)
		require.Equal(s.T(), http.StatusNoContent, rec.Code, rec.Body.String())

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/worker/products/"+serial, nil, workerToken)
		require.Equal(s.T(), http.StatusOK, rec.Code)
		httptest.DecodeResponseBody(s.T(), rec.Body, &productBody)
		require.Equal(s.T(), "installed", productBody["status"])

		// the subscription now shows up for the customer, begin date stamped
		// from the visit date
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/customers/me/subscriptions", nil, customerToken)
		require.Equal(s.T(), http.StatusOK, rec.Code)
		var mySubs []map[string]any
		httptest.DecodeResponseBody(s.T(), rec.Body, &mySubs)
		require.Len(s.T(), mySubs, 1)
		require.NotNil(s.T(), mySubs[0]["begin_date"])
		require.NotNil(s.T(), mySubs[0]["expires_at"])

		// accepting the same request again is rejected
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/worker/requests/"+requestID+"/accept", map[string]any{}, workerToken)
		require.Equal(s.T(), http.StatusConflict, rec.Code)
	})

	s.Run("cancelling an uninstalled subscription releases the unit", func() {
		customerToken := s.signupAndLoginCustomer("lifecycle02")
		workerToken := s.login("worker", dbtest.WorkerLoginID)

		subscribed := s.subscribe(customerToken, 1, "2026-09-10T10:00:00Z")
		requestID := subscribed["request_id"].(string)
		serial := subscribed["serial_number"].(string)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/requests/"+requestID+"/cancel", nil, customerToken)
		require.Equal(s.T(), http.StatusNoContent, rec.Code, rec.Body.String())

		// the whole subscription is unwound
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/customers/me/subscriptions", nil, customerToken)
		require.Equal(s.T(), http.StatusOK, rec.Code)
		var mySubs []map[string]any
		httptest.DecodeResponseBody(s.T(), rec.Body, &mySubs)
		require.Empty(s.T(), mySubs)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/worker/products/"+serial, nil, workerToken)
		require.Equal(s.T(), http.StatusOK, rec.Code)
		var productBody map[string]any
		httptest.DecodeResponseBody(s.T(), rec.Body, &productBody)
		require.Equal(s.T(), "in_stock", productBody["status"])
	})

	s.Run("cancelling after the visit is scheduled clears the visit too", func() {
		customerToken := s.signupAndLoginCustomer("lifecycle03")
		workerToken := s.login("worker", dbtest.WorkerLoginID)

		subscribed := s.subscribe(customerToken, 1, "2026-09-10T10:00:00Z")
		requestID := subscribed["request_id"].(string)
		serial := subscribed["serial_number"].(string)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/worker/requests/"+requestID+"/accept", map[string]any{}, workerToken)
		require.Equal(s.T(), http.StatusCreated, rec.Code, rec.Body.String())

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/requests/"+requestID+"/cancel", nil, customerToken)
		require.Equal(s.T(), http.StatusNoContent, rec.Code, rec.Body.String())

		// request, visit and subscription are all gone, the unit is back
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/worker/requests/"+requestID, nil, workerToken)
		require.Equal(s.T(), http.StatusNotFound, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/worker/products/"+serial, nil, workerToken)
		require.Equal(s.T(), http.StatusOK, rec.Code)
		var productBody map[string]any
		httptest.DecodeResponseBody(s.T(), rec.Body, &productBody)
		require.Equal(s.T(), "in_stock", productBody["status"])
	})

	s.Run("a customer cannot cancel someone else's request", func() {
		ownerToken := s.signupAndLoginCustomer("lifecycle04")
		otherToken := s.signupAndLoginCustomer("lifecycle05")

		subscribed := s.subscribe(ownerToken, 1, "2026-09-10T10:00:00Z")
		requestID := subscribed["request_id"].(string)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/requests/"+requestID+"/cancel", nil, otherToken)
		require.Equal(s.T(), http.StatusNotFound, rec.Code, rec.Body.String())
	})
}

func (s *lifecycleSuite) TestRepairAndReturn() {
	s.Run("repair visit records its detail", func() {
		customerToken := s.signupAndLoginCustomer("repair01")
		workerToken := s.login("worker", dbtest.WorkerLoginID)

		subscribed := s.subscribe(customerToken, 2, "2026-09-08T10:00:00Z")
		installRequestID := subscribed["request_id"].(string)
		subscriptionID := subscribed["subscription_id"].(string)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/worker/requests/"+installRequestID+"/accept", map[string]any{}, workerToken)
		require.Equal(s.T(), http.StatusCreated, rec.Code)
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/worker/requests/"+installRequestID+"/complete", map[string]any{}, workerToken)
		require.Equal(s.T(), http.StatusNoContent, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, repairURL, map[string]any{
			"subscription_id": subscriptionID,
			"comment":         "drum makes a grinding noise",
			"preferred_dates": []string{"2026-10-01T14:00:00Z"},
		}, customerToken)
		require.Equal(s.T(), http.StatusCreated, rec.Code, rec.Body.String())
		var repairBody map[string]any
		httptest.DecodeResponseBody(s.T(), rec.Body, &repairBody)
		repairRequestID := repairBody["request_id"].(string)

		// the worker's qualified list matches the appliance category
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/worker/requests/"+repairRequestID+"/qualified-workers", nil, workerToken)
		require.Equal(s.T(), http.StatusOK, rec.Code)
		var workers []map[string]any
		httptest.DecodeResponseBody(s.T(), rec.Body, &workers)
		require.Len(s.T(), workers, 1)
		require.Equal(s.T(), "washing_machine", workers[0]["specialty"])

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/worker/requests/"+repairRequestID+"/accept", map[string]any{
			"visit_date": "2026-10-02T09:00:00Z",
		}, workerToken)
		require.Equal(s.T(), http.StatusCreated, rec.Code, rec.Body.String())

		// a repair completion without detail is rejected
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/worker/requests/"+repairRequestID+"/complete", map[string]any{}, workerToken)
		require.Equal(s.T(), http.StatusUnprocessableEntity, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/worker/requests/"+repairRequestID+"/complete", map[string]any{
			"problem_detail":  "worn drive belt",
			"solution_detail": "replaced the belt",
		}, workerToken)
		require.Equal(s.T(), http.StatusNoContent, rec.Code, rec.Body.String())

		// a visited request can no longer be cancelled
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/requests/"+repairRequestID+"/cancel", nil, customerToken)
		require.Equal(s.T(), http.StatusConflict, rec.Code)
	})

	s.Run("return visit keeps the subscription on record", func() {
		customerToken := s.signupAndLoginCustomer("return01")
		workerToken := s.login("worker", dbtest.WorkerLoginID)

		subscribed := s.subscribe(customerToken, 1, "2026-09-08T10:00:00Z")
		installRequestID := subscribed["request_id"].(string)
		subscriptionID := subscribed["subscription_id"].(string)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/worker/requests/"+installRequestID+"/accept", map[string]any{}, workerToken)
		require.Equal(s.T(), http.StatusCreated, rec.Code)
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/worker/requests/"+installRequestID+"/complete", map[string]any{}, workerToken)
		require.Equal(s.T(), http.StatusNoContent, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/subscriptions/"+subscriptionID+"/return", map[string]any{
			"preferred_dates": []string{"2027-09-10T10:00:00Z"},
		}, customerToken)
		require.Equal(s.T(), http.StatusCreated, rec.Code, rec.Body.String())
		var returnBody map[string]any
		httptest.DecodeResponseBody(s.T(), rec.Body, &returnBody)
		returnRequestID := returnBody["request_id"].(string)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/worker/requests/"+returnRequestID+"/accept", map[string]any{}, workerToken)
		require.Equal(s.T(), http.StatusCreated, rec.Code)
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/worker/requests/"+returnRequestID+"/complete", map[string]any{}, workerToken)
		require.Equal(s.T(), http.StatusNoContent, rec.Code)

		// the subscription history survives the return
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/customers/me/subscriptions", nil, customerToken)
		require.Equal(s.T(), http.StatusOK, rec.Code)
		var mySubs []map[string]any
		httptest.DecodeResponseBody(s.T(), rec.Body, &mySubs)
		require.Len(s.T(), mySubs, 1)
	})
}

func (s *lifecycleSuite) TestConcurrentSubscribe() {
	s.Run("concurrent subscribers never share a unit", func() {
		workerToken := s.login("worker", dbtest.WorkerLoginID)

		// three washing machine units are seeded, one subscriber must miss out
		const subscribers = 4
		tokens := make([]string, subscribers)
		for i := range tokens {
			tokens[i] = s.signupAndLoginCustomer(fmt.Sprintf("race%02d", i))
		}

		var wg sync.WaitGroup
		codes := make([]int, subscribers)
		serials := make([]string, subscribers)
		for i := range subscribers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, subscribeURL, map[string]any{
					"model_id":        dbtest.WashingMachineModelID.String(),
					"term_years":      1,
					"preferred_dates": []string{"2026-09-10T10:00:00Z"},
				}, tokens[i])
				codes[i] = rec.Code
				if rec.Code == http.StatusCreated {
					var body map[string]any
					httptest.DecodeResponseBody(s.T(), rec.Body, &body)
					serials[i] = body["serial_number"].(string)
				}
			}()
		}
		wg.Wait()

		// serialization losers also answer 409, so the split is not exact,
		// but units must never be handed out twice and never oversold
		created, conflicts := 0, 0
		seen := map[string]bool{}
		for i, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
				require.False(s.T(), seen[serials[i]], "serial %s handed out twice", serials[i])
				seen[serials[i]] = true
			case http.StatusConflict:
				conflicts++
			default:
				s.T().Fatalf("unexpected status %d", code)
			}
		}
		require.Equal(s.T(), subscribers, created+conflicts)
		require.GreaterOrEqual(s.T(), created, 1)
		require.LessOrEqual(s.T(), created, 3)

		// the stock summary agrees with the number of successful subscribes
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/worker/summary/stock", nil, workerToken)
		require.Equal(s.T(), http.StatusOK, rec.Code)
		var summary []map[string]any
		httptest.DecodeResponseBody(s.T(), rec.Body, &summary)
		for _, row := range summary {
			if row["model_id"] == dbtest.WashingMachineModelID.String() {
				require.Equal(s.T(), float64(3-created), row["stock_count"])
				require.Equal(s.T(), float64(created), row["subscribed_count"])
			}
		}
	})
}
