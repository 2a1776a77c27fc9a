//go:build integration
// +build integration

package integration_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	baseURL = "http://localhost:8080/api/v1"
)

// TestCaseLifecycleFlow walks a case from registration through assignment,
// proposal and acceptance. It assumes the API server is running on
// localhost:8080 with a fresh database (run docker-compose up first).
func TestCaseLifecycleFlow(t *testing.T) {
	env := SetupTestEnv(t)
	defer env.Teardown()

	client := &http.Client{}

	register := func(t *testing.T, name, email, role string) {
		payload := map[string]string{
			"name":     name,
			"email":    email,
			"password": "password123",
			"role":     role,
		}
		body, _ := json.Marshal(payload)
		resp, err := client.Post(baseURL+"/auth/register", "application/json", bytes.NewBuffer(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	login := func(t *testing.T, email string) string {
		payload := map[string]string{"email": email, "password": "password123"}
		body, _ := json.Marshal(payload)
		resp, err := client.Post(baseURL+"/auth/login", "application/json", bytes.NewBuffer(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		require.NotEmpty(t, result.Token)
		return result.Token
	}

	do := func(t *testing.T, method, path, token string, payload interface{}) *http.Response {
		var body *bytes.Buffer
		if payload != nil {
			b, _ := json.Marshal(payload)
			body = bytes.NewBuffer(b)
		} else {
			body = bytes.NewBuffer(nil)
		}
		req, err := http.NewRequest(method, baseURL+path, body)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "application/json")
		resp, err := client.Do(req)
		require.NoError(t, err)
		return resp
	}

	register(t, "City Hall", "muni@example.com", "MUNICIPALITY")
	register(t, "Sales Rep", "sales@example.com", "SALES")
	register(t, "Farm Owner", "producer@example.com", "PRODUCER")
	register(t, "Bistro Owner", "restaurant@example.com", "RESTAURANT")

	muniToken := login(t, "muni@example.com")
	salesToken := login(t, "sales@example.com")
	restaurantToken := login(t, "restaurant@example.com")

	// Producer and restaurant rows are provisioned out of band; seed them
	// directly for the flow.
	var producerID, restaurantID string
	row := env.DB.QueryRow(`
		INSERT INTO producers (producer_id, user_id, name)
		SELECT gen_random_uuid(), user_id, 'Green Farm' FROM users WHERE email = 'producer@example.com'
		RETURNING producer_id`)
	require.NoError(t, row.Scan(&producerID))
	row = env.DB.QueryRow(`
		INSERT INTO restaurants (restaurant_id, user_id, name, managed_by_sales_id)
		SELECT gen_random_uuid(), u.user_id, 'Bistro', s.user_id
		FROM users u, users s
		WHERE u.email = 'restaurant@example.com' AND s.email = 'sales@example.com'
		RETURNING restaurant_id`)
	require.NoError(t, row.Scan(&restaurantID))

	var caseID string
	t.Run("Municipality Creates Case", func(t *testing.T) {
		resp := do(t, "POST", "/cases", muniToken, map[string]interface{}{
			"title":       "Winter cabbage surplus",
			"producer_id": producerID,
			"item_name":   "Cabbage",
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var result struct {
			Case struct {
				ID     string `json:"id"`
				Status string `json:"status"`
			} `json:"case"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, "NEW", result.Case.Status)
		caseID = result.Case.ID
	})

	t.Run("Sales Lists And Takes The Case", func(t *testing.T) {
		resp := do(t, "GET", "/cases/new", salesToken, nil)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp = do(t, "PUT", fmt.Sprintf("/cases/%s/assign", caseID), salesToken, nil)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var assigned struct {
			Status string `json:"status"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&assigned))
		assert.Equal(t, "PENDING", assigned.Status)
	})

	t.Run("Second Assign Conflicts", func(t *testing.T) {
		resp := do(t, "PUT", fmt.Sprintf("/cases/%s/assign", caseID), salesToken, nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	var proposalID string
	t.Run("Sales Proposes To Restaurant", func(t *testing.T) {
		resp := do(t, "POST", "/proposals", salesToken, map[string]interface{}{
			"case_id":       caseID,
			"restaurant_id": restaurantID,
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var created struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
		assert.Equal(t, "PROPOSED", created.Status)
		proposalID = created.ID

		resp = do(t, "GET", fmt.Sprintf("/cases/%s", caseID), salesToken, nil)
		defer resp.Body.Close()
		var view struct {
			Status string `json:"status"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
		assert.Equal(t, "PROPOSING", view.Status)
	})

	t.Run("Parties Exchange Messages", func(t *testing.T) {
		resp := do(t, "POST", fmt.Sprintf("/proposals/%s/messages", proposalID), restaurantToken, map[string]string{
			"content": "Can you send a sample first?",
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		resp = do(t, "GET", fmt.Sprintf("/proposals/%s/messages", proposalID), salesToken, nil)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		// The municipality is not a proposal party.
		resp = do(t, "GET", fmt.Sprintf("/proposals/%s/messages", proposalID), muniToken, nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Restaurant Accepts, Case Closes", func(t *testing.T) {
		resp := do(t, "PATCH", fmt.Sprintf("/proposals/%s/status", proposalID), restaurantToken, map[string]string{
			"status": "ACCEPTED",
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp = do(t, "GET", fmt.Sprintf("/cases/%s", caseID), muniToken, nil)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var view struct {
			Status string `json:"status"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
		assert.Equal(t, "CLOSED", view.Status)
	})

	t.Run("Notifications Accumulated", func(t *testing.T) {
		resp := do(t, "GET", "/notifications", salesToken, nil)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var notifications []map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&notifications))
		assert.NotEmpty(t, notifications)
	})
}
