package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestE2E_HealthCheck はヘルスチェックをテスト
func TestE2E_HealthCheck(t *testing.T) {
	server := getTestServer(t)

	rec := server.Request("GET", "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

// TestE2E_LogisticsAndCostJourney は参加者作成からコスト再計算までの流れをテスト
func TestE2E_LogisticsAndCostJourney(t *testing.T) {
	server := getTestServer(t)

	var organizerID, guestID, eventID float64

	t.Run("参加者作成", func(t *testing.T) {
		rec := server.Request("POST", "/api/v1/participants", map[string]interface{}{
			"name": "Ahmed", "surname": "Tounsi", "role": "ORGANISATEUR",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		organizerID = resp["id"].(float64)

		rec = server.Request("POST", "/api/v1/participants", map[string]interface{}{
			"name": "John", "surname": "Doe", "role": "invite",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		guestID = resp["id"].(float64)
		assert.Equal(t, "INVITE", resp["role"])
	})

	t.Run("主催者に関連付けてイベント作成", func(t *testing.T) {
		rec := server.Request("POST", fmt.Sprintf("/api/v1/participants/%d/events", int64(organizerID)), map[string]interface{}{
			"description": "Workshop",
			"start_date":  "2024-05-01",
			"end_date":    "2024-05-02",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		eventID = resp["id"].(float64)
		assert.Equal(t, []interface{}{organizerID}, resp["participant_ids"])
	})

	t.Run("ゲストを追加", func(t *testing.T) {
		rec := server.Request("POST", "/api/v1/events", map[string]interface{}{
			"id":              int64(eventID),
			"description":     "Workshop",
			"start_date":      "2024-05-01",
			"end_date":        "2024-05-02",
			"participant_ids": []int64{int64(organizerID), int64(guestID)},
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = server.Request("GET", fmt.Sprintf("/api/v1/events/%d/participants", int64(eventID)), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp []map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp, 2)
	})

	t.Run("ロジスティクス追加", func(t *testing.T) {
		rec := server.Request("PUT", "/api/v1/events/by-description/Workshop/logistics", map[string]interface{}{
			"description": "chairs", "reserved": true, "unit_price": 10, "quantity": 5,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = server.Request("PUT", "/api/v1/events/by-description/Workshop/logistics", map[string]interface{}{
			"description": "projector", "reserved": false, "unit_price": 200, "quantity": 1,
		})
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("期間内の予約済みロジスティクス", func(t *testing.T) {
		rec := server.Request("GET", "/api/v1/logistics/reserved?start=2024-05-01&end=2024-05-31", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp []map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "chairs", resp[0]["description"])

		rec = server.Request("GET", "/api/v1/logistics/reserved?start=2024-06-01&end=2024-06-30", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("コスト再計算", func(t *testing.T) {
		rec := server.Request("POST", "/api/v1/jobs/cost-recalculation", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"events":1,"total":50}`, rec.Body.String())

		rec = server.Request("GET", fmt.Sprintf("/api/v1/participants/%d/events", int64(guestID)), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp []map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, float64(50), resp[0]["cost"])
		assert.Len(t, resp[0]["logistics"], 2)
	})
}

// TestE2E_NotFound は存在しない参照が404になることをテスト
func TestE2E_NotFound(t *testing.T) {
	server := getTestServer(t)

	t.Run("存在しない参加者", func(t *testing.T) {
		rec := server.Request("GET", "/api/v1/participants/999", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "999")
	})

	t.Run("存在しない参加者を含むイベントは保存しない", func(t *testing.T) {
		rec := server.Request("POST", "/api/v1/events", map[string]interface{}{
			"description": "Orphan", "participant_ids": []int64{999},
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = server.Request("PUT", "/api/v1/events/by-description/Orphan/logistics", map[string]interface{}{
			"description": "chairs", "quantity": 1,
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Orphan")
	})
}
