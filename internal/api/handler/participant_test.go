package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sanosuguru/go-event-logistics/internal/api"
	"github.com/sanosuguru/go-event-logistics/internal/application"
	"github.com/sanosuguru/go-event-logistics/internal/domain/participant"
)

func newJSONRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) api.ErrorResponse {
	t.Helper()
	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestParticipantHandler_Create(t *testing.T) {
	e := NewTestEcho()

	t.Run("正常に参加者を作成できる", func(t *testing.T) {
		mockService := new(MockParticipantService)
		mockService.On("CreateParticipant", mock.Anything, application.CreateParticipantInput{
			Name: "John", Surname: "Doe", Role: participant.RoleInvite,
		}).Return(&participant.Participant{ID: 1, Name: "John", Surname: "Doe", Role: participant.RoleInvite}, nil)

		h := NewParticipantHandler(mockService)
		rec := httptest.NewRecorder()
		c := e.NewContext(newJSONRequest(http.MethodPost, "/api/v1/participants",
			`{"name":"John","surname":"Doe","role":"invite"}`), rec)

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp ParticipantResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "INVITE", resp.Role)
		mockService.AssertExpectations(t)
	})

	t.Run("役割が不正なら400", func(t *testing.T) {
		mockService := new(MockParticipantService)
		h := NewParticipantHandler(mockService)
		rec := httptest.NewRecorder()
		c := e.NewContext(newJSONRequest(http.MethodPost, "/api/v1/participants",
			`{"name":"John","surname":"Doe","role":"CEO"}`), rec)

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "CreateParticipant", mock.Anything, mock.Anything)
	})

	t.Run("役割がなければ400", func(t *testing.T) {
		h := NewParticipantHandler(new(MockParticipantService))
		rec := httptest.NewRecorder()
		c := e.NewContext(newJSONRequest(http.MethodPost, "/api/v1/participants", `{"name":"John"}`), rec)

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Error, "role")
	})

	t.Run("不正なJSONは400", func(t *testing.T) {
		h := NewParticipantHandler(new(MockParticipantService))
		rec := httptest.NewRecorder()
		c := e.NewContext(newJSONRequest(http.MethodPost, "/api/v1/participants", "invalid json"), rec)

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("保存に失敗したら500で詳細は返さない", func(t *testing.T) {
		mockService := new(MockParticipantService)
		mockService.On("CreateParticipant", mock.Anything, mock.Anything).
			Return(nil, errors.New("pq: connection refused"))

		h := NewParticipantHandler(mockService)
		rec := httptest.NewRecorder()
		c := e.NewContext(newJSONRequest(http.MethodPost, "/api/v1/participants",
			`{"name":"John","surname":"Doe","role":"INVITE"}`), rec)

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "pq:")
	})
}

func TestParticipantHandler_GetByID(t *testing.T) {
	e := NewTestEcho()

	t.Run("存在する参加者", func(t *testing.T) {
		mockService := new(MockParticipantService)
		mockService.On("GetParticipant", mock.Anything, int64(3)).
			Return(&participant.Participant{ID: 3, Surname: "Doe", Role: participant.RoleServeur}, nil)

		h := NewParticipantHandler(mockService)
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		c.SetParamNames("id")
		c.SetParamValues("3")

		require.NoError(t, h.GetByID(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"surname":"Doe"`)
	})

	t.Run("存在しなければ404でIDを含む", func(t *testing.T) {
		mockService := new(MockParticipantService)
		mockService.On("GetParticipant", mock.Anything, int64(99)).
			Return(nil, fmt.Errorf("%w: %d", participant.ErrParticipantNotFound, 99))

		h := NewParticipantHandler(mockService)
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		c.SetParamNames("id")
		c.SetParamValues("99")

		require.NoError(t, h.GetByID(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, decodeError(t, rec).Error, "99")
	})

	t.Run("IDが数値でなければ400", func(t *testing.T) {
		h := NewParticipantHandler(new(MockParticipantService))
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		c.SetParamNames("id")
		c.SetParamValues("abc")

		require.NoError(t, h.GetByID(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
