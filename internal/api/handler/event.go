package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-event-logistics/internal/domain/event"
)

type EventHandler struct {
	associationService AssociationServiceInterface
}

func NewEventHandler(as AssociationServiceInterface) *EventHandler {
	return &EventHandler{associationService: as}
}

// EventRequest はイベントの作成リクエスト
// コストは再計算ジョブだけが決めるので受け付けない
type EventRequest struct {
	ID             int64   `json:"id" validate:"gte=0" example:"0"`
	Description    string  `json:"description" validate:"required" example:"Workshop"`
	StartDate      string  `json:"start_date" validate:"omitempty,datetime=2006-01-02" example:"2024-05-01"`
	EndDate        string  `json:"end_date" validate:"omitempty,datetime=2006-01-02" example:"2024-05-02"`
	ParticipantIDs []int64 `json:"participant_ids" validate:"omitempty,dive,gt=0"`
}

// toEntity は日付をパースしてイベントを組み立てる
// 日付は validator で形式を検証済み
func (r *EventRequest) toEntity() *event.Event {
	var start, end time.Time
	if r.StartDate != "" {
		start, _ = event.ParseDate(r.StartDate)
	}
	if r.EndDate != "" {
		end, _ = event.ParseDate(r.EndDate)
	}
	e := event.NewEvent(r.Description, start, end)
	e.ID = r.ID
	for _, id := range r.ParticipantIDs {
		e.AddParticipant(id)
	}
	return e
}

type EventResponse struct {
	ID             int64                `json:"id" example:"1"`
	Description    string               `json:"description" example:"Workshop"`
	StartDate      string               `json:"start_date,omitempty" example:"2024-05-01"`
	EndDate        string               `json:"end_date,omitempty" example:"2024-05-02"`
	Cost           float64              `json:"cost" example:"50"`
	ParticipantIDs []int64              `json:"participant_ids"`
	Logistics      []*LogisticsResponse `json:"logistics"`
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(event.DateLayout)
}

func toEventResponse(e *event.Event) *EventResponse {
	resp := &EventResponse{
		ID:             e.ID,
		Description:    e.Description,
		StartDate:      formatDate(e.StartDate),
		EndDate:        formatDate(e.EndDate),
		Cost:           e.Cost,
		ParticipantIDs: make([]int64, 0, len(e.ParticipantIDs)),
		Logistics:      make([]*LogisticsResponse, 0, len(e.Logistics)),
	}
	resp.ParticipantIDs = append(resp.ParticipantIDs, e.ParticipantIDs...)
	for _, l := range e.Logistics {
		resp.Logistics = append(resp.Logistics, toLogisticsResponse(l))
	}
	return resp
}

func toEventResponses(events []*event.Event) []*EventResponse {
	responses := make([]*EventResponse, len(events))
	for i, e := range events {
		responses[i] = toEventResponse(e)
	}
	return responses
}

// Create godoc
// @Summary イベントを作成（参加者IDを含めて関連付け）
// @Description participant_ids の参加者をすべて解決してから保存する。1人でも存在しなければ404で何も保存しない
// @Tags events
// @Accept json
// @Produce json
// @Param request body EventRequest true "イベント情報"
// @Success 201 {object} EventResponse
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /events [post]
func (h *EventHandler) Create(c echo.Context) error {
	var req EventRequest
	if msg := bindAndValidate(c, &req); msg != "" {
		return badRequest(c, msg)
	}

	e, err := h.associationService.LinkAllParticipants(c.Request().Context(), req.toEntity())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, toEventResponse(e))
}

// CreateForParticipant godoc
// @Summary イベントを作成して参加者に関連付け
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "参加者ID"
// @Param request body EventRequest true "イベント情報"
// @Success 201 {object} EventResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /participants/{id}/events [post]
func (h *EventHandler) CreateForParticipant(c echo.Context) error {
	participantID, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "参加者IDが不正です")
	}

	var req EventRequest
	if msg := bindAndValidate(c, &req); msg != "" {
		return badRequest(c, msg)
	}

	e, err := h.associationService.LinkByParticipantID(c.Request().Context(), req.toEntity(), participantID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, toEventResponse(e))
}

// ListByParticipant godoc
// @Summary 参加者が関連付けられたイベント一覧
// @Tags events
// @Produce json
// @Param id path int true "参加者ID"
// @Success 200 {array} EventResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /participants/{id}/events [get]
func (h *EventHandler) ListByParticipant(c echo.Context) error {
	participantID, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "参加者IDが不正です")
	}

	events, err := h.associationService.EventsFor(c.Request().Context(), participantID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, toEventResponses(events))
}

// ListParticipants godoc
// @Summary イベントに関連付けられた参加者一覧
// @Tags events
// @Produce json
// @Param id path int true "イベントID"
// @Success 200 {array} ParticipantResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /events/{id}/participants [get]
func (h *EventHandler) ListParticipants(c echo.Context) error {
	eventID, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "イベントIDが不正です")
	}

	participants, err := h.associationService.ParticipantsFor(c.Request().Context(), eventID)
	if err != nil {
		return errorJSON(c, err)
	}

	responses := make([]*ParticipantResponse, len(participants))
	for i, p := range participants {
		responses[i] = toParticipantResponse(p)
	}
	return c.JSON(http.StatusOK, responses)
}

