package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-event-logistics/internal/application"
	"github.com/sanosuguru/go-event-logistics/internal/domain/participant"
)

type ParticipantHandler struct {
	participantService ParticipantServiceInterface
}

func NewParticipantHandler(ps ParticipantServiceInterface) *ParticipantHandler {
	return &ParticipantHandler{participantService: ps}
}

type CreateParticipantRequest struct {
	Name    string `json:"name" example:"Ahmed"`
	Surname string `json:"surname" example:"Tounsi"`
	Role    string `json:"role" validate:"required" example:"ORGANISATEUR"`
}

type ParticipantResponse struct {
	ID      int64  `json:"id" example:"1"`
	Name    string `json:"name" example:"Ahmed"`
	Surname string `json:"surname" example:"Tounsi"`
	Role    string `json:"role" example:"ORGANISATEUR"`
}

func toParticipantResponse(p *participant.Participant) *ParticipantResponse {
	return &ParticipantResponse{
		ID:      p.ID,
		Name:    p.Name,
		Surname: p.Surname,
		Role:    string(p.Role),
	}
}

// Create godoc
// @Summary 参加者を作成
// @Tags participants
// @Accept json
// @Produce json
// @Param request body CreateParticipantRequest true "参加者情報"
// @Success 201 {object} ParticipantResponse
// @Failure 400 {object} api.ErrorResponse
// @Router /participants [post]
func (h *ParticipantHandler) Create(c echo.Context) error {
	var req CreateParticipantRequest
	if msg := bindAndValidate(c, &req); msg != "" {
		return badRequest(c, msg)
	}

	role, err := participant.ParseRole(req.Role)
	if err != nil {
		return errorJSON(c, err)
	}

	p, err := h.participantService.CreateParticipant(c.Request().Context(), application.CreateParticipantInput{
		Name:    req.Name,
		Surname: req.Surname,
		Role:    role,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, toParticipantResponse(p))
}

// GetByID godoc
// @Summary 参加者を取得
// @Tags participants
// @Produce json
// @Param id path int true "参加者ID"
// @Success 200 {object} ParticipantResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /participants/{id} [get]
func (h *ParticipantHandler) GetByID(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "参加者IDが不正です")
	}

	p, err := h.participantService.GetParticipant(c.Request().Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, toParticipantResponse(p))
}
