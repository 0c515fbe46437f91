package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-event-logistics/internal/domain/event"
	"github.com/sanosuguru/go-event-logistics/internal/domain/logistics"
)

type LogisticsHandler struct {
	logisticsService LogisticsServiceInterface
}

func NewLogisticsHandler(ls LogisticsServiceInterface) *LogisticsHandler {
	return &LogisticsHandler{logisticsService: ls}
}

type LogisticsRequest struct {
	Description string  `json:"description" example:"chairs"`
	Reserved    bool    `json:"reserved" example:"true"`
	UnitPrice   float64 `json:"unit_price" validate:"gte=0" example:"10"`
	Quantity    int     `json:"quantity" validate:"gte=0" example:"5"`
}

type LogisticsResponse struct {
	ID          int64   `json:"id" example:"1"`
	Description string  `json:"description" example:"chairs"`
	Reserved    bool    `json:"reserved" example:"true"`
	UnitPrice   float64 `json:"unit_price" example:"10"`
	Quantity    int     `json:"quantity" example:"5"`
}

func toLogisticsResponse(l *logistics.Logistics) *LogisticsResponse {
	return &LogisticsResponse{
		ID:          l.ID,
		Description: l.Description,
		Reserved:    l.Reserved,
		UnitPrice:   l.UnitPrice,
		Quantity:    l.Quantity,
	}
}

// Attach godoc
// @Summary 説明で指定したイベントにロジスティクスを追加
// @Description 説明が一致するイベントが複数ある場合、どれに追加されるかは保証しない
// @Tags logistics
// @Accept json
// @Produce json
// @Param description path string true "イベントの説明"
// @Param request body LogisticsRequest true "ロジスティクス"
// @Success 200 {object} LogisticsResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /events/by-description/{description}/logistics [put]
func (h *LogisticsHandler) Attach(c echo.Context) error {
	description, ok := pathParam(c, "description")
	if !ok || description == "" {
		return badRequest(c, "イベントの説明が不正です")
	}

	var req LogisticsRequest
	if msg := bindAndValidate(c, &req); msg != "" {
		return badRequest(c, msg)
	}

	l := logistics.NewLogistics(req.Description, req.Reserved, req.UnitPrice, req.Quantity)
	saved, err := h.logisticsService.AttachLogistics(c.Request().Context(), l, description)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, toLogisticsResponse(saved))
}

// ListReserved godoc
// @Summary 期間内に開始するイベントの予約済みロジスティクス
// @Tags logistics
// @Produce json
// @Param start query string true "開始日 (YYYY-MM-DD)"
// @Param end query string true "終了日 (YYYY-MM-DD)"
// @Success 200 {array} LogisticsResponse
// @Failure 400 {object} api.ErrorResponse
// @Router /logistics/reserved [get]
func (h *LogisticsHandler) ListReserved(c echo.Context) error {
	start, err := event.ParseDate(c.QueryParam("start"))
	if err != nil {
		return badRequest(c, "start は YYYY-MM-DD 形式で指定してください")
	}
	end, err := event.ParseDate(c.QueryParam("end"))
	if err != nil {
		return badRequest(c, "end は YYYY-MM-DD 形式で指定してください")
	}

	items, err := h.logisticsService.ReservedLogisticsInRange(c.Request().Context(), start, end)
	if err != nil {
		return errorJSON(c, err)
	}

	responses := make([]*LogisticsResponse, len(items))
	for i, l := range items {
		responses[i] = toLogisticsResponse(l)
	}
	return c.JSON(http.StatusOK, responses)
}
