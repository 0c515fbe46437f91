package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-event-logistics/internal/api"
	"github.com/sanosuguru/go-event-logistics/internal/domain/lock"
)

// JobHandler は定期ジョブを手動で実行するハンドラー
type JobHandler struct {
	costJob CostJobRunner
}

func NewJobHandler(runner CostJobRunner) *JobHandler {
	return &JobHandler{costJob: runner}
}

type CostRecalculationResponse struct {
	Events int     `json:"events" example:"2"`
	Total  float64 `json:"total" example:"100"`
}

// RecalculateCosts godoc
// @Summary コスト再計算を即時実行
// @Tags jobs
// @Produce json
// @Success 200 {object} CostRecalculationResponse
// @Failure 409 {object} api.ErrorResponse "他のインスタンスが実行中"
// @Router /jobs/cost-recalculation [post]
func (h *JobHandler) RecalculateCosts(c echo.Context) error {
	result, err := h.costJob.RunOnce(c.Request().Context())
	if err != nil {
		if errors.Is(err, lock.ErrNotAcquired) {
			return c.JSON(http.StatusConflict, api.ErrorResponse{
				Error: "コスト再計算は実行中です",
				Code:  http.StatusConflict,
			})
		}
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, CostRecalculationResponse{Events: result.Events, Total: result.Total})
}
