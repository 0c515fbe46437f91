package handler

import "github.com/labstack/echo/v4"

// Handlers はルーティングに登録するハンドラーの集合
type Handlers struct {
	Health      *HealthHandler
	Participant *ParticipantHandler
	Event       *EventHandler
	Logistics   *LogisticsHandler
	Job         *JobHandler
}

// RegisterRoutes はAPIのルートを登録する
// /metrics は認証設定があるため呼び出し側で登録する
func RegisterRoutes(e *echo.Echo, h *Handlers) {
	e.GET("/health", h.Health.Check)

	v1 := e.Group("/api/v1")
	v1.POST("/participants", h.Participant.Create)
	v1.GET("/participants/:id", h.Participant.GetByID)
	v1.POST("/participants/:id/events", h.Event.CreateForParticipant)
	v1.GET("/participants/:id/events", h.Event.ListByParticipant)

	v1.POST("/events", h.Event.Create)
	v1.GET("/events/:id/participants", h.Event.ListParticipants)
	v1.PUT("/events/by-description/:description/logistics", h.Logistics.Attach)

	v1.GET("/logistics/reserved", h.Logistics.ListReserved)

	if h.Job != nil {
		v1.POST("/jobs/cost-recalculation", h.Job.RecalculateCosts)
	}
}
