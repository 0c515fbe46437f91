package application

import (
	"errors"

	"github.com/sanosuguru/go-event-logistics/internal/domain/event"
	"github.com/sanosuguru/go-event-logistics/internal/domain/logistics"
	"github.com/sanosuguru/go-event-logistics/internal/domain/participant"
)

// IsNotFound は参照先（参加者・イベント・ロジスティクス）が存在しないエラーかを返す
func IsNotFound(err error) bool {
	return errors.Is(err, participant.ErrParticipantNotFound) ||
		errors.Is(err, event.ErrEventNotFound) ||
		errors.Is(err, logistics.ErrLogisticsNotFound)
}

// IsValidation は入力値の検証エラーかを返す
func IsValidation(err error) bool {
	return errors.Is(err, participant.ErrInvalidRole) ||
		errors.Is(err, event.ErrDescriptionRequired) ||
		errors.Is(err, event.ErrInvalidEventDates) ||
		errors.Is(err, logistics.ErrInvalidUnitPrice) ||
		errors.Is(err, logistics.ErrInvalidQuantity)
}
