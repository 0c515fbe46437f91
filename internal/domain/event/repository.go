package event

import (
	"context"
	"time"

	"github.com/sanosuguru/go-event-logistics/internal/domain/participant"
)

// ParticipantSelector は参加者の姓・名・役割でイベントを絞り込む条件
type ParticipantSelector struct {
	Surname string
	Name    string
	Role    participant.Role
}

// Repository はイベントリポジトリのインターフェース
//
// 取得系はすべて ParticipantIDs と Logistics を読み込んだ状態で返す。
type Repository interface {
	// GetByID はIDからイベントを取得する
	GetByID(ctx context.Context, id int64) (*Event, error)

	// Save はイベントを保存する（参加者・ロジスティクスの関連も置き換える）
	// IDが0なら採番して作成する。参加者レコード自体は書き換えない。
	Save(ctx context.Context, e *Event) error

	// UpdateCost はコストだけを書き換える。関連には触れない
	UpdateCost(ctx context.Context, id int64, cost float64) error

	// FindFirstByDescription は説明が一致する最初のイベントを返す
	// 説明は一意ではないため、どれが返るかは保証しない
	FindFirstByDescription(ctx context.Context, description string) (*Event, error)

	// FindByStartDateBetween は開始日が [start, end] に入るイベントを返す
	FindByStartDateBetween(ctx context.Context, start, end time.Time) ([]*Event, error)

	// FindByParticipant は条件に一致する参加者が紐づくイベントを返す
	FindByParticipant(ctx context.Context, sel ParticipantSelector) ([]*Event, error)

	// ListByParticipantID は参加者IDが紐づくイベントを返す
	ListByParticipantID(ctx context.Context, participantID int64) ([]*Event, error)
}
