package event

import (
	"time"

	"github.com/sanosuguru/go-event-logistics/internal/domain/logistics"
)

// DateLayout はイベント日付の入出力フォーマット（時刻なし）
const DateLayout = "2006-01-02"

// Event はイベントエンティティを表す
//
// 参加者との関連は ParticipantIDs（関連レコード）として保持し、
// 参加者エンティティへの逆参照は持たない。
// Cost はコスト再計算ジョブだけが更新する。
type Event struct {
	ID             int64
	Description    string
	StartDate      time.Time
	EndDate        time.Time
	Cost           float64
	ParticipantIDs []int64
	Logistics      []*logistics.Logistics
}

// NewEvent は新しいイベントを作成する
func NewEvent(description string, startDate, endDate time.Time) *Event {
	return &Event{
		Description: description,
		StartDate:   TruncateDate(startDate),
		EndDate:     TruncateDate(endDate),
	}
}

// TruncateDate は時刻部分を落としたUTCの日付を返す
func TruncateDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate は YYYY-MM-DD 形式の日付をパースする
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// Validate はイベントの検証を行う
func (e *Event) Validate() error {
	if e.Description == "" {
		return ErrDescriptionRequired
	}
	if !e.StartDate.IsZero() && !e.EndDate.IsZero() && e.EndDate.Before(e.StartDate) {
		return ErrInvalidEventDates
	}
	return nil
}

// AddParticipant は参加者IDを関連に追加する。追加された場合 true を返す
func (e *Event) AddParticipant(participantID int64) bool {
	if e.HasParticipant(participantID) {
		return false
	}
	e.ParticipantIDs = append(e.ParticipantIDs, participantID)
	return true
}

// HasParticipant は参加者IDが関連に含まれるかを返す
func (e *Event) HasParticipant(participantID int64) bool {
	for _, id := range e.ParticipantIDs {
		if id == participantID {
			return true
		}
	}
	return false
}

// AddLogistics は保存済みのロジスティクスを追加する
// 同じIDが既にあれば置き換える。IDのない（未保存の）ものは受け付けない。
func (e *Event) AddLogistics(l *logistics.Logistics) error {
	if l == nil || !l.IsPersisted() {
		return logistics.ErrNotPersisted
	}
	for i, existing := range e.Logistics {
		if existing.ID == l.ID {
			e.Logistics[i] = l
			return nil
		}
	}
	e.Logistics = append(e.Logistics, l)
	return nil
}

// ReservedLogistics は予約済みのロジスティクスだけを返す
func (e *Event) ReservedLogistics() []*logistics.Logistics {
	if len(e.Logistics) == 0 {
		return nil
	}
	var reserved []*logistics.Logistics
	for _, l := range e.Logistics {
		if l.Reserved {
			reserved = append(reserved, l)
		}
	}
	return reserved
}
