package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanosuguru/go-event-logistics/internal/domain/logistics"
)

func TestNewEvent(t *testing.T) {
	start := time.Date(2025, 12, 15, 18, 30, 0, 0, time.UTC)
	end := time.Date(2025, 12, 16, 9, 0, 0, 0, time.UTC)

	e := NewEvent("Workshop", start, end)

	assert.Equal(t, "Workshop", e.Description)
	assert.Equal(t, time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC), e.StartDate)
	assert.Equal(t, time.Date(2025, 12, 16, 0, 0, 0, 0, time.UTC), e.EndDate)
	assert.Zero(t, e.Cost)
	assert.Nil(t, e.ParticipantIDs)
	assert.Nil(t, e.Logistics)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-12-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("15/12/2025")
	assert.Error(t, err)
}

func TestEvent_Validate(t *testing.T) {
	day := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		event       *Event
		expectedErr error
	}{
		{
			name:  "有効なイベント",
			event: NewEvent("Workshop", day, day.AddDate(0, 0, 1)),
		},
		{
			name:  "開始日と終了日が同じ",
			event: NewEvent("Workshop", day, day),
		},
		{
			name:  "日付なし",
			event: &Event{Description: "Workshop"},
		},
		{
			name:        "説明が空",
			event:       NewEvent("", day, day),
			expectedErr: ErrDescriptionRequired,
		},
		{
			name:        "終了日が開始日より前",
			event:       NewEvent("Workshop", day, day.AddDate(0, 0, -1)),
			expectedErr: ErrInvalidEventDates,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.event.Validate()
			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestEvent_AddParticipant(t *testing.T) {
	e := &Event{Description: "Workshop"}

	assert.True(t, e.AddParticipant(1))
	assert.True(t, e.AddParticipant(2))
	// 同じIDは重複しない
	assert.False(t, e.AddParticipant(1))

	assert.Equal(t, []int64{1, 2}, e.ParticipantIDs)
	assert.True(t, e.HasParticipant(2))
	assert.False(t, e.HasParticipant(3))
}

func TestEvent_AddLogistics(t *testing.T) {
	t.Run("未保存のロジスティクスは追加できない", func(t *testing.T) {
		e := &Event{Description: "Workshop"}

		err := e.AddLogistics(logistics.NewLogistics("chairs", true, 10, 5))

		assert.ErrorIs(t, err, logistics.ErrNotPersisted)
		assert.Empty(t, e.Logistics)
	})

	t.Run("nilは追加できない", func(t *testing.T) {
		e := &Event{Description: "Workshop"}
		assert.ErrorIs(t, e.AddLogistics(nil), logistics.ErrNotPersisted)
	})

	t.Run("同じIDは置き換えられる", func(t *testing.T) {
		e := &Event{Description: "Workshop"}
		first := &logistics.Logistics{ID: 7, Description: "chairs", Quantity: 5}
		second := &logistics.Logistics{ID: 7, Description: "chairs", Quantity: 8}

		require.NoError(t, e.AddLogistics(first))
		require.NoError(t, e.AddLogistics(second))

		require.Len(t, e.Logistics, 1)
		assert.Equal(t, 8, e.Logistics[0].Quantity)
	})
}

func TestEvent_ReservedLogistics(t *testing.T) {
	e := &Event{Description: "Workshop"}
	assert.Nil(t, e.ReservedLogistics())

	reserved := &logistics.Logistics{ID: 1, Reserved: true, UnitPrice: 10, Quantity: 5}
	proposed := &logistics.Logistics{ID: 2, Reserved: false, UnitPrice: 20, Quantity: 3}
	require.NoError(t, e.AddLogistics(reserved))
	require.NoError(t, e.AddLogistics(proposed))

	got := e.ReservedLogistics()
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}
