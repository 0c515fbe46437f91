// Package memory はプロセス内で完結するリポジトリ実装を提供する
// STORAGE_DRIVER=memory でのローカル起動とシナリオテストで使う。
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/sanosuguru/go-event-logistics/internal/domain/logistics"
	"github.com/sanosuguru/go-event-logistics/internal/domain/participant"
)

// eventRow は events テーブルと2つの関連テーブルを1行にまとめたもの
type eventRow struct {
	id             int64
	description    string
	startDate      time.Time
	endDate        time.Time
	cost           float64
	participantIDs []int64
	logisticsIDs   []int64
}

// Store は3つのリポジトリで共有する状態
// 各リポジトリは同じ Store を参照するので、関連の読み込み時に他の集約も見える。
type Store struct {
	mu sync.RWMutex

	participants map[int64]participant.Participant
	logistics    map[int64]logistics.Logistics
	events       map[int64]eventRow

	participantSeq int64
	logisticsSeq   int64
	eventSeq       int64
}

// NewStore は空の Store を作成する
func NewStore() *Store {
	return &Store{
		participants: map[int64]participant.Participant{},
		logistics:    map[int64]logistics.Logistics{},
		events:       map[int64]eventRow{},
	}
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
