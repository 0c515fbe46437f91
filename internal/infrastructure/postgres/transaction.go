package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/sanosuguru/go-event-logistics/internal/domain/logistics"
	"github.com/sanosuguru/go-event-logistics/internal/domain/participant"
)

// PostgreSQLのエラーコード
const (
	codeForeignKeyViolation = "23503"
)

// 関連テーブルの外部キー制約名
const (
	constraintEventParticipant = "event_participants_participant_id_fkey"
	constraintEventLogistics   = "event_logistics_logistics_id_fkey"
)

// withTx は fn をトランザクション内で実行する
// fn がエラーを返すかパニックした場合はロールバックする
func withTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("トランザクション開始に失敗: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("コミットに失敗: %w", err)
	}
	return nil
}

// mapForeignKeyError は関連テーブルの外部キー違反を参照先の NotFound に変換する
// 該当しない場合は nil を返す
func mapForeignKeyError(err error) error {
	var pgErr *pq.Error
	if !errors.As(err, &pgErr) || pgErr.Code != codeForeignKeyViolation {
		return nil
	}
	switch pgErr.Constraint {
	case constraintEventParticipant:
		return fmt.Errorf("%w: %s", participant.ErrParticipantNotFound, pgErr.Detail)
	case constraintEventLogistics:
		return fmt.Errorf("%w: %s", logistics.ErrLogisticsNotFound, pgErr.Detail)
	}
	return nil
}
