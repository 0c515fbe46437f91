package lock

import (
	"context"
	"errors"
	"time"
)

// ErrNotAcquired は他のプロセスがロックを保持しているときに返る
var ErrNotAcquired = errors.New("ロックを取得できませんでした")

// Lock は取得済みのロックを表すインターフェース
// ドメイン層・ワーカーがインフラ層（Redis等）に依存しないようにするための抽象化
type Lock interface {
	// Release はロックを解放する
	Release(ctx context.Context) error
}

// Manager はロックを管理するインターフェース
type Manager interface {
	// Acquire はキーに対するロックを取得する。取得できない場合は ErrNotAcquired
	Acquire(ctx context.Context, key string, ttl time.Duration) (Lock, error)
}
