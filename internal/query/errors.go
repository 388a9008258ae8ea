package query

import "errors"

var (
	// ErrQueryDisabled はフェッチの直前にクエリが無効になり、実行されなかったことを表します
	ErrQueryDisabled = errors.New("query is disabled")

	// ErrTypeMismatch はキャッシュ上の値の型がクエリの型と一致しない場合のエラーです
	ErrTypeMismatch = errors.New("cached value type mismatch")

	// ErrSessionCleared はフェッチ中にキャッシュがクリアされ、結果が破棄された場合のエラーです
	ErrSessionCleared = errors.New("cache cleared while fetching")
)
