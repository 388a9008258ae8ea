package usecase

import "errors"

var (
	// ErrBindingUnavailable はバックエンドへのバインディングがまだ確立されていない場合のエラーです
	ErrBindingUnavailable = errors.New("remote binding is not available")

	// ErrIdentityUnavailable はログインしていないため呼び出し元を特定できない場合のエラーです
	ErrIdentityUnavailable = errors.New("caller identity is not available")

	// ErrPhotoStorageUnavailable は写真の保存先が設定されていない場合のエラーです
	ErrPhotoStorageUnavailable = errors.New("photo storage is not configured")

	// ErrInvalidInput は書き込みの入力が不正な場合のエラーです
	ErrInvalidInput = errors.New("invalid input")

	// ErrAuthenticationFailed は認証失敗を表すエラーです
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrSessionCreationFailed はセッション作成に失敗した場合のエラーです
	ErrSessionCreationFailed = errors.New("session creation failed")

	// ErrSessionNotFound はセッションが見つからない場合のエラーです
	ErrSessionNotFound = errors.New("session not found")
)
