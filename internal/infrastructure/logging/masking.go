package logging

import (
	"io"
	"log/slog"
	"strings"
)

const redacted = "[REDACTED]"

var defaultSensitiveKeys = []string{
	"token",
	"id_token",
	"idtoken",
	"authorization",
	"cookie",
	"session_id",
	"sessionid",
	"principal",
	"password",
	"secret",
	"secret_access_key",
	"secretaccesskey",
	"access_key_id",
	"accesskeyid",
	"api_key",
	"apikey",
	"credential",
	"private_key",
	"email",
	"cnpj",
	"cpf",
}

type SensitiveMasker struct {
	sensitiveKeys map[string]bool
}

func NewSensitiveMasker(keys []string) *SensitiveMasker {
	m := make(map[string]bool, len(keys))
	for _, key := range keys {
		m[strings.ToLower(key)] = true
	}
	return &SensitiveMasker{sensitiveKeys: m}
}

// MaskAttrs はキー名が機密キーを含む属性と、Bearerトークンを値に持つ属性を伏せます
func (sm *SensitiveMasker) MaskAttrs(_ []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		maskedAttrs := make([]any, 0, len(attrs))
		for _, attr := range attrs {
			maskedAttrs = append(maskedAttrs, sm.MaskAttrs(nil, attr))
		}
		return slog.Group(a.Key, maskedAttrs...)
	}

	if sm.IsSensitive(a.Key) {
		return slog.String(a.Key, redacted)
	}

	if a.Value.Kind() == slog.KindString && hasBearerPrefix(a.Value.String()) {
		return slog.String(a.Key, redacted)
	}
	return a
}

// IsSensitive はキー名が機密キーと一致するか、機密キーを含むかを返します
func (sm *SensitiveMasker) IsSensitive(key string) bool {
	key = strings.ToLower(key)
	if sm.sensitiveKeys[key] {
		return true
	}
	for sensitiveKey := range sm.sensitiveKeys {
		if strings.Contains(key, sensitiveKey) {
			return true
		}
	}
	return false
}

func hasBearerPrefix(v string) bool {
	const prefix = "bearer "
	return len(v) > len(prefix) && strings.EqualFold(v[:len(prefix)], prefix)
}

var defaultMasker = NewSensitiveMasker(defaultSensitiveKeys)

func MaskSensitiveAttrs(groups []string, a slog.Attr) slog.Attr {
	return defaultMasker.MaskAttrs(groups, a)
}

// IsSensitiveKey はログ属性とURLのクエリパラメータで共通の機密キー判定です
func IsSensitiveKey(key string) bool {
	return defaultMasker.IsSensitive(key)
}

// NewJSONLogger は機密属性を伏せるJSONロガーを作ります
func NewJSONLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: MaskSensitiveAttrs,
	}))
}

// ParseLevel は設定値をslog.Levelに変換します。不明な値はInfoとして扱います
func ParseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}
