package domain

import (
	"encoding/json"
	"strings"
)

// Principal は呼び出し元のアイデンティティを安定したテキスト表現で保持します
type Principal struct {
	value string
}

func NewPrincipal(value string) (Principal, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return Principal{}, ErrEmptyPrincipal
	}
	return Principal{value: v}, nil
}

func (p Principal) String() string {
	return p.value
}

func (p Principal) IsZero() bool {
	return p.value == ""
}

func (p Principal) Equal(other Principal) bool {
	return p.value == other.value
}

func (p Principal) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.value)
}

func (p *Principal) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := NewPrincipal(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
