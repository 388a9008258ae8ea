package domain

import (
	"encoding/json"
	"fmt"
)

// TicketStatus はチケット状態の閉じた列挙です。遷移の権限はバックエンドにあります
type TicketStatus struct {
	value string
}

var (
	TicketStatusActive     = TicketStatus{value: "active"}
	TicketStatusUsed       = TicketStatus{value: "used"}
	TicketStatusRefunded   = TicketStatus{value: "refunded"}
	TicketStatusInvalid    = TicketStatus{value: "invalid"}
	TicketStatusValidating = TicketStatus{value: "validating"}
)

// ParseTicketStatus は未知の値をactiveなどに読み替えず、必ずエラーにします
func ParseTicketStatus(s string) (TicketStatus, error) {
	switch s {
	case TicketStatusActive.value:
		return TicketStatusActive, nil
	case TicketStatusUsed.value:
		return TicketStatusUsed, nil
	case TicketStatusRefunded.value:
		return TicketStatusRefunded, nil
	case TicketStatusInvalid.value:
		return TicketStatusInvalid, nil
	case TicketStatusValidating.value:
		return TicketStatusValidating, nil
	default:
		return TicketStatus{}, fmt.Errorf("%w: %q", ErrUnknownTicketStatus, s)
	}
}

func (s TicketStatus) String() string {
	return s.value
}

func (s TicketStatus) IsZero() bool {
	return s.value == ""
}

// IsActive は入場に使えるチケットかどうかを返します
func (s TicketStatus) IsActive() bool {
	return s == TicketStatusActive
}

func (s TicketStatus) MarshalJSON() ([]byte, error) {
	if s.IsZero() {
		return nil, fmt.Errorf("%w: empty", ErrUnknownTicketStatus)
	}
	return json.Marshal(s.value)
}

func (s *TicketStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrUnknownTicketStatus, err)
	}
	parsed, err := ParseTicketStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
