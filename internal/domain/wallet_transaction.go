package domain

import "time"

type WalletTransaction struct {
	ID          ID        `json:"id"`
	User        Principal `json:"user"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	Timestamp   int64     `json:"timestamp"`
}

func (t WalletTransaction) Time() time.Time {
	return time.Unix(0, t.Timestamp).UTC()
}

func (t WalletTransaction) IsCredit() bool {
	return t.Amount > 0
}
