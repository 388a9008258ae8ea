package domain

import "time"

type QuoteRequest struct {
	ID        ID        `json:"id"`
	From      Principal `json:"from"`
	To        Principal `json:"to"`
	Message   string    `json:"message"`
	Timestamp int64     `json:"timestamp"`
}

func (q QuoteRequest) Time() time.Time {
	return time.Unix(0, q.Timestamp).UTC()
}
