package domain

import "time"

type PhotoPost struct {
	ID        ID        `json:"id"`
	Author    Principal `json:"author"`
	ImageURL  string    `json:"imageUrl"`
	Caption   string    `json:"caption"`
	Timestamp int64     `json:"timestamp"`
}

func (p PhotoPost) Time() time.Time {
	return time.Unix(0, p.Timestamp).UTC()
}
