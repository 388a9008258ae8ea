package domain

import "time"

type Announcement struct {
	ID        ID                   `json:"id"`
	Title     string               `json:"title"`
	Message   string               `json:"message"`
	Priority  AnnouncementPriority `json:"priority"`
	Timestamp int64                `json:"timestamp"`
}

func (a Announcement) Time() time.Time {
	return time.Unix(0, a.Timestamp).UTC()
}
