package domain

import (
	"encoding/json"
	"fmt"
)

type AnnouncementPriority struct {
	value string
}

var (
	AnnouncementPriorityNormal    = AnnouncementPriority{value: "normal"}
	AnnouncementPriorityImportant = AnnouncementPriority{value: "important"}
	AnnouncementPriorityEmergency = AnnouncementPriority{value: "emergency"}
)

func ParseAnnouncementPriority(s string) (AnnouncementPriority, error) {
	switch s {
	case AnnouncementPriorityNormal.value:
		return AnnouncementPriorityNormal, nil
	case AnnouncementPriorityImportant.value:
		return AnnouncementPriorityImportant, nil
	case AnnouncementPriorityEmergency.value:
		return AnnouncementPriorityEmergency, nil
	default:
		return AnnouncementPriority{}, fmt.Errorf("%w: %q", ErrUnknownAnnouncementPriority, s)
	}
}

func (p AnnouncementPriority) String() string {
	return p.value
}

func (p AnnouncementPriority) IsZero() bool {
	return p.value == ""
}

func (p AnnouncementPriority) MarshalJSON() ([]byte, error) {
	if p.IsZero() {
		return nil, fmt.Errorf("%w: empty", ErrUnknownAnnouncementPriority)
	}
	return json.Marshal(p.value)
}

func (p *AnnouncementPriority) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrUnknownAnnouncementPriority, err)
	}
	parsed, err := ParseAnnouncementPriority(raw)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
