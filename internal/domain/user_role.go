package domain

import (
	"encoding/json"
	"fmt"
)

type UserRole struct {
	value string
}

var (
	UserRoleAdmin = UserRole{value: "admin"}
	UserRoleUser  = UserRole{value: "user"}
	UserRoleGuest = UserRole{value: "guest"}
)

func ParseUserRole(s string) (UserRole, error) {
	switch s {
	case UserRoleAdmin.value:
		return UserRoleAdmin, nil
	case UserRoleUser.value:
		return UserRoleUser, nil
	case UserRoleGuest.value:
		return UserRoleGuest, nil
	default:
		return UserRole{}, fmt.Errorf("%w: %q", ErrUnknownUserRole, s)
	}
}

func (r UserRole) String() string {
	return r.value
}

func (r UserRole) IsZero() bool {
	return r.value == ""
}

func (r UserRole) MarshalJSON() ([]byte, error) {
	if r.IsZero() {
		return nil, fmt.Errorf("%w: empty", ErrUnknownUserRole)
	}
	return json.Marshal(r.value)
}

func (r *UserRole) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrUnknownUserRole, err)
	}
	parsed, err := ParseUserRole(raw)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
