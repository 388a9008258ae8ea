package identity

import (
	"encoding/json"
	"fmt"
)

type LoginStatus struct {
	value string
}

var (
	LoginStatusIdle          = LoginStatus{value: "idle"}
	LoginStatusLoggingIn     = LoginStatus{value: "logging-in"}
	LoginStatusAuthenticated = LoginStatus{value: "authenticated"}
)

func ParseLoginStatus(s string) (LoginStatus, error) {
	switch s {
	case LoginStatusIdle.value:
		return LoginStatusIdle, nil
	case LoginStatusLoggingIn.value:
		return LoginStatusLoggingIn, nil
	case LoginStatusAuthenticated.value:
		return LoginStatusAuthenticated, nil
	default:
		return LoginStatus{}, fmt.Errorf("%w: %q", ErrUnknownLoginStatus, s)
	}
}

func (s LoginStatus) String() string {
	return s.value
}

func (s LoginStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.value)
}
