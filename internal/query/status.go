package query

type Status struct {
	value string
}

var (
	StatusIdle     = Status{value: "idle"}
	StatusFetching = Status{value: "fetching"}
	StatusSuccess  = Status{value: "success"}
	StatusError    = Status{value: "error"}
)

func (s Status) String() string {
	if s.value == "" {
		return StatusIdle.value
	}
	return s.value
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
