package domain

import "strconv"

// ID はバックエンドが採番する不透明な識別子です
type ID uint64

func ParseID(s string) (ID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return ID(v), nil
}

func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}
