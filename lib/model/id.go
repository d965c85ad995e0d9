package model

import (
	"fmt"
	"strconv"
)

// ID is a numeric identifier assigned by the upstream planning API.
type ID int

func (i ID) String() string {
	return fmt.Sprintf("%v", int(i))
}

func StringToID(id string) (ID, error) {
	r, err := strconv.ParseInt(id, 10, 32)
	if err != nil {
		return 0, err
	}
	return ID(r), nil
}
