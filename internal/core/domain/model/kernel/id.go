package kernel

import (
	"fmt"
	"strconv"

	"negotiation/internal/pkg/errs"
)

// ID is a positive surrogate identifier. The zero value is not a valid ID.
type ID int64

// Validate reports an errs.ValueIsInvalidError naming paramName when the ID is not positive.
func (id ID) Validate(paramName string) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}

// Int64 returns the raw value, mostly for persistence and transport.
func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
