package palette

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a request cannot be satisfied,
	// such as a negative colour count.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownStrategy is returned for strategy values or names that are not declared.
	// It matches ErrInvalidArgument under errors.Is.
	ErrUnknownStrategy = fmt.Errorf("%w: unknown strategy", ErrInvalidArgument)
)
