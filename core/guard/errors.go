package guard

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the sentinel every check's error matches via
// errors.Is, so callers can branch on the class without inspecting the
// concrete type.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError describes a failed check: which argument and why.
type ArgumentError struct {
	Arg     string
	Message string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("argument %q: %s", e.Arg, e.Message)
}

// Is makes every ArgumentError match ErrInvalidArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func fail(arg, message string) error {
	return &ArgumentError{Arg: arg, Message: message}
}
