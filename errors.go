package viewedit

import (
	"errors"
	"fmt"

	"github.com/gogpu/viewedit/polygon"
)

// Errors.
var (
	// ErrViewNotFound is matched by every *ViewNotFoundError.
	ErrViewNotFound = errors.New("viewedit: view not found")

	// ErrIndexOutOfRange is returned for polygon, contour or point indices
	// outside their range.
	ErrIndexOutOfRange = polygon.ErrIndexOutOfRange

	// ErrMalformedInput is returned for arguments that fail validation.
	ErrMalformedInput = errors.New("viewedit: malformed input")

	// ErrPrecondition is returned when an operation is not possible in the
	// current state.
	ErrPrecondition = errors.New("viewedit: precondition failed")
)

// ViewNotFoundError reports an unknown view name.
type ViewNotFoundError struct {
	Name string
}

func (e *ViewNotFoundError) Error() string {
	return "viewedit: view not found: " + e.Name
}

func (e *ViewNotFoundError) Is(target error) bool { return target == ErrViewNotFound }

// InputError reports an invalid argument of an operation.
type InputError struct {
	Op     string
	Arg    string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("viewedit: %s: invalid %s: %s", e.Op, e.Arg, e.Reason)
}

func (e *InputError) Is(target error) bool { return target == ErrMalformedInput }

// wrapPolygonErr makes polygon validation errors match ErrMalformedInput.
func wrapPolygonErr(err error) error {
	if err != nil && errors.Is(err, polygon.ErrMalformed) && !errors.Is(err, ErrMalformedInput) {
		return fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	return err
}
