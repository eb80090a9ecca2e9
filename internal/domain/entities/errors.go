package entities

import (
	"errors"
	"fmt"
)

var (
	ErrFetch                       = errors.New("failed to fetch flags")
	ErrInsufficientData            = errors.New("not enough usable flags to build a quiz")
	ErrInsufficientDistinctOptions = errors.New("not enough distinct country names to build options")
)

// FetchError describes a failed call to a flag data provider.
// StatusCode is zero when the request never produced a response.
type FetchError struct {
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: unexpected status %d", ErrFetch, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", ErrFetch, e.Err)
	}
	return ErrFetch.Error()
}

// Is makes errors.Is(err, ErrFetch) match any *FetchError.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
