package pagination

import (
	"errors"
	"fmt"
)

var (
	// ErrBusy means a load is already in flight.
	ErrBusy = errors.New("load already in progress")

	// ErrNoMoreData means every matching notice is already visible.
	ErrNoMoreData = errors.New("no more notices")

	// ErrClosed means the controller was torn down.
	ErrClosed = errors.New("controller closed")

	// ErrFetchFailed matches any *FetchError via errors.Is.
	ErrFetchFailed = errors.New("fetch failed")
)

// FetchError reports a failed load-more cycle
type FetchError struct {
	Page int
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("loading page %d: %v", e.Page, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrFetchFailed) match
func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}
