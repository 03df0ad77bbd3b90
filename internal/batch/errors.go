package batch

import (
	"errors"
	"fmt"
)

var (
	ErrAllFailed    = errors.New("failed to generate any images")
	ErrItemNotFound = errors.New("item not found")
	ErrItemInFlight = errors.New("item is already being generated")
	ErrEmptyImage   = errors.New("generator returned an empty image")

	errNoGenerator = errors.New("image generator is not configured")
)

// PartialFailure is advisory: some sizes failed, the rest are usable.
type PartialFailure struct {
	Failed int
	Total  int
}

func (e *PartialFailure) Error() string {
	return fmt.Sprintf("failed to generate %d of %d image(s); they can be regenerated individually", e.Failed, e.Total)
}

// ItemError is the single-item signal returned by a failed regeneration.
type ItemError struct {
	ItemID    string
	SizeLabel string
	Err       error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("failed to generate image for %q: %v", e.SizeLabel, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}
