package recorder

import "errors"

// Domain errors for recording and plotting operations. Every failure is a
// caller usage mistake; nothing is retried or recovered internally, and the
// wrapped message names the offending variable.
var (
	// ErrInvalidValue indicates a non-numeric value passed to Track.
	ErrInvalidValue = errors.New("recorder: value is not numeric")

	// ErrNotFound indicates a query for a variable that was never tracked.
	ErrNotFound = errors.New("recorder: variable not tracked")

	// ErrEmptyData indicates a plot request before any Track call.
	ErrEmptyData = errors.New("recorder: no data recorded")

	// ErrUnknownVariable indicates a plot request naming an untracked
	// x-axis or series variable.
	ErrUnknownVariable = errors.New("recorder: unknown variable")
)
