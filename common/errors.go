package common

import "errors"

var (
	ErrorInvalidValue = errors.New("invalid value")
	// ErrorEmptySample means no rating is left once non-applicable responses are removed
	ErrorEmptySample   = errors.New("empty rating sample")
	ErrorInvalidRating = errors.New("invalid rating")
)
