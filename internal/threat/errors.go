package threat

import "errors"

var (
	ErrEmptyText      = errors.New("message text is empty")
	ErrInvalidPattern = errors.New("invalid scam pattern")
)
