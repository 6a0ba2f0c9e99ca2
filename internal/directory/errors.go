package directory

import "errors"

var (
	// ErrEmptyLocation indicates no data source location was configured.
	ErrEmptyLocation = errors.New("data source location is empty")

	// ErrUnexpectedStatus indicates the HTTP source answered with an error status.
	ErrUnexpectedStatus = errors.New("unexpected response status")
)
