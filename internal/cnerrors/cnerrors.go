package cnerrors

import "errors"

var (
	// Canvas API errors
	InvalidTokenError           = errors.New("invalid or missing API token")
	InsufficientPermissionError = errors.New("insufficient permission to list courses")
	WrongBaseURLError           = errors.New("wrong base URL or API path")

	// Local errors
	NoConnectionError      = errors.New("no Canvas connection configured")
	UpdateUnsupportedError = errors.New("in-place update is not supported by this build")
)
