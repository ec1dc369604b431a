package sourceapi

import "errors"

var (
	// ErrStatusNotOK is returned when the API response had status different than 200 OK.
	ErrStatusNotOK = errors.New("response status is not 200 OK")
	// ErrMalformedResponse is returned when the API response body can't be decoded.
	ErrMalformedResponse = errors.New("malformed API response")
)
