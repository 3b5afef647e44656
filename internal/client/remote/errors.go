package remote

import "errors"

var (
	// ErrNetwork indicates transport failure: unreachable host, broken
	// connection, or request timeout.
	ErrNetwork = errors.New("network error")

	// ErrServer indicates the server answered with a non-2xx status.
	ErrServer = errors.New("server error")

	// ErrDecode indicates the response payload could not be decoded.
	ErrDecode = errors.New("decode error")
)
