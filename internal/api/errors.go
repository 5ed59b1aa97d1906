package api

import "errors"

var (
	// ErrNoCredential means a request was attempted with no session
	// credential present. The session is terminated before any network I/O.
	ErrNoCredential = errors.New("no session credential")

	// ErrSessionExpired means the server answered 401. The session is
	// terminated and the in-flight call aborted; the request is not retried.
	ErrSessionExpired = errors.New("session expired")
)
