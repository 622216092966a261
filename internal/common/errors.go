// Package common defines shared constants and sentinel errors used across
// the client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrConnection = errors.New("unable to connect to server, please check your network")

	// Auth errors. A 401 from any endpoint resolves to ErrUnauthorized after
	// the persisted session has been cleared.
	ErrUnauthorized = errors.New("unauthorized")

	// Session errors.
	ErrNoSession = errors.New("no persisted session")
)
