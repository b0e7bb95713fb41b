package services

import "errors"

// Business errors surfaced to the request boundary. All of them render as
// HTTP 400 with the message text; the API does not distinguish them by
// status code.
var (
	ErrUserNotFound       = errors.New("User not found")
	ErrConnectionNotFound = errors.New("Connection request not found")
	ErrUnauthorized       = errors.New("Unauthorized to respond to this connection request")
	ErrAlreadyConnected   = errors.New("You are already following this user")
	ErrSelfConnection     = errors.New("You can't send a connection request to yourself")
)
